package server

import (
	"context"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"github.com/DerekDew/poe2-api-stub/internal/domain/service/alerts"
	"github.com/DerekDew/poe2-api-stub/pkg/errcodes"
	"github.com/DerekDew/poe2-api-stub/pkg/httpx/reply"
	"github.com/DerekDew/poe2-api-stub/pkg/httpx/req"
	"github.com/DerekDew/poe2-api-stub/pkg/rest"
)

const (
	defaultScanLimit = 200

	headerNameAlertsSecret = "X-Alerts-Secret"
)

type alertService interface {
	Status(ctx context.Context) (alerts.Status, error)
	SetEnabled(enabled bool)
	Scan(ctx context.Context, limit int) (alerts.Report, error)
}

type AlertServer struct {
	alertService alertService
	secret       string
}

// NewAlertServer keeps the configured shared secret. An empty secret
// disables the check on the mutating endpoints entirely.
func NewAlertServer(alertService alertService, secret string) AlertServer {
	return AlertServer{
		alertService: alertService,
		secret:       secret,
	}
}

func (s AlertServer) getAlertsStatus(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	status, err := s.alertService.Status(ctx)
	if err != nil {
		return fmt.Errorf("alertService.Status: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.AlertsStatus{
		Enabled:    status.Enabled,
		MinScore:   status.MinScore,
		WebhookSet: status.WebhookSet,
		SentToday:  status.SentToday,
	})

	return nil
}

func (s AlertServer) postAlertsEnable(w http.ResponseWriter, r *http.Request) error {
	return s.toggleAlerts(w, r, true)
}

func (s AlertServer) postAlertsDisable(w http.ResponseWriter, r *http.Request) error {
	return s.toggleAlerts(w, r, false)
}

func (s AlertServer) toggleAlerts(w http.ResponseWriter, r *http.Request, enabled bool) error {
	if err := s.checkSecret(r); err != nil {
		return err
	}

	s.alertService.SetEnabled(enabled)

	reply.JSON(r.Context(), w, http.StatusOK, rest.AlertsToggle{
		OK:      true,
		Enabled: enabled,
	})

	return nil
}

func (s AlertServer) postAlertsScan(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	limit, err := req.QueryInt(r, "limit", defaultScanLimit)
	if err != nil {
		return err
	}

	if err := req.Validate(r, limitQuery{Limit: limit}); err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			err,
			failure.WithCode(errcodes.InvalidLimit),
			failure.WithDescription("limit must be between 1 and 500"),
		)
	}

	report, err := s.alertService.Scan(ctx, limit)
	if err != nil {
		return fmt.Errorf("alertService.Scan: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.AlertsScan{
		OK:     true,
		Sent:   report.Sent,
		Reason: report.Reason,
	})

	return nil
}

func (s AlertServer) checkSecret(r *http.Request) error {
	if s.secret == "" {
		return nil
	}

	if r.Header.Get(headerNameAlertsSecret) != s.secret {
		return failure.NewUnauthorizedError(
			"alerts secret mismatch",
			failure.WithCode(errcodes.InvalidSecret),
			failure.WithDescription("Invalid secret"),
		)
	}

	return nil
}
