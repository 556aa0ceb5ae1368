// Package alerts filters top deals and pushes them to the configured
// webhook, with best-effort per-day deduplication.
package alerts

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/samber/lo"

	"github.com/DerekDew/poe2-api-stub/internal/domain/entity"
	"github.com/DerekDew/poe2-api-stub/internal/domain/service/deals"
	"github.com/DerekDew/poe2-api-stub/internal/infrastructure/dedup"
	"github.com/DerekDew/poe2-api-stub/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// maxPerScan caps the messages sent by one scan regardless of how many
// deals clear the threshold.
const maxPerScan = 5

const (
	ReasonDisabled  = "disabled"
	ReasonNoWebhook = "no_webhook"
)

type Dealer interface {
	Assemble(count int) []entity.ScoredItem
}

type Notifier interface {
	Send(ctx context.Context, content string) error
}

type Report struct {
	Sent   int
	Reason string
}

type Status struct {
	Enabled    bool
	MinScore   float64
	WebhookSet bool
	SentToday  int
}

// Service holds the only mutable runtime setting of the process: the
// alerts toggle. It is changed through SetEnabled and reverts to the
// configured default on restart.
type Service struct {
	deals    Dealer
	store    dedup.Store
	notifier Notifier
	minScore float64

	mu      sync.Mutex
	enabled bool
}

// NewService wires the dispatcher. A nil notifier means no webhook is
// configured; scans then short-circuit instead of failing.
func NewService(
	dealer Dealer,
	store dedup.Store,
	notifier Notifier,
	minScore float64,
	enabled bool,
) *Service {
	return &Service{
		deals:    dealer,
		store:    store,
		notifier: notifier,
		minScore: minScore,
		enabled:  enabled,
	}
}

func (s *Service) SetEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enabled = enabled
}

func (s *Service) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enabled
}

func (s *Service) Status(ctx context.Context) (Status, error) {
	sentToday, err := s.store.CountToday(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("store.CountToday: %w", err)
	}

	return Status{
		Enabled:    s.Enabled(),
		MinScore:   s.minScore,
		WebhookSet: s.notifier != nil,
		SentToday:  sentToday,
	}, nil
}

// Scan assembles a fresh deal pool and dispatches at most maxPerScan
// alerts for unseen deals at or above the score threshold. Delivery is
// best-effort: a failed send is logged, the deal is still marked sent
// and will not be retried later.
func (s *Service) Scan(ctx context.Context, limit int) (Report, error) {
	scansTotal.Inc()

	if !s.Enabled() {
		return Report{Reason: ReasonDisabled}, nil
	}

	if s.notifier == nil {
		return Report{Reason: ReasonNoWebhook}, nil
	}

	candidates := lo.Filter(s.deals.Assemble(limit), func(item entity.ScoredItem, _ int) bool {
		return item.Score >= s.minScore
	})

	toSend := make([]entity.ScoredItem, 0, maxPerScan)

	for _, item := range candidates {
		if len(toSend) >= maxPerScan {
			break
		}

		sent, err := s.store.WasSent(ctx, item.Listing.ID)
		if err != nil {
			return Report{}, fmt.Errorf("store.WasSent: %w", err)
		}

		if sent {
			continue
		}

		toSend = append(toSend, item)
	}

	for _, item := range toSend {
		if err := s.notifier.Send(ctx, formatMessage(item)); err != nil {
			logger(ctx).Error("webhook send failed",
				"id", item.Listing.ID,
				"error", err,
			)
		}

		if err := s.store.MarkSent(ctx, item.Listing.ID); err != nil {
			logger(ctx).Error("mark sent failed",
				"id", item.Listing.ID,
				"error", err,
			)

			continue
		}

		sentTotal.Inc()
	}

	return Report{Sent: len(toSend)}, nil
}

func formatMessage(item entity.ScoredItem) string {
	listing := item.Listing
	margin := deals.MarginPct(listing.MarketChaos, listing.PriceChaos)
	spread := listing.MarketChaos - listing.PriceChaos

	return fmt.Sprintf(
		"💥 **%s** | Score **%.1f** | Margin **%.1f%%** | Spread **%.1fc** | Price **%sc** | Market **%sc**",
		listing.Name,
		item.Score,
		margin,
		spread,
		strconv.FormatFloat(listing.PriceChaos, 'f', -1, 64),
		strconv.FormatFloat(listing.MarketChaos, 'f', -1, 64),
	)
}
