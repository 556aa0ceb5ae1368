package server

import (
	"net/http"
	"time"

	"git.appkode.ru/pub/go/failure"

	"github.com/DerekDew/poe2-api-stub/internal/domain/entity"
	"github.com/DerekDew/poe2-api-stub/pkg/errcodes"
	"github.com/DerekDew/poe2-api-stub/pkg/httpx/reply"
	"github.com/DerekDew/poe2-api-stub/pkg/httpx/req"
	"github.com/DerekDew/poe2-api-stub/pkg/rest"
)

const defaultDealsLimit = 100

type dealService interface {
	Assemble(count int) []entity.ScoredItem
	History() []float64
}

type DealServer struct {
	dealService dealService
}

func NewDealServer(dealService dealService) DealServer {
	return DealServer{
		dealService: dealService,
	}
}

type limitQuery struct {
	Limit int `validate:"gte=1,lte=500"`
}

func (s DealServer) getHealth(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, rest.Health{
		Status: "ok",
		Time:   float64(time.Now().UnixNano()) / float64(time.Second),
	})

	return nil
}

func (s DealServer) getDeals(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	limit, err := req.QueryInt(r, "limit", defaultDealsLimit)
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

	items := s.dealService.Assemble(limit)

	reply.JSON(ctx, w, http.StatusOK, newRESTDealsResponse(items))

	return nil
}

func (s DealServer) getHistory(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	// The id is echoed back as-is; there is no real history behind it.
	id := r.URL.Query().Get("id")

	reply.JSON(ctx, w, http.StatusOK, rest.HistoryResponse{
		ID:     id,
		Points: s.dealService.History(),
	})

	return nil
}
