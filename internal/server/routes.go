package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DerekDew/poe2-api-stub/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Get("/health", handler(s.getHealth))
	r.Get("/deals", handler(s.getDeals))
	r.Get("/history", handler(s.getHistory))

	r.Route("/alerts", func(r chi.Router) {
		r.Get("/status", handler(s.getAlertsStatus))
		r.Post("/enable", handler(s.postAlertsEnable))
		r.Post("/disable", handler(s.postAlertsDisable))
		r.Post("/scan", handler(s.postAlertsScan))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
