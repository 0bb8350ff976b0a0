package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/bilingual-portfolio-backend/services"
)

type analyticsHandler struct {
	responder Responder
	logger    zerolog.Logger
	visitors  *services.VisitorService
}

func newAnalyticsHandler(visitors *services.VisitorService) analyticsHandler {
	logger := log.With().Str("handlerName", "analyticsHandler").Logger()

	return analyticsHandler{
		responder: NewResponder(logger),
		logger:    logger,
		visitors:  visitors,
	}
}

// getAnalytics returns the visit log, most recent first, with per-language
// totals for the dashboard chart.
func (h analyticsHandler) getAnalytics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := h.visitors.Analytics(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, report)
	}
}
