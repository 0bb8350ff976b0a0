package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/bilingual-portfolio-backend/errs"
	"github.com/rpupo63/bilingual-portfolio-backend/models"
	"github.com/rpupo63/bilingual-portfolio-backend/services"
)

type socialHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   *services.ContentService
}

func newSocialHandler(content *services.ContentService) socialHandler {
	logger := log.With().Str("handlerName", "socialHandler").Logger()

	return socialHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
	}
}

func (h socialHandler) getAllSocialLinks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links, err := h.content.ListSocialLinks(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"social_links": links,
			"total":        len(links),
		})
	}
}

func (h socialHandler) createSocialLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var link models.SocialLink
		if err := json.NewDecoder(r.Body).Decode(&link); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		link.ID = 0

		if err := h.content.SaveSocialLink(r.Context(), &link); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, link)
	}
}

func (h socialHandler) updateSocialLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		linkID, err := parseID(chi.URLParam(r, "linkID"), "linkID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var link models.SocialLink
		if err := json.NewDecoder(r.Body).Decode(&link); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		link.ID = linkID

		if err := h.content.SaveSocialLink(r.Context(), &link); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, link)
	}
}

func (h socialHandler) deleteSocialLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		linkID, err := parseID(chi.URLParam(r, "linkID"), "linkID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.content.DeleteSocialLink(r.Context(), linkID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "social link deleted successfully",
		})
	}
}
