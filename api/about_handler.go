package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/bilingual-portfolio-backend/errs"
	"github.com/rpupo63/bilingual-portfolio-backend/services"
)

type aboutHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   *services.ContentService
}

func newAboutHandler(content *services.ContentService) aboutHandler {
	logger := log.With().Str("handlerName", "aboutHandler").Logger()

	return aboutHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
	}
}

func (h aboutHandler) getAboutMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		about, err := h.content.AboutMe(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if about == nil {
			// Never edited: an empty bio, not an error
			h.responder.WriteJSON(w, map[string]string{"text_ar": "", "text_en": ""})
			return
		}
		h.responder.WriteJSON(w, about)
	}
}

type aboutMeRequest struct {
	TextAr string `json:"text_ar"`
}

// updateAboutMe saves the Arabic bio; the English version is always
// regenerated through translation on every save.
func (h aboutHandler) updateAboutMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req aboutMeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		about, err := h.content.SaveAboutMe(r.Context(), req.TextAr)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, about)
	}
}
