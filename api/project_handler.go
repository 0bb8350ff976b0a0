package api

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/bilingual-portfolio-backend/errs"
	"github.com/rpupo63/bilingual-portfolio-backend/models"
	"github.com/rpupo63/bilingual-portfolio-backend/services"
)

// maxUploadMemory caps the in-memory portion of a multipart parse; larger
// uploads spill to temp files.
const maxUploadMemory = 32 << 20

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   *services.ContentService
}

func newProjectHandler(content *services.ContentService) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
	}
}

// ProjectCollection represents the public project listing
type ProjectCollection struct {
	Projects    []*models.Project    `json:"projects"`
	SocialLinks []*models.SocialLink `json:"social_links"`
	Total       int                  `json:"total"`
}

// ProjectPage represents the project detail page payload
type ProjectPage struct {
	services.ProjectDetail
	SocialLinks []*models.SocialLink `json:"social_links"`
}

// getAllProjects retrieves all projects together with the social links the
// public layout renders alongside them.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.content.ListProjects(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		links, err := h.content.ListSocialLinks(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{
			Projects:    projects,
			SocialLinks: links,
			Total:       len(projects),
		})
	}
}

// getProject retrieves one project with its ordered gallery and prev/next
// navigation.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(chi.URLParam(r, "projectID"), "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		detail, err := h.content.GetProject(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		links, err := h.content.ListSocialLinks(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ProjectPage{
			ProjectDetail: *detail,
			SocialLinks:   links,
		})
	}
}

// createProject accepts the Arabic-only multipart form and creates a project
// with its uploaded images. English fields are derived by translation.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, primary, additional, cleanup, err := parseProjectForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer cleanup()

		project, err := h.content.CreateProject(r.Context(), input, primary, additional)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if admin := UserFromContext(r.Context()); admin != nil {
			h.logger.Info().Str("username", admin.Username).Uint("projectID", project.ID).Msg("Project created")
		}
		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, project)
	}
}

// updateProject re-validates, retranslates, and saves the project; new
// gallery uploads are appended.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(chi.URLParam(r, "projectID"), "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		input, primary, additional, cleanup, err := parseProjectForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer cleanup()

		project, err := h.content.UpdateProject(r.Context(), projectID, input, primary, additional)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// deleteProject removes a project and its gallery.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(chi.URLParam(r, "projectID"), "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.content.DeleteProject(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if admin := UserFromContext(r.Context()); admin != nil {
			h.logger.Info().Str("username", admin.Username).Uint("projectID", projectID).Msg("Project deleted")
		}
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// deleteProjectImage removes one gallery entry. A failed file removal is
// reported as a warning while the row delete still succeeds.
func (h projectHandler) deleteProjectImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, err := parseID(chi.URLParam(r, "imageID"), "imageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		warning, err := h.content.DeleteProjectImage(r.Context(), imageID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		response := map[string]string{
			"status":  "success",
			"message": "project image deleted successfully",
		}
		if errs.IsFileStorage(warning) {
			response["warning"] = warning.Error()
		}
		h.responder.WriteJSON(w, response)
	}
}

// parseID converts a chi URL parameter into a numeric entity id.
func parseID(raw, field string) (uint, error) {
	if raw == "" {
		return 0, errs.NewMissingRequiredFieldError(field)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errs.NewInvalidFieldError(field, "must be a positive integer")
	}
	return uint(id), nil
}

// parseProjectForm reads the admin multipart form. Field names match the
// legacy dashboard: title_ar, description_ar, detailed_description_ar,
// technologies, link, one optional "image" file and repeated
// "additional_images" files with optional parallel "image_orders" values.
// The returned cleanup closes every opened upload.
func parseProjectForm(r *http.Request) (services.ProjectInput, *services.ImageUpload, []services.ImageUpload, func(), error) {
	noop := func() {}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return services.ProjectInput{}, nil, nil, noop, errs.NewBadRequestError("malformed multipart form")
	}

	input := services.ProjectInput{
		TitleAr:               r.FormValue("title_ar"),
		DescriptionAr:         r.FormValue("description_ar"),
		DetailedDescriptionAr: r.FormValue("detailed_description_ar"),
		Technologies:          r.FormValue("technologies"),
		Link:                  r.FormValue("link"),
	}

	var opened []multipart.File
	cleanup := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	var primary *services.ImageUpload
	if headers := r.MultipartForm.File["image"]; len(headers) > 0 {
		f, err := headers[0].Open()
		if err != nil {
			cleanup()
			return services.ProjectInput{}, nil, nil, noop, errs.NewBadRequestError("unreadable primary image upload")
		}
		opened = append(opened, f)
		primary = &services.ImageUpload{Filename: headers[0].Filename, Content: f}
	}

	orders := r.MultipartForm.Value["image_orders"]
	captions := r.MultipartForm.Value["image_captions_ar"]

	var additional []services.ImageUpload
	for i, header := range r.MultipartForm.File["additional_images"] {
		f, err := header.Open()
		if err != nil {
			cleanup()
			return services.ProjectInput{}, nil, nil, noop, errs.NewBadRequestError("unreadable gallery image upload")
		}
		opened = append(opened, f)

		upload := services.ImageUpload{Filename: header.Filename, Content: f}
		if i < len(orders) {
			if order, err := strconv.Atoi(orders[i]); err == nil {
				upload.SortOrder = &order
			}
		}
		if i < len(captions) {
			upload.CaptionAr = captions[i]
		}
		additional = append(additional, upload)
	}

	return input, primary, additional, cleanup, nil
}
