package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public site, the login endpoint, and the
// session-guarded admin dashboard.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, svcs Services) {
	// Public routes: every GET is recorded as a visit
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(TrackVisitorMiddleware(svcs.Visitors))

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Get("/social-links", handlers.socialHandler.getAllSocialLinks())
		r.Get("/about", handlers.aboutHandler.getAboutMe())
	})

	// Authentication
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/auth/login", handlers.authHandler.login())
	})

	// Admin routes: session token required
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Post("/admin/project", handlers.projectHandler.createProject())
		r.Put("/admin/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/admin/project/{projectID}", handlers.projectHandler.deleteProject())
		r.Delete("/admin/project/image/{imageID}", handlers.projectHandler.deleteProjectImage())

		r.Get("/admin/social", handlers.socialHandler.getAllSocialLinks())
		r.Post("/admin/social", handlers.socialHandler.createSocialLink())
		r.Put("/admin/social/{linkID}", handlers.socialHandler.updateSocialLink())
		r.Delete("/admin/social/{linkID}", handlers.socialHandler.deleteSocialLink())

		r.Get("/admin/about", handlers.aboutHandler.getAboutMe())
		r.Put("/admin/about", handlers.aboutHandler.updateAboutMe())

		r.Get("/admin/analytics", handlers.analyticsHandler.getAnalytics())
	})
}
