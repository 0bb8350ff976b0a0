package api

import (
	"github.com/rpupo63/bilingual-portfolio-backend/services"
)

// Services bundles the domain services the router dispatches to.
type Services struct {
	Content  *services.ContentService
	Auth     *services.AuthService
	Visitors *services.VisitorService
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(svcs Services) *routeHandlers {
	return &routeHandlers{
		authHandler:      newAuthHandler(svcs.Auth),
		projectHandler:   newProjectHandler(svcs.Content),
		socialHandler:    newSocialHandler(svcs.Content),
		aboutHandler:     newAboutHandler(svcs.Content),
		analyticsHandler: newAnalyticsHandler(svcs.Visitors),
	}
}
