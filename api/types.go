package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler      authHandler
	projectHandler   projectHandler
	socialHandler    socialHandler
	aboutHandler     aboutHandler
	analyticsHandler analyticsHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title_ar"`
	Details string `json:"details,omitempty" example:"Additional error details"`
}
