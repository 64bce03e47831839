package api

import "github.com/orbya/portfolio-backend/models"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler resourceHandler[models.Project]
	skillHandler   resourceHandler[models.Skill]
	contactHandler contactHandler
	statusHandler  statusHandler
	contentHandler contentHandler
	configHandler  configHandler
	mediaHandler   mediaHandler
	systemHandler  systemHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}
