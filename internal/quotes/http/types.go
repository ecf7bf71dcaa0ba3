package http

import "github.com/renoquote/quote-backend/internal/quotes/service"

// Handler bundles the dependencies for the submission endpoints.
type Handler struct {
	svc *service.PipelineService
}

func New(svc *service.PipelineService) *Handler {
	return &Handler{svc: svc}
}

type submitResponse struct {
	ProjectID int64  `json:"project_id"`
	Quote     string `json:"quote"`
}

type projectResponse struct {
	ID             int64   `json:"id"`
	UserName       string  `json:"user_name"`
	ProjectDetails string  `json:"project_details"`
	ImageURL       *string `json:"image_url"`
}

type listResponse struct {
	Projects []projectResponse `json:"projects"`
}
