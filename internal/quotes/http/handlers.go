package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renoquote/quote-backend/internal/quotes/domain"
)

func (h *Handler) submit(c *gin.Context) {
	sub := domain.Submission{
		UserName:       c.PostForm("user_name"),
		ProjectDetails: c.PostForm("project_details"),
	}

	if file, err := c.FormFile("image"); err == nil {
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded image"})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded image"})
			return
		}
		sub.Attachment = &domain.Attachment{Filename: file.Filename, Data: data}
	}

	result, err := h.svc.Submit(c.Request.Context(), sub)
	if err != nil {
		writeSubmitError(c, err)
		return
	}

	c.JSON(http.StatusOK, submitResponse{ProjectID: result.ProjectID, Quote: result.Quote})
}

// writeSubmitError maps each pipeline stage's failure to a response.
// An AI failure still reports the project id: the record is durable by then.
func writeSubmitError(c *gin.Context, err error) {
	var (
		validationErr  *domain.ValidationError
		storageErr     *domain.StorageError
		persistenceErr *domain.PersistenceError
		aiErr          *domain.AIServiceError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &storageErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not store uploaded image"})
	case errors.As(err, &persistenceErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save project"})
	case errors.As(err, &aiErr):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":      "project was saved but quote generation failed",
			"project_id": aiErr.ProjectID,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (h *Handler) list(c *gin.Context) {
	projects, err := h.svc.ListProjects(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load projects"})
		return
	}

	out := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectResponse{
			ID:             p.ID,
			UserName:       p.UserName,
			ProjectDetails: p.ProjectDetails,
			ImageURL:       p.ImageURL,
		})
	}

	c.JSON(http.StatusOK, listResponse{Projects: out})
}
