package http

import "github.com/gin-gonic/gin"

// Register attaches the submission routes. Paths are part of the public
// contract and are registered at the router root.
func (h *Handler) Register(r gin.IRoutes) {
	r.POST("/submit_project", h.submit)
	r.GET("/projects", h.list)
}
