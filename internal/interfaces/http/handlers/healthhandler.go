// Package handlers exposes the HTTP endpoints: every response uses the
// {error, data, message} envelope.
package handlers

import (
	"github.com/gin-gonic/gin"

	"libris/internal/infrastructure/database"
	"libris/internal/shared/utils"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Root answers the bare service banner.
func (h *HealthHandler) Root(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"service": "libris"}, "library management API")
}

// Health reports process and database liveness.
func (h *HealthHandler) Health(c *gin.Context) {
	status := "ok"
	if err := database.Ping(); err != nil {
		status = "degraded"
	}
	utils.SuccessResponse(c, gin.H{"status": status})
}
