package api

import (
	"context"

	"github.com/gin-gonic/gin"
)

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /healthz: Basic liveness probe (always returns 200 OK).
//   - /readyz: Readiness probe (depends on the state store being reachable).
type HealthHandler struct {
	storePing func(ctx context.Context) error
}

// NewHealthHandler constructs a HealthHandler with the provided ping
// function, typically the state store's Ping method.
func NewHealthHandler(storePing func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{storePing: storePing}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /healthz: Always returns 200 OK.
//   - GET /readyz: Returns 200 OK if the store answers, 503 if it does not.
func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/readyz", func(c *gin.Context) {
		if h.storePing != nil && h.storePing(c.Request.Context()) != nil {
			c.JSON(503, gin.H{"status": "degraded"})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
}
