// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbCheck func() bool
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbCheck func() bool) *HealthController {
	return &HealthController{
		dbCheck: dbCheck,
	}
}

// Check handles GET /health requests.
func (c *HealthController) Check(ctx *gin.Context) {
	dbHealthy := c.dbCheck()

	status := "ok"
	httpStatus := http.StatusOK
	if !dbHealthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	ctx.JSON(httpStatus, gin.H{
		"status":    status,
		"database":  dbHealthy,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
