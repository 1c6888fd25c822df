// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker    func() bool
	redisHealthChecker func() bool
	generationEnabled  bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status     string `json:"status"`
	Database   string `json:"database"`
	Redis      string `json:"redis"`
	Generation string `json:"generation"`
	Timestamp  string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// A nil checker reports the dependency as disabled.
func NewHealthController(dbHealthChecker, redisHealthChecker func() bool, generationEnabled bool) *HealthController {
	return &HealthController{
		dbHealthChecker:    dbHealthChecker,
		redisHealthChecker: redisHealthChecker,
		generationEnabled:  generationEnabled,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its dependencies.
func (h *HealthController) Check(c *gin.Context) {
	response := HealthResponse{
		Status:     "ok",
		Database:   dependencyStatus(h.dbHealthChecker),
		Redis:      dependencyStatus(h.redisHealthChecker),
		Generation: "template",
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	if h.generationEnabled {
		response.Generation = "enabled"
	}
	if response.Database != "connected" {
		response.Status = "degraded"
	}

	c.JSON(http.StatusOK, response)
}

func dependencyStatus(checker func() bool) string {
	switch {
	case checker == nil:
		return "disabled"
	case checker():
		return "connected"
	default:
		return "disconnected"
	}
}
