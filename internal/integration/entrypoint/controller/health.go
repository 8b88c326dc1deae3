package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	storeHealthChecker func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Storage   string `json:"storage"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance. The checker
// pings whichever storage backend the server was started with.
func NewHealthController(storeHealthChecker func() bool) *HealthController {
	return &HealthController{
		storeHealthChecker: storeHealthChecker,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its dependencies.
func (h *HealthController) Check(c *gin.Context) {
	storeStatus := "disconnected"
	if h.storeHealthChecker != nil && h.storeHealthChecker() {
		storeStatus = "connected"
	}

	response := HealthResponse{
		Status:    "ok",
		Storage:   storeStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}
