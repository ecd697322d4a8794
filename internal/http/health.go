package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthStore provides the probes the health controller needs.
type HealthStore interface {
	Available() bool
	Ping() error
}

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	store   HealthStore
	version string
}

func NewHealthController(store HealthStore, version string) *HealthController {
	return &HealthController{
		store:   store,
		version: version,
	}
}

// Status reports process health. A store that was never configured is
// not a failure; a configured store that stops answering is.
func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	if h.store != nil && h.store.Available() {
		if err := h.store.Ping(); err != nil {
			checks["store"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["store"] = "ok"
		}
	} else {
		checks["store"] = "not configured"
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
