package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/langlearn/internal/database"
	"github.com/example/langlearn/internal/entities"
)

// maxReportedCollections bounds the collection listing in /test so a
// busy store cannot bloat the diagnostics payload.
const maxReportedCollections = 10

// DiagnosticsStore provides the read-only probes the diagnostics
// controller needs.
type DiagnosticsStore interface {
	Ping() error
	Collections() ([]string, error)
	Name() string
}

// TestResponse reports the store connectivity checks behind /test.
// The statuses are human-readable on purpose; this endpoint exists to
// be eyeballed during deployments.
type TestResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type DiagnosticsController struct {
	store       DiagnosticsStore
	databaseURL string
}

func NewDiagnosticsController(store DiagnosticsStore, databaseURL string) *DiagnosticsController {
	return &DiagnosticsController{
		store:       store,
		databaseURL: databaseURL,
	}
}

// Root is the liveness banner.
func (controller *DiagnosticsController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "LangLearn API is running"})
}

// Schema describes the expected document shape of every collection.
func (controller *DiagnosticsController) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, entities.SchemaShapes())
}

// Test walks the store connectivity checks one by one. It always
// answers 200: a broken store shows up in the payload, never as a
// failed request.
func (controller *DiagnosticsController) Test(c *gin.Context) {
	resp := TestResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      "❌ Not Set",
		DatabaseName:     "❌ Not Set",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	err := controller.store.Ping()
	switch {
	case errors.Is(err, database.ErrUnavailable):
		resp.Database = "⚠️  Available but not initialized"
	case err != nil:
		resp.Database = "❌ Error: " + truncate(err.Error(), 80)
	default:
		resp.Database = "✅ Available"
		resp.ConnectionStatus = "Connected"
		if controller.databaseURL != "" {
			resp.DatabaseURL = "✅ Set"
		}
		if name := controller.store.Name(); name != "" {
			resp.DatabaseName = name
		} else {
			resp.DatabaseName = "✅ Connected"
		}

		names, err := controller.store.Collections()
		if err != nil {
			resp.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		} else {
			if len(names) > maxReportedCollections {
				names = names[:maxReportedCollections]
			}
			resp.Collections = names
			resp.Database = "✅ Connected & Working"
		}
	}

	c.JSON(http.StatusOK, resp)
}
