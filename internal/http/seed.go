package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/langlearn/internal/demo"
	"github.com/example/langlearn/internal/logger"
)

type SeedController struct {
	store demo.Store
	log   *logger.Logger
}

func NewSeedController(store demo.Store, log *logger.Logger) *SeedController {
	return &SeedController{
		store: store,
		log:   log,
	}
}

// Seed loads the demo content into collections that are still empty.
// Safe to call repeatedly.
func (controller *SeedController) Seed(c *gin.Context) {
	if err := demo.Seed(controller.store); err != nil {
		respondStoreError(c, controller.log, err, "seed demo content")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
