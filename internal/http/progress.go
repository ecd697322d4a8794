package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/langlearn/internal/database"
	"github.com/example/langlearn/internal/entities"
	"github.com/example/langlearn/internal/logger"
)

// ProgressStore provides the snapshot operations the progress
// controller needs.
type ProgressStore interface {
	Create(collection string, document map[string]any) (string, error)
	Latest(collection string, filter map[string]any) (*database.Document, error)
}

type ProgressController struct {
	store ProgressStore
	log   *logger.Logger
}

func NewProgressController(store ProgressStore, log *logger.Logger) *ProgressController {
	return &ProgressController{
		store: store,
		log:   log,
	}
}

// Get returns the newest progress snapshot for a user. Users that
// never recorded anything get a default zero snapshot, not a 404, so
// clients need no special first-visit handling.
func (controller *ProgressController) Get(c *gin.Context) {
	userID := c.Param("user_id")

	doc, err := controller.store.Latest(entities.CollectionProgress, map[string]any{"user_id": userID})
	if err != nil {
		respondStoreError(c, controller.log, err, "get progress")
		return
	}
	if doc == nil {
		c.JSON(http.StatusOK, entities.DefaultProgress(userID))
		return
	}

	c.JSON(http.StatusOK, serialize(*doc))
}

// Update appends a new progress snapshot. Fields the caller omitted
// are not stored, so a partial update never shadows older snapshots
// with zero values.
func (controller *ProgressController) Update(c *gin.Context) {
	var payload entities.ProgressUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	id, err := controller.store.Create(entities.CollectionProgress, payload.Document())
	if err != nil {
		respondStoreError(c, controller.log, err, "update progress")
		return
	}

	respondCreated(c, gin.H{"id": id})
}
