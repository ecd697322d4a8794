package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/langlearn/internal/entities"
	"github.com/example/langlearn/internal/logger"
)

type LessonsController struct {
	store ContentStore
	log   *logger.Logger
}

func NewLessonsController(store ContentStore, log *logger.Logger) *LessonsController {
	return &LessonsController{
		store: store,
		log:   log,
	}
}

// List returns all lessons, optionally narrowed by the language and
// level query parameters. Both filters are exact matches.
func (controller *LessonsController) List(c *gin.Context) {
	filter := map[string]any{}
	if language := c.Query("language"); language != "" {
		filter["language"] = language
	}
	if level := c.Query("level"); level != "" {
		filter["level"] = level
	}

	docs, err := controller.store.Query(entities.CollectionLesson, filter, 0)
	if err != nil {
		respondStoreError(c, controller.log, err, "list lessons")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": serializeAll(docs)})
}

// Create validates and stores a new lesson, returning its id.
func (controller *LessonsController) Create(c *gin.Context) {
	var payload entities.Lesson
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	id, err := controller.store.Create(entities.CollectionLesson, payload.Document())
	if err != nil {
		respondStoreError(c, controller.log, err, "create lesson")
		return
	}

	respondCreated(c, gin.H{"id": id})
}
