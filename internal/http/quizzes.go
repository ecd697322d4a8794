package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/langlearn/internal/entities"
	"github.com/example/langlearn/internal/logger"
)

type QuizzesController struct {
	store ContentStore
	log   *logger.Logger
}

func NewQuizzesController(store ContentStore, log *logger.Logger) *QuizzesController {
	return &QuizzesController{
		store: store,
		log:   log,
	}
}

// List returns all quizzes, optionally narrowed to one lesson via the
// lesson_id query parameter.
func (controller *QuizzesController) List(c *gin.Context) {
	filter := map[string]any{}
	if lessonID := c.Query("lesson_id"); lessonID != "" {
		filter["lesson_id"] = lessonID
	}

	docs, err := controller.store.Query(entities.CollectionQuiz, filter, 0)
	if err != nil {
		respondStoreError(c, controller.log, err, "list quizzes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": serializeAll(docs)})
}

// Create validates and stores a new quiz, returning its id. Question
// payloads are stored as-is; the store never inspects them.
func (controller *QuizzesController) Create(c *gin.Context) {
	var payload entities.Quiz
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	id, err := controller.store.Create(entities.CollectionQuiz, payload.Document())
	if err != nil {
		respondStoreError(c, controller.log, err, "create quiz")
		return
	}

	respondCreated(c, gin.H{"id": id})
}
