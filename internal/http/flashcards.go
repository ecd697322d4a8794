package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/langlearn/internal/entities"
	"github.com/example/langlearn/internal/logger"
)

// DefaultFlashcardLimit caps flashcard listings unless the caller
// asks for a different limit. Zero or negative means no cap.
const DefaultFlashcardLimit = 50

type FlashcardsController struct {
	store ContentStore
	log   *logger.Logger
}

func NewFlashcardsController(store ContentStore, log *logger.Logger) *FlashcardsController {
	return &FlashcardsController{
		store: store,
		log:   log,
	}
}

// List returns flashcards, optionally narrowed by language. The limit
// query parameter bounds the result; an unparseable limit falls back
// to the default rather than erroring.
func (controller *FlashcardsController) List(c *gin.Context) {
	filter := map[string]any{}
	if language := c.Query("language"); language != "" {
		filter["language"] = language
	}
	limit := parseLimit(c, "limit", DefaultFlashcardLimit)

	docs, err := controller.store.Query(entities.CollectionFlashcard, filter, limit)
	if err != nil {
		respondStoreError(c, controller.log, err, "list flashcards")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": serializeAll(docs)})
}

// Create validates and stores a new flashcard, returning its id.
func (controller *FlashcardsController) Create(c *gin.Context) {
	var payload entities.Flashcard
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	id, err := controller.store.Create(entities.CollectionFlashcard, payload.Document())
	if err != nil {
		respondStoreError(c, controller.log, err, "create flashcard")
		return
	}

	respondCreated(c, gin.H{"id": id})
}
