package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/langlearn/internal/database"
	"github.com/example/langlearn/internal/entities"
	"github.com/example/langlearn/internal/logger"
)

func setupFlashcardsTestStore(t *testing.T) (*database.Store, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_flashcards_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	store, err := database.Open(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		store.Close()
		os.Remove(dbPath)
	}
	return store, cleanup
}

func flashcardsRouter(store ContentStore) *gin.Engine {
	controller := NewFlashcardsController(store, logger.NewNop())
	router := gin.New()
	router.GET("/flashcards", controller.List)
	router.POST("/flashcards", controller.Create)
	return router
}

func listFlashcards(t *testing.T, router *gin.Engine, path string) []interface{} {
	t.Helper()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response["items"].([]interface{})
}

func TestFlashcardsController_Create(t *testing.T) {
	t.Run("creates flashcard and returns id", func(t *testing.T) {
		store, cleanup := setupFlashcardsTestStore(t)
		defer cleanup()

		router := flashcardsRouter(store)

		body := `{"language": "Spanish", "term": "Hola", "definition": "Hello", "example": "Hola, Juan!"}`

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/flashcards", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		docs, err := store.Query(entities.CollectionFlashcard, nil, 0)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "Hola", docs[0].Fields["term"])
		assert.Equal(t, "Hola, Juan!", docs[0].Fields["example"])
	})

	t.Run("omits example when not provided", func(t *testing.T) {
		store, cleanup := setupFlashcardsTestStore(t)
		defer cleanup()

		router := flashcardsRouter(store)

		body := `{"language": "Spanish", "term": "Adios", "definition": "Goodbye"}`

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/flashcards", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		docs, err := store.Query(entities.CollectionFlashcard, nil, 0)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		_, ok := docs[0].Fields["example"]
		assert.False(t, ok)
	})

	t.Run("returns 400 when definition is missing", func(t *testing.T) {
		store, cleanup := setupFlashcardsTestStore(t)
		defer cleanup()

		router := flashcardsRouter(store)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/flashcards", strings.NewReader(`{"language": "Spanish", "term": "Hola"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestFlashcardsController_List(t *testing.T) {
	t.Run("caps results at the default limit", func(t *testing.T) {
		store, cleanup := setupFlashcardsTestStore(t)
		defer cleanup()

		for i := 0; i < DefaultFlashcardLimit+5; i++ {
			_, err := store.Create(entities.CollectionFlashcard, map[string]any{
				"language": "Spanish",
				"term":     fmt.Sprintf("term-%d", i),
			})
			require.NoError(t, err)
		}

		router := flashcardsRouter(store)

		items := listFlashcards(t, router, "/flashcards")
		assert.Len(t, items, DefaultFlashcardLimit)

		// The cap keeps the oldest cards.
		first := items[0].(map[string]interface{})
		assert.Equal(t, "term-0", first["term"])
	})

	t.Run("honours an explicit limit", func(t *testing.T) {
		store, cleanup := setupFlashcardsTestStore(t)
		defer cleanup()

		for i := 0; i < 5; i++ {
			_, err := store.Create(entities.CollectionFlashcard, map[string]any{"term": fmt.Sprintf("term-%d", i)})
			require.NoError(t, err)
		}

		router := flashcardsRouter(store)

		items := listFlashcards(t, router, "/flashcards?limit=2")
		assert.Len(t, items, 2)
	})

	t.Run("treats limit zero as no cap", func(t *testing.T) {
		store, cleanup := setupFlashcardsTestStore(t)
		defer cleanup()

		for i := 0; i < DefaultFlashcardLimit+5; i++ {
			_, err := store.Create(entities.CollectionFlashcard, map[string]any{"term": fmt.Sprintf("term-%d", i)})
			require.NoError(t, err)
		}

		router := flashcardsRouter(store)

		items := listFlashcards(t, router, "/flashcards?limit=0")
		assert.Len(t, items, DefaultFlashcardLimit+5)
	})

	t.Run("falls back to the default limit for junk input", func(t *testing.T) {
		store, cleanup := setupFlashcardsTestStore(t)
		defer cleanup()

		for i := 0; i < 3; i++ {
			_, err := store.Create(entities.CollectionFlashcard, map[string]any{"term": fmt.Sprintf("term-%d", i)})
			require.NoError(t, err)
		}

		router := flashcardsRouter(store)

		items := listFlashcards(t, router, "/flashcards?limit=lots")
		assert.Len(t, items, 3)
	})

	t.Run("filters by language", func(t *testing.T) {
		store, cleanup := setupFlashcardsTestStore(t)
		defer cleanup()

		_, err := store.Create(entities.CollectionFlashcard, map[string]any{"language": "Spanish", "term": "Hola"})
		require.NoError(t, err)
		_, err = store.Create(entities.CollectionFlashcard, map[string]any{"language": "French", "term": "Merci"})
		require.NoError(t, err)

		router := flashcardsRouter(store)

		items := listFlashcards(t, router, "/flashcards?language=French")
		require.Len(t, items, 1)
		assert.Equal(t, "Merci", items[0].(map[string]interface{})["term"])
	})
}
