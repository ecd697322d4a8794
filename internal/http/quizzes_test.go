package http

import (
	"encoding/json"
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

func setupQuizzesTestStore(t *testing.T) (*database.Store, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_quizzes_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	store, err := database.Open(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		store.Close()
		os.Remove(dbPath)
	}
	return store, cleanup
}

func quizzesRouter(store ContentStore) *gin.Engine {
	controller := NewQuizzesController(store, logger.NewNop())
	router := gin.New()
	router.GET("/quizzes", controller.List)
	router.POST("/quizzes", controller.Create)
	return router
}

func TestQuizzesController_Create(t *testing.T) {
	t.Run("stores free-form questions untouched", func(t *testing.T) {
		store, cleanup := setupQuizzesTestStore(t)
		defer cleanup()

		router := quizzesRouter(store)

		body := `{
			"lesson_id": "lesson-1",
			"questions": [
				{"id": 1, "prompt": "Say hello", "options": ["Hola", "Adios"], "answer": "Hola", "type": "choice"}
			]
		}`

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/quizzes", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		docs, err := store.Query(entities.CollectionQuiz, nil, 0)
		require.NoError(t, err)
		require.Len(t, docs, 1)

		questions := docs[0].Fields["questions"].([]any)
		require.Len(t, questions, 1)
		question := questions[0].(map[string]any)
		assert.Equal(t, "Say hello", question["prompt"])
		assert.Equal(t, []any{"Hola", "Adios"}, question["options"])
	})

	t.Run("defaults questions to empty list", func(t *testing.T) {
		store, cleanup := setupQuizzesTestStore(t)
		defer cleanup()

		router := quizzesRouter(store)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/quizzes", strings.NewReader(`{"lesson_id": "lesson-1"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		docs, err := store.Query(entities.CollectionQuiz, nil, 0)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, []any{}, docs[0].Fields["questions"])
	})

	t.Run("returns 400 when lesson_id is missing", func(t *testing.T) {
		store, cleanup := setupQuizzesTestStore(t)
		defer cleanup()

		router := quizzesRouter(store)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/quizzes", strings.NewReader(`{"questions": []}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		count, err := store.Count(entities.CollectionQuiz, nil)
		require.NoError(t, err)
		assert.EqualValues(t, 0, count)
	})
}

func TestQuizzesController_List(t *testing.T) {
	t.Run("filters by lesson_id", func(t *testing.T) {
		store, cleanup := setupQuizzesTestStore(t)
		defer cleanup()

		_, err := store.Create(entities.CollectionQuiz, map[string]any{"lesson_id": "a", "questions": []any{}})
		require.NoError(t, err)
		_, err = store.Create(entities.CollectionQuiz, map[string]any{"lesson_id": "b", "questions": []any{}})
		require.NoError(t, err)

		router := quizzesRouter(store)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/quizzes?lesson_id=b", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

		items := response["items"].([]interface{})
		require.Len(t, items, 1)
		assert.Equal(t, "b", items[0].(map[string]interface{})["lesson_id"])
	})

	t.Run("returns all quizzes without filter", func(t *testing.T) {
		store, cleanup := setupQuizzesTestStore(t)
		defer cleanup()

		_, err := store.Create(entities.CollectionQuiz, map[string]any{"lesson_id": "a"})
		require.NoError(t, err)
		_, err = store.Create(entities.CollectionQuiz, map[string]any{"lesson_id": "b"})
		require.NoError(t, err)

		router := quizzesRouter(store)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/quizzes", nil)
		router.ServeHTTP(w, req)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response["items"], 2)
	})
}
