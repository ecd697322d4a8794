package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/example/langlearn/internal/database"
	"github.com/example/langlearn/internal/logger"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondStoreError logs err and sends the 500 response for a failed
// store operation. An unavailable store gets a fixed message so
// clients can tell an outage from a bug; anything else carries the
// truncated error text.
func respondStoreError(c *gin.Context, log *logger.Logger, err error, operation string) {
	if errors.Is(err, database.ErrUnavailable) {
		log.Warn("store unavailable", "operation", operation)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "store unavailable"})
		return
	}
	log.Error("store operation failed", "operation", operation, "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: truncate(err.Error(), 80)})
}

// --- Success Response Helpers ---

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// --- Parameter Parsing ---

// parseLimit reads an integer query parameter, falling back to the
// default when the parameter is missing or not a number.
func parseLimit(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return limit
}

// --- Serialization ---

// serialize flattens a stored document for API responses: the
// generated id joins the document's own fields under the "id" key.
func serialize(doc database.Document) map[string]any {
	out := make(map[string]any, len(doc.Fields)+1)
	for k, v := range doc.Fields {
		out[k] = v
	}
	out["id"] = doc.ID
	return out
}

// serializeAll maps serialize over a result set, keeping its order.
func serializeAll(docs []database.Document) []map[string]any {
	items := make([]map[string]any, len(docs))
	for i, doc := range docs {
		items[i] = serialize(doc)
	}
	return items
}

// truncate clips s to at most n characters.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
