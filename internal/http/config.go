package http

import (
	"github.com/example/langlearn/internal/logger"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces a long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Store is the document store the content controllers read from
	// and write to. Pass database.Disconnected() when no DATABASE_URL
	// is configured; content routes then answer with store errors
	// while the diagnostics endpoints keep working.
	Store DocumentStore

	// DatabaseURL is only inspected by the /test endpoint to report
	// whether the variable was set. The store itself is already
	// connected (or not) by the time the router is built.
	DatabaseURL string

	// Application info
	Version string

	Logger *logger.Logger
}
