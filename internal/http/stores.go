package http

import "github.com/example/langlearn/internal/database"

// This file consolidates the store interface definitions used by HTTP
// controllers. Controllers with distinct needs declare their own
// narrow interface next to their handlers; the shared ones live here.

// ContentStore is what the lesson, quiz and flashcard controllers
// need: create documents and list them back out.
type ContentStore interface {
	Create(collection string, document map[string]any) (string, error)
	Query(collection string, filter map[string]any, limit int) ([]database.Document, error)
}

// DocumentStore combines every store capability the API uses.
// *database.Store satisfies it; tests may substitute fakes for the
// narrow per-controller interfaces instead.
type DocumentStore interface {
	ContentStore
	Latest(collection string, filter map[string]any) (*database.Document, error)
	Count(collection string, filter map[string]any) (int64, error)
	Collections() ([]string, error)
	Name() string
	Available() bool
	Ping() error
}
