package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/example/langlearn/internal/database"
	"github.com/example/langlearn/internal/demo"
	"github.com/example/langlearn/internal/http"
)

// =============================================================================
// Document Store
// =============================================================================

// The SQLite-backed store serves every controller-facing interface.
var _ http.DocumentStore = (*database.Store)(nil)
var _ http.ContentStore = (*database.Store)(nil)
var _ http.ProgressStore = (*database.Store)(nil)
var _ http.DiagnosticsStore = (*database.Store)(nil)
var _ http.HealthStore = (*database.Store)(nil)

// =============================================================================
// Seeding
// =============================================================================

var _ demo.Store = (*database.Store)(nil)
