// Package database implements the document store backing the API.
//
// # Design
//
// Documents are schemaless JSON payloads grouped by collection name.
// Instead of one table per domain type, everything lives in a single
// documents table:
//
//	seq         INTEGER PRIMARY KEY AUTOINCREMENT  -- insertion order
//	id          TEXT UNIQUE                        -- caller-facing UUID
//	collection  TEXT                               -- "lesson", "quiz", ...
//	data        JSON                               -- the document itself
//	created_at  DATETIME
//
// Field filters are translated to JSON_EXTRACT expressions, so the
// filter {"language": "Spanish"} becomes
//
//	JSON_EXTRACT(data, '$.language') = 'Spanish'
//
// New document kinds therefore need no migrations: writing to a fresh
// collection name is enough.
//
// # Degraded mode
//
// When DATABASE_URL is not set, or the database cannot be opened at
// startup, the server keeps running with a Disconnected store. Every
// operation on it returns ErrUnavailable; handlers translate that into
// error responses while the diagnostics endpoints keep answering.
//
// # Usage
//
//	store, err := database.Open("./langlearn.db")
//
//	id, err := store.Create("lesson", map[string]any{"title": "Basics"})
//	docs, err := store.Query("lesson", map[string]any{"level": "A1"}, 0)
//	latest, err := store.Latest("progress", map[string]any{"user_id": "u1"})
package database
