package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrUnavailable is returned by every operation on a store that has no
// backing database, either because DATABASE_URL was never set or
// because opening it failed at startup.
var ErrUnavailable = errors.New("document store unavailable")

// document is a stored row: one schemaless JSON payload filed under a
// collection name. seq preserves insertion order across the table.
type document struct {
	Seq        uint64 `gorm:"primaryKey;autoIncrement"`
	ID         string `gorm:"uniqueIndex;size:36"`
	Collection string `gorm:"index;size:64"`
	Data       datatypes.JSON
	CreatedAt  time.Time
}

func (document) TableName() string { return "documents" }

// Document is a decoded row handed back to callers.
type Document struct {
	ID        string
	Fields    map[string]any
	CreatedAt time.Time
}

// Store keeps schemaless documents in a single SQLite table, grouped
// by collection name. A Disconnected store is safe to call; every
// operation on it reports ErrUnavailable.
type Store struct {
	db  *gorm.DB
	dsn string
}

// Open connects to the SQLite database at dsn and migrates the
// documents table.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	if err := db.AutoMigrate(&document{}); err != nil {
		return nil, fmt.Errorf("failed to migrate document store: %w", err)
	}

	return &Store{db: db, dsn: dsn}, nil
}

// Disconnected returns a store with no backing database.
func Disconnected() *Store {
	return &Store{}
}

// Available reports whether the store has a backing database.
func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

// Name returns the database file name, stripped of DSN decorations
// like the file: prefix and query parameters.
func (s *Store) Name() string {
	if s == nil || s.dsn == "" {
		return ""
	}
	name := strings.TrimPrefix(s.dsn, "file:")
	if i := strings.IndexByte(name, '?'); i >= 0 {
		name = name[:i]
	}
	return filepath.Base(name)
}

// Create inserts doc into collection and returns the generated id.
func (s *Store) Create(collection string, doc map[string]any) (string, error) {
	if !s.Available() {
		return "", ErrUnavailable
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s document: %w", collection, err)
	}

	row := document{
		ID:         uuid.NewString(),
		Collection: collection,
		Data:       datatypes.JSON(payload),
	}
	if err := s.db.Create(&row).Error; err != nil {
		return "", fmt.Errorf("failed to insert %s document: %w", collection, err)
	}

	return row.ID, nil
}

// Query returns the documents of a collection matching every field in
// filter, oldest first. A nil or empty filter matches everything;
// limit <= 0 means no limit.
func (s *Store) Query(collection string, filter map[string]any, limit int) ([]Document, error) {
	return s.find(collection, filter, limit, false)
}

// Latest returns the most recently inserted matching document, or nil
// when nothing matches.
func (s *Store) Latest(collection string, filter map[string]any) (*Document, error) {
	docs, err := s.find(collection, filter, 1, true)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return &docs[0], nil
}

func (s *Store) find(collection string, filter map[string]any, limit int, newestFirst bool) ([]Document, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}

	order := "seq"
	if newestFirst {
		order = "seq DESC"
	}
	tx := s.filtered(collection, filter).Order(order)
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var rows []document
	if err := tx.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query %s documents: %w", collection, err)
	}

	docs := make([]Document, len(rows))
	for i, row := range rows {
		fields := map[string]any{}
		if err := json.Unmarshal(row.Data, &fields); err != nil {
			return nil, fmt.Errorf("failed to decode %s document %s: %w", collection, row.ID, err)
		}
		docs[i] = Document{ID: row.ID, Fields: fields, CreatedAt: row.CreatedAt}
	}
	return docs, nil
}

// Count returns how many documents of a collection match filter.
func (s *Store) Count(collection string, filter map[string]any) (int64, error) {
	if !s.Available() {
		return 0, ErrUnavailable
	}

	var n int64
	if err := s.filtered(collection, filter).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s documents: %w", collection, err)
	}
	return n, nil
}

// filtered builds the base query for a collection. Filter fields are
// applied in sorted order so the generated SQL is stable.
func (s *Store) filtered(collection string, filter map[string]any) *gorm.DB {
	tx := s.db.Model(&document{}).Where("collection = ?", collection)

	fields := make([]string, 0, len(filter))
	for field := range filter {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		tx = tx.Where(datatypes.JSONQuery("data").Equals(filter[field], field))
	}
	return tx
}

// Collections lists the distinct collection names present in the
// store, sorted alphabetically.
func (s *Store) Collections() ([]string, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}

	var names []string
	err := s.db.Model(&document{}).
		Distinct().
		Order("collection").
		Pluck("collection", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

// Ping verifies the backing database still answers.
func (s *Store) Ping() error {
	if !s.Available() {
		return ErrUnavailable
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (s *Store) Close() error {
	if !s.Available() {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
