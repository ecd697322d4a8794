// Package demo holds the built-in demo content and the routine that
// seeds it into an empty store.
package demo

import (
	"fmt"

	"github.com/example/langlearn/internal/entities"
)

// Store is the part of the document store seeding needs.
type Store interface {
	Count(collection string, filter map[string]any) (int64, error)
	Create(collection string, document map[string]any) (string, error)
}

// Lessons returns the built-in demo lessons.
func Lessons() []entities.Lesson {
	return []entities.Lesson{
		{
			Language:   "Spanish",
			Title:      "Basics: Greetings",
			Level:      entities.LevelA1,
			Content:    "Hola, ¿cómo estás? Learn common greetings and introductions.",
			Objectives: []string{"Greet someone", "Introduce yourself", "Say goodbye"},
		},
		{
			Language:   "French",
			Title:      "Basics: Numbers",
			Level:      entities.LevelA1,
			Content:    "Un, deux, trois... Learn numbers 1-20 with pronunciation tips.",
			Objectives: []string{"Count to 20", "Ask and tell age"},
		},
	}
}

// Flashcards returns the built-in demo flashcards.
func Flashcards() []entities.Flashcard {
	return []entities.Flashcard{
		{Language: "Spanish", Term: "Hola", Definition: "Hello", Example: "Hola, Juan!"},
		{Language: "Spanish", Term: "Adiós", Definition: "Goodbye", Example: "Adiós, hasta mañana."},
		{Language: "French", Term: "Merci", Definition: "Thank you", Example: "Merci beaucoup!"},
	}
}

// Seed inserts the demo content into every collection that is still
// empty. Collections are checked independently, so wiping one brings
// only that one back on the next call. Seeding twice is a no-op.
func Seed(store Store) error {
	count, err := store.Count(entities.CollectionLesson, nil)
	if err != nil {
		return fmt.Errorf("failed to count lessons: %w", err)
	}
	if count == 0 {
		for _, lesson := range Lessons() {
			if _, err := store.Create(entities.CollectionLesson, lesson.Document()); err != nil {
				return fmt.Errorf("failed to seed lesson %q: %w", lesson.Title, err)
			}
		}
	}

	count, err = store.Count(entities.CollectionFlashcard, nil)
	if err != nil {
		return fmt.Errorf("failed to count flashcards: %w", err)
	}
	if count == 0 {
		for _, card := range Flashcards() {
			if _, err := store.Create(entities.CollectionFlashcard, card.Document()); err != nil {
				return fmt.Errorf("failed to seed flashcard %q: %w", card.Term, err)
			}
		}
	}

	return nil
}
