package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/langlearn/internal/config"
	"github.com/example/langlearn/internal/database"
	"github.com/example/langlearn/internal/demo"
	"github.com/example/langlearn/internal/entities"
)

// SeedDemoCommand handles seeding the document store with demo content
type SeedDemoCommand struct {
	DatabasePath string
	Verbose      bool
}

// NewSeedDemoCommand creates a new SeedDemoCommand
func NewSeedDemoCommand() *SeedDemoCommand {
	return &SeedDemoCommand{}
}

// ParseFlags parses command line flags
func (cmd *SeedDemoCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed-demo", flag.ExitOnError)

	defaultPath := os.Getenv("DATABASE_URL")
	if defaultPath == "" {
		defaultPath = config.DefaultDatabasePath
	}

	fs.StringVar(&cmd.DatabasePath, "db", defaultPath, "Path to the document store file")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "List the stored lessons after seeding")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed-demo [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Populate the document store with demo lessons and flashcards.\n\n")
		fmt.Fprintf(os.Stderr, "This command:\n")
		fmt.Fprintf(os.Stderr, "  1. Opens (or creates) the SQLite document store\n")
		fmt.Fprintf(os.Stderr, "  2. Inserts the demo lessons and flashcards\n")
		fmt.Fprintf(os.Stderr, "  3. Skips every collection that already holds documents\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s seed-demo\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s seed-demo -db ./langlearn.db\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s seed-demo -verbose\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	return nil
}

// Run executes the seed command
func (cmd *SeedDemoCommand) Run() error {
	fmt.Println("🌱 LangLearn Demo Seed")
	fmt.Println("======================")

	// Leave DSNs alone, only plain paths get absolutized
	if !strings.HasPrefix(cmd.DatabasePath, "file:") {
		absPath, err := filepath.Abs(cmd.DatabasePath)
		if err != nil {
			return fmt.Errorf("failed to get absolute path for database: %w", err)
		}
		cmd.DatabasePath = absPath
	}

	store, err := database.Open(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open document store: %w", err)
	}
	defer store.Close()

	fmt.Printf("📁 Database: %s\n", cmd.DatabasePath)

	lessonsBefore, err := store.Count(entities.CollectionLesson, nil)
	if err != nil {
		return fmt.Errorf("failed to count lessons: %w", err)
	}
	cardsBefore, err := store.Count(entities.CollectionFlashcard, nil)
	if err != nil {
		return fmt.Errorf("failed to count flashcards: %w", err)
	}

	if err := demo.Seed(store); err != nil {
		return fmt.Errorf("failed to seed demo content: %w", err)
	}

	lessonsAfter, err := store.Count(entities.CollectionLesson, nil)
	if err != nil {
		return fmt.Errorf("failed to count lessons: %w", err)
	}
	cardsAfter, err := store.Count(entities.CollectionFlashcard, nil)
	if err != nil {
		return fmt.Errorf("failed to count flashcards: %w", err)
	}

	fmt.Printf("📚 Lessons: %d (+%d)\n", lessonsAfter, lessonsAfter-lessonsBefore)
	fmt.Printf("🃏 Flashcards: %d (+%d)\n", cardsAfter, cardsAfter-cardsBefore)

	if lessonsAfter == lessonsBefore && cardsAfter == cardsBefore {
		fmt.Println("\n⏭️  Demo content already present, nothing to do")
	} else {
		fmt.Println("\n✅ Seed complete!")
	}

	if cmd.Verbose {
		docs, err := store.Query(entities.CollectionLesson, nil, 0)
		if err != nil {
			return fmt.Errorf("failed to list lessons: %w", err)
		}
		fmt.Println("\n=== Lessons ===")
		for _, doc := range docs {
			fmt.Printf("  - %v (%v)\n", doc.Fields["title"], doc.Fields["level"])
		}
	}

	return nil
}
