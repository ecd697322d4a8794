package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// The API is called straight from browser-hosted study apps on
	// arbitrary origins, so CORS is wide open.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type", "X-Requested-With"},
	}))

	// Create controllers with appropriate interfaces
	diagnostics := NewDiagnosticsController(cfg.Store, cfg.DatabaseURL)
	health := NewHealthController(cfg.Store, cfg.Version)
	seeder := NewSeedController(cfg.Store, cfg.Logger)
	lessons := NewLessonsController(cfg.Store, cfg.Logger)
	quizzes := NewQuizzesController(cfg.Store, cfg.Logger)
	flashcards := NewFlashcardsController(cfg.Store, cfg.Logger)
	progress := NewProgressController(cfg.Store, cfg.Logger)

	// Diagnostics endpoints
	router.GET("/", diagnostics.Root)
	router.GET("/health", health.Status)
	router.GET("/schema", diagnostics.Schema)
	router.GET("/test", diagnostics.Test)

	// Demo content seeding
	router.POST("/seed", seeder.Seed)

	// Content endpoints
	router.GET("/lessons", lessons.List)
	router.POST("/lessons", lessons.Create)
	router.GET("/quizzes", quizzes.List)
	router.POST("/quizzes", quizzes.Create)
	router.GET("/flashcards", flashcards.List)
	router.POST("/flashcards", flashcards.Create)

	// Per-user progress snapshots
	router.GET("/progress/:user_id", progress.Get)
	router.POST("/progress", progress.Update)

	return router
}
