package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/langlearn/internal/config"
	"github.com/example/langlearn/internal/database"
	http_controllers "github.com/example/langlearn/internal/http"
	"github.com/example/langlearn/internal/logger"
)

// Serve runs the HTTP server until SIGINT or SIGTERM, then drains
// in-flight requests within the configured shutdown timeout.
func Serve(router *gin.Engine, cfg *config.Config, logg *logger.Logger) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		logg.Info("Starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("Server failed to listen", "error", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT.
	// SIGKILL cannot be caught, no point registering it.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logg.Info("Shutting down server", "timeout", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logg.Fatal("Server shutdown failed", "error", err)
	}

	logg.Info("Server exiting")
}

// Run wires the document store and the router, then serves. A missing
// or unreachable store is not fatal: the API boots in degraded mode so
// the diagnostics endpoints stay reachable.
func Run(cfg *config.Config, version string) {
	logg, err := logger.New(cfg.Log.Mode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logg.Sync()

	logg.Info("Starting LangLearn API", "version", version)

	var store *database.Store
	if cfg.Database.URL == "" {
		logg.Warn("DATABASE_URL is not set, starting without a document store")
		store = database.Disconnected()
	} else {
		store, err = database.Open(cfg.Database.URL)
		if err != nil {
			logg.Error("Failed to connect to document store, continuing degraded", "error", err)
			store = database.Disconnected()
		} else {
			logg.Info("Document store connected", "name", store.Name())
		}
	}
	defer func() {
		if err := store.Close(); err != nil {
			logg.Error("Error closing document store", "error", err)
		}
	}()

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Store:       store,
		DatabaseURL: cfg.Database.URL,
		Version:     version,
		Logger:      logg,
	})

	Serve(router, cfg, logg)
}
