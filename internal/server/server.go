// Package server exposes the translator over a local HTTP API.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"realtime-translator/internal/config"
	"realtime-translator/internal/limiter"
	"realtime-translator/internal/logger"
	"realtime-translator/internal/translation"
	"realtime-translator/services"
)

// StartOpts holds configuration for the API server.
type StartOpts struct {
	Translator translation.Translator
	History    *services.HistoryStore
	Port       int
	Out        io.Writer
	// MaxConcurrent caps simultaneous translate calls. Zero means
	// config.ServerMaxConcurrent.
	MaxConcurrent int
}

// Start launches the API server. It blocks until ctx is cancelled, then
// shuts down gracefully.
func Start(ctx context.Context, opts StartOpts) error {
	if opts.Translator == nil {
		return fmt.Errorf("server: translator is required")
	}
	if opts.Port <= 0 {
		opts.Port = config.DefaultServerPort
	}

	gin.SetMode(gin.ReleaseMode)
	router := NewRouter(opts)

	srv := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", opts.Port),
		Handler: router,
	}

	// Graceful shutdown on context cancellation.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ServerShutdownPeriod)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server: shutdown: %v", err)
		}
	}()

	if opts.Out != nil {
		fmt.Fprintf(opts.Out, "Translator API running at http://localhost:%d\n", opts.Port)
	}
	logger.Info("server listening on %s", srv.Addr)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// NewRouter builds the gin engine with all API routes.
func NewRouter(opts StartOpts) *gin.Engine {
	if opts.History == nil {
		opts.History = services.NewHistoryStore(nil)
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = config.ServerMaxConcurrent
	}

	router := gin.New()
	router.Use(gin.Recovery())
	registerRoutes(router, &handlers{
		translator: opts.Translator,
		history:    opts.History,
		slots:      limiter.New(opts.MaxConcurrent),
	})
	return router
}
