package api

import (
	"context"
	"fmt"
	"time"

	"github.com/amaumene/seasonsync/internal/api/handlers"
	"github.com/amaumene/seasonsync/internal/api/middleware"
	"github.com/amaumene/seasonsync/internal/config"
	"github.com/amaumene/seasonsync/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

// Server represents the operational HTTP server
type Server struct {
	app    *fiber.App
	addr   string
	logger *logrus.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, status handlers.StatusSource, m *metrics.Metrics, logger *logrus.Logger) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			AppName:               "seasonsync",
			DisableStartupMessage: true,
			ReadTimeout:           15 * time.Second,
			WriteTimeout:          15 * time.Second,
			IdleTimeout:           60 * time.Second,
		}),
		addr:   ":" + cfg.ServerPort,
		logger: logger,
	}

	s.app.Use(middleware.Logging(logger))
	s.setupRoutes(status, m)

	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(status handlers.StatusSource, m *metrics.Metrics) {
	// Health check
	healthHandler := handlers.NewHealthHandler(s.logger)
	s.app.Get("/health", healthHandler.Handle)

	// Last reconciliation pass
	statusHandler := handlers.NewStatusHandler(status, s.logger)
	s.app.Get("/status", statusHandler.Handle)

	// Prometheus scrape endpoint
	s.app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
}

// App returns the underlying fiber application
func (s *Server) App() *fiber.App {
	return s.app
}

// Start serves until ctx is cancelled or the listener fails
func (s *Server) Start(ctx context.Context) error {
	s.logger.WithField("port", s.addr).Info("Starting HTTP server")

	errChan := make(chan error, 1)
	go func() {
		if err := s.app.Listen(s.addr); err != nil {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return s.app.ShutdownWithContext(shutdownCtx)
}
