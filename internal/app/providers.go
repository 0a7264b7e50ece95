package app

import (
	"context"
	"fmt"
	"time"

	"github.com/amaumene/seasonsync/internal/api"
	"github.com/amaumene/seasonsync/internal/config"
	"github.com/amaumene/seasonsync/internal/controllers"
	"github.com/amaumene/seasonsync/internal/metrics"
	"github.com/amaumene/seasonsync/internal/scheduler"
	"github.com/amaumene/seasonsync/internal/services/qbittorrent"
	"github.com/amaumene/seasonsync/internal/services/sonarr"
	"github.com/amaumene/seasonsync/internal/tracing"
	"github.com/amaumene/seasonsync/internal/utils"
	"github.com/google/wire"
	"github.com/sirupsen/logrus"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// ProviderSet wires every component of the daemon
var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideSonarrClient,
	ProvideQBittorrentClient,
	ProvideIgnoreList,
	ProvideTracerProvider,
	ProvideTracer,
	ProvideSkipSet,
	ProvideReconcilerOptions,
	ProvideScheduler,
	ProvideServer,
	metrics.New,
	controllers.NewResolver,
	controllers.NewReconciler,
	NewApp,
	wire.Bind(new(controllers.LibraryClient), new(*sonarr.Client)),
	wire.Bind(new(controllers.Submitter), new(*qbittorrent.Client)),
)

// ProvideLogger builds the process logger
func ProvideLogger(cfg *config.Config) *logrus.Logger {
	return utils.NewLogger(cfg.LogLevel, cfg.LogFormat)
}

// ProvideSonarrClient builds the library client
func ProvideSonarrClient(cfg *config.Config, logger *logrus.Logger) (*sonarr.Client, error) {
	client, err := sonarr.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Sonarr client: %w", err)
	}
	return client, nil
}

// ProvideQBittorrentClient builds the download submitter
func ProvideQBittorrentClient(cfg *config.Config, logger *logrus.Logger) (*qbittorrent.Client, error) {
	client, err := qbittorrent.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize qBittorrent client: %w", err)
	}
	return client, nil
}

// ProvideIgnoreList loads the ignore file, if configured
func ProvideIgnoreList(cfg *config.Config, logger *logrus.Logger) (*utils.IgnoreList, error) {
	list, err := utils.LoadIgnoreList(cfg.IgnoreFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load ignore list: %w", err)
	}
	if list.Len() > 0 {
		logger.WithField("count", list.Len()).Info("Ignore list loaded")
	}
	return list, nil
}

// ProvideTracerProvider builds the tracer provider; the cleanup flushes it
func ProvideTracerProvider(logger *logrus.Logger) (*sdktrace.TracerProvider, func()) {
	provider := tracing.NewProvider(logger)
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			logger.WithError(err).Warn("Failed to shut down tracer provider")
		}
	}
	return provider, cleanup
}

// ProvideTracer returns the reconciler tracer
func ProvideTracer(provider *sdktrace.TracerProvider) trace.Tracer {
	return tracing.Tracer(provider)
}

// ProvideSkipSet builds the skip-set; a zero window disables it
func ProvideSkipSet(cfg *config.Config) *controllers.SkipSet {
	if cfg.SkipWindow <= 0 {
		return nil
	}
	return controllers.NewSkipSet(cfg.SkipWindow, time.Now())
}

// ProvideReconcilerOptions extracts the pass tunables
func ProvideReconcilerOptions(cfg *config.Config) controllers.ReconcilerOptions {
	return controllers.ReconcilerOptions{
		Category:      cfg.Category,
		MaxReleaseAge: cfg.MaxReleaseAge,
	}
}

// ProvideScheduler builds the interval driver
func ProvideScheduler(cfg *config.Config, reconciler *controllers.Reconciler, logger *logrus.Logger) *scheduler.Scheduler {
	return scheduler.NewScheduler(reconciler, cfg.CheckInterval, logger)
}

// ProvideServer builds the operational server, or nil when no port is configured
func ProvideServer(cfg *config.Config, reconciler *controllers.Reconciler, m *metrics.Metrics, logger *logrus.Logger) *api.Server {
	if cfg.ServerPort == "" {
		return nil
	}
	return api.NewServer(cfg, reconciler, m, logger)
}
