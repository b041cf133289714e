// Command service runs the quote HTTP server: the JSON API under /api/quotes,
// the static page at / and the operational probes under /-/.
package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsamuelsen/quote-service/internal/adapters/http"
	"github.com/jsamuelsen/quote-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-service/internal/adapters/memory"
	"github.com/jsamuelsen/quote-service/internal/app"
	"github.com/jsamuelsen/quote-service/internal/platform/config"
	"github.com/jsamuelsen/quote-service/internal/platform/logging"
	"github.com/jsamuelsen/quote-service/internal/platform/telemetry"
	"github.com/jsamuelsen/quote-service/internal/ports"
	"github.com/jsamuelsen/quote-service/web"
)

// Set through -ldflags "-X main.Version=... -X main.Commit=... -X main.BuildTime=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := newLogger(cfg)
	logging.SetDefault(logger)

	logger.Info("starting quote service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.Int("not_found_status", cfg.API.NotFoundStatus),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tel, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		// ctx is already cancelled by the time this runs.
		if err := tel.Shutdown(context.Background()); err != nil {
			logger.Error("telemetry shutdown failed", slog.Any("error", err))
		}
	}()

	// Quotes live only in this process; every start begins from the seed.
	store := memory.NewQuoteStore()

	health := ports.NewHealthRegistry()
	if err := health.Register(store); err != nil {
		return fmt.Errorf("registering quote store health check: %w", err)
	}

	quotes := app.NewQuoteService(app.QuoteServiceConfig{Repository: store, Logger: logger})

	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:        logger,
		AppConfig:     &cfg.App,
		HealthHandler: handlers.NewHealthHandler(health, handlers.NewBuildInfo(Version, Commit, BuildTime), telemetry.NewRegistry(store)),
		QuoteHandler:  handlers.NewQuoteHandler(quotes, handlers.WithNotFoundStatus(cfg.API.NotFoundStatus)),
		StaticHandler: handlers.NewStaticHandler(staticFS(cfg.Web, logger)),
		Timeout:       cfg.API.RequestTimeout,
	})

	return serve(ctx, logger, server, cfg.Server.ShutdownTimeout)
}

func newLogger(cfg *config.Config) *slog.Logger {
	return logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
}

// staticFS picks the page bundle: a directory on disk when configured,
// otherwise the copy compiled into the binary.
func staticFS(cfg config.WebConfig, logger *slog.Logger) fs.FS {
	if cfg.Dir == "" {
		return web.Static()
	}

	logger.Info("serving static files from disk", slog.String("dir", cfg.Dir))

	return os.DirFS(cfg.Dir)
}

// serve starts the server and blocks until it fails or ctx is cancelled,
// then drains in-flight requests within shutdownTimeout.
func serve(ctx context.Context, logger *slog.Logger, server *http.Server, shutdownTimeout time.Duration) error {
	serverErr := server.Start()

	select {
	case err, ok := <-serverErr:
		if ok && err != nil {
			return fmt.Errorf("server error: %w", err)
		}

		return nil

	case <-ctx.Done():
		logger.Info("shutdown signal received", slog.Duration("timeout", shutdownTimeout))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
