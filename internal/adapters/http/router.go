package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-service/internal/platform/config"
	"github.com/jsamuelsen/quote-service/internal/platform/telemetry"
)

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// HealthHandler handles the /-/ operational endpoints.
	HealthHandler *handlers.HealthHandler

	// QuoteHandler handles /api/quotes.
	QuoteHandler *handlers.QuoteHandler

	// StaticHandler serves the front-end and answers unmatched routes.
	StaticHandler *handlers.StaticHandler

	// Timeout is the deadline for /api requests. Zero disables it.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Context logger - request-scoped logger for the rest of the chain
//  3. Request ID - generate/extract request ID
//  4. Correlation ID - handle distributed tracing correlation
//  5. OpenTelemetry - tracing and metrics
//  6. Logging - request logging (skips /-/ endpoints)
//  7. Timeout - request deadline, /api only
//
// Route groups:
//   - /-/ (internal): probes, build info and Prometheus metrics
//   - /api/quotes: the quote collection
//   - everything else: static files, then the flat 404 body
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	serviceName := "quote-service"
	if cfg.AppConfig != nil && cfg.AppConfig.Name != "" {
		serviceName = cfg.AppConfig.Name
	}

	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.ContextLogger(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(serviceName)...)
	engine.Use(middleware.Logging(cfg.Logger))

	// Probes skip the API timeout.
	if cfg.HealthHandler != nil {
		cfg.HealthHandler.Mount(engine)
	}

	api := engine.Group("/api")
	if cfg.Timeout > 0 {
		api.Use(middleware.Timeout(cfg.Timeout))
	}

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(api)
	}

	if cfg.StaticHandler != nil {
		cfg.StaticHandler.RegisterStaticRoutes(engine)
	}
}

// NewDefaultRouterConfig creates a RouterConfig with sensible defaults.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	healthHandler *handlers.HealthHandler,
	quoteHandler *handlers.QuoteHandler,
	staticHandler *handlers.StaticHandler,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		AppConfig:     appCfg,
		HealthHandler: healthHandler,
		QuoteHandler:  quoteHandler,
		StaticHandler: staticHandler,
		Timeout:       config.DefaultRequestTimeout,
	}
}
