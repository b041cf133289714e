//go:build integration

package integration

import (
	"io"
	"log/slog"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	httpadapter "github.com/jsamuelsen/quote-service/internal/adapters/http"
	"github.com/jsamuelsen/quote-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-service/internal/adapters/memory"
	"github.com/jsamuelsen/quote-service/internal/app"
	"github.com/jsamuelsen/quote-service/internal/platform/config"
	"github.com/jsamuelsen/quote-service/internal/platform/telemetry"
	"github.com/jsamuelsen/quote-service/internal/ports"
	"github.com/jsamuelsen/quote-service/web"
)

// newQuoteServer starts the full service in-process over a freshly seeded
// store. The caller closes it.
func newQuoteServer(notFoundStatus int) *httptest.Server {
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewQuoteStore()

	registry := ports.NewHealthRegistry()
	_ = registry.Register(store)

	service := app.NewQuoteService(app.QuoteServiceConfig{
		Repository: store,
		Logger:     logger,
	})

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.NewDefaultRouterConfig(
		logger,
		&config.AppConfig{Name: "quote-service", Environment: "test", Version: "test"},
		handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "none", "now"), telemetry.NewRegistry(store)),
		handlers.NewQuoteHandler(service, handlers.WithNotFoundStatus(notFoundStatus)),
		handlers.NewStaticHandler(web.Static()),
	))

	return httptest.NewServer(engine)
}
