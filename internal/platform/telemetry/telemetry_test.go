package telemetry

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen/quote-service/internal/platform/logging"
)

type fixedCounter int

func (f *fixedCounter) Len() int { return int(*f) }

func TestNewRegistry_QuotesStored(t *testing.T) {
	n := fixedCounter(5)
	reg := NewRegistry(&n)

	expected := `
# HELP quotes_stored Number of quotes currently held in memory.
# TYPE quotes_stored gauge
quotes_stored 5
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "quotes_stored"))

	n = 7
	expected = strings.Replace(expected, "quotes_stored 5", "quotes_stored 7", 1)
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "quotes_stored"))
}

func TestNew_Disabled(t *testing.T) {
	p, err := New(context.Background(), &Config{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestProvider_ZeroValueIsNoop(t *testing.T) {
	var p Provider

	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestMiddleware_PassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(Middleware("quote-service")...)
	engine.GET("/api/quotes", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/quotes", http.NoBody)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestMiddleware_NoTraceHeaderWhenDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(Middleware("quote-service")...)
	engine.GET("/api/quotes", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quotes", http.NoBody))

	assert.Empty(t, w.Header().Get(TraceIDHeader))
}

func TestMiddleware_TraceIDHeaderAndLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tp := sdktrace.NewTracerProvider()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)

	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	var buf bytes.Buffer

	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		ctx := logging.WithContext(c.Request.Context(), slog.New(slog.NewJSONHandler(&buf, nil)))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})
	engine.Use(Middleware("quote-service")...)
	engine.GET("/api/quotes/:id", func(c *gin.Context) {
		logging.FromContext(c.Request.Context()).Info("handled")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quotes/1", http.NoBody))

	traceID := w.Header().Get(TraceIDHeader)
	require.Len(t, traceID, 32)
	assert.Contains(t, buf.String(), `"trace_id":"`+traceID+`"`)
}

func TestRouteOf(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var routes []string

	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Next()
		routes = append(routes, routeOf(c))
	})
	engine.GET("/api/quotes/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.NoRoute(func(c *gin.Context) { c.Status(http.StatusNotFound) })

	for _, target := range []string{"/api/quotes/3", "/index.html"} {
		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, http.NoBody))
	}

	assert.Equal(t, []string{"/api/quotes/:id", unmatchedRoute}, routes)
}
