package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-service/internal/platform/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// TestContextLogger tests that the ID middleware enriches the injected logger.
func TestContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(ContextLogger(logger), RequestID(), CorrelationID())
	router.GET("/test", func(c *gin.Context) {
		logging.FromContext(c.Request.Context()).Info("inside handler")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderRequestID, "req-abc")
	req.Header.Set(HeaderCorrelationID, "corr-xyz")

	router.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, "inside handler")
	assert.Contains(t, out, `"request_id":"req-abc"`)
	assert.Contains(t, out, `"correlation_id":"corr-xyz"`)
}

// TestLogging tests the Logging middleware.
func TestLogging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		path      string
		status    int
		wantLevel string
		wantPath  string
	}{
		{name: "success at info", path: "/api/quotes/3", status: http.StatusOK, wantLevel: "INFO", wantPath: "/api/quotes/3"},
		{name: "query string kept", path: "/api/quotes/3?x=1", status: http.StatusOK, wantLevel: "INFO", wantPath: "/api/quotes/3?x=1"},
		{name: "client error at warn", path: "/api/quotes/3", status: http.StatusBadRequest, wantLevel: "WARN", wantPath: "/api/quotes/3"},
		{name: "server error at error", path: "/api/quotes/3", status: http.StatusInternalServerError, wantLevel: "ERROR", wantPath: "/api/quotes/3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			router := gin.New()
			router.Use(Logging(logger))
			router.GET("/api/quotes/:id", func(c *gin.Context) {
				c.Status(tt.status)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, tt.status, w.Code)

			records := decodeRecords(t, &buf)
			require.Len(t, records, 2)
			assert.Equal(t, "request started", records[0]["msg"])
			assert.Equal(t, "DEBUG", records[0]["level"])
			assert.Equal(t, "request completed", records[1]["msg"])
			assert.Equal(t, tt.wantLevel, records[1]["level"])
			assert.Equal(t, tt.wantPath, records[1]["path"])
			assert.Equal(t, "/api/quotes/:id", records[1]["route"])
			assert.Equal(t, http.MethodGet, records[1]["method"])
			assert.InDelta(t, float64(tt.status), records[1]["status"], 0)
		})
	}

	t.Run("start record hidden at info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		router := gin.New()
		router.Use(Logging(slog.New(slog.NewJSONHandler(&buf, nil))))
		router.GET("/api/quotes", func(c *gin.Context) { c.Status(http.StatusOK) })

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/quotes", nil))

		records := decodeRecords(t, &buf)
		require.Len(t, records, 1)
		assert.Equal(t, "request completed", records[0]["msg"])
	})

	t.Run("skips /-/ paths", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		router := gin.New()
		router.Use(Logging(slog.New(slog.NewJSONHandler(&buf, nil))))
		router.GET("/-/live", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/live", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, buf.String())
	})
}

func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any

	dec := json.NewDecoder(buf)
	for dec.More() {
		var rec map[string]any
		require.NoError(t, dec.Decode(&rec))
		records = append(records, rec)
	}

	return records
}

// TestRecovery tests the Recovery middleware.
func TestRecovery(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("normal request passes through", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Recovery(logger))
		router.GET("/test", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("panicking handler returns flat 500", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		router := gin.New()
		router.Use(Recovery(slog.New(slog.NewJSONHandler(&buf, nil))))
		router.GET("/test", func(c *gin.Context) {
			panic("something went wrong")
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Внутренняя ошибка"}`, w.Body.String())
		assert.Contains(t, buf.String(), "panic recovered")
		assert.Contains(t, buf.String(), "something went wrong")
	})

	t.Run("panic after write keeps the written status", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Recovery(logger))
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, "partial")
			panic("late")
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "partial", w.Body.String())
	})
}

// TestTimeout tests the Timeout middleware.
func TestTimeout(t *testing.T) {
	t.Parallel()

	t.Run("sets context deadline", func(t *testing.T) {
		t.Parallel()

		var hasDeadline bool

		router := gin.New()
		router.Use(Timeout(5 * time.Second))
		router.GET("/test", func(c *gin.Context) {
			_, hasDeadline = c.Request.Context().Deadline()
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, hasDeadline, "request context should have deadline")
	})

	t.Run("responds 503 when the handler gives up", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Timeout(10 * time.Millisecond))
		router.GET("/slow", func(c *gin.Context) {
			<-c.Request.Context().Done()
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrorCodeTimeout, resp.Error.Code)
	})

	t.Run("late response is left alone", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Timeout(10 * time.Millisecond))
		router.GET("/slow", func(c *gin.Context) {
			<-c.Request.Context().Done()
			c.Status(http.StatusAccepted)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("late body is left alone", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Timeout(10 * time.Millisecond))
		router.GET("/slow", func(c *gin.Context) {
			<-c.Request.Context().Done()
			c.String(http.StatusOK, "late")
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "late", w.Body.String())
	})
}
