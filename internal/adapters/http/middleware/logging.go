package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/platform/logging"
)

// ContextLogger stores logger in the request context so that the ID
// middleware and handlers enrich it rather than the process default.
// Apply it before RequestID and CorrelationID.
func ContextLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if logger != nil {
			c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), logger))
		}

		c.Next()
	}
}

// probePrefix marks operational endpoints that are polled too often to log.
const probePrefix = "/-/"

// Logging writes one debug record when a request arrives and one record when
// it completes, at a level that follows the status class. Probes under /-/
// are not logged. logger is used when no earlier middleware put one in the
// request context.
func Logging(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, probePrefix) {
			c.Next()
			return
		}

		start := time.Now()
		ctx := c.Request.Context()
		reqLogger := requestLogger(c, logger).With(
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.RequestURI()),
		)

		reqLogger.DebugContext(ctx, "request started",
			slog.String("client_ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
		)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		reqLogger.Log(ctx, statusLevel(status), "request completed",
			slog.String("route", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.Int64("latency_ms", latency.Milliseconds()),
			slog.Int("bytes", c.Writer.Size()),
		)
	}
}

func statusLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// requestLogger returns the request-scoped logger, then fallback, then the
// process default.
func requestLogger(c *gin.Context, fallback *slog.Logger) *slog.Logger {
	if l, ok := logging.LoggerFromContext(c.Request.Context()); ok {
		return l
	}

	if fallback != nil {
		return fallback
	}

	return slog.Default()
}
