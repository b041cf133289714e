package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-service/internal/platform/logging"
)

// Timeout returns middleware that puts a deadline on the request context.
// Handlers run on the request goroutine; if the deadline passed and the
// handler neither wrote nor chose a status, the client gets 503 with the
// TIMEOUT envelope.
//
// Handlers that ignore ctx.Done() still run to completion.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) || responded(c) {
			return
		}

		logging.FromContext(ctx).Warn("request timeout",
			slog.String("path", c.Request.URL.Path),
			slog.String("method", c.Request.Method),
			slog.Duration("timeout", timeout),
		)

		c.AbortWithStatusJSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.ErrorCodeTimeout,
			"request timeout exceeded",
		).WithTraceID(dto.GetTraceID(c)))
	}
}

// responded reports whether the handler committed to an answer. gin only
// marks a response written on the first body write or header flush, so a
// bare c.Status call shows up as a non-default status instead.
func responded(c *gin.Context) bool {
	return c.Writer.Written() || c.Writer.Status() != http.StatusOK
}
