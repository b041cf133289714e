package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/adapters/http/dto"
)

// Recovery returns middleware that recovers from panics.
// The panic and its stack are logged at ERROR and the client gets the same
// flat 500 body as any other internal failure.
//
// Apply it first so it wraps every other middleware.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			ctxLogger := requestLogger(c, logger)

			ctxLogger.Error("panic recovered",
				slog.Any("error", r),
				slog.String("stack", string(debug.Stack())),
				slog.String("path", c.Request.URL.Path),
				slog.String("method", c.Request.Method),
				slog.String("trace_id", dto.GetTraceID(c)),
			)

			// Headers may already be on the wire.
			if c.Writer.Written() {
				c.Abort()
				return
			}

			dto.AbortWithFlatError(c, http.StatusInternalServerError, dto.MessageInternalFailure)
		}()

		c.Next()
	}
}
