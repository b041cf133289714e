// Package middleware provides HTTP middleware components for the Gin server.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/quote-service/internal/platform/logging"
)

const (
	// HeaderRequestID is the header name for request ID.
	HeaderRequestID = "X-Request-ID"

	// ContextKeyRequestID is the gin.Context key for the request ID.
	ContextKeyRequestID = "request_id"

	// HeaderCorrelationID is the header name for correlation ID.
	// It follows one client transaction across every request it makes,
	// where the request ID names a single request.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyCorrelationID is the gin.Context key for the correlation ID.
	ContextKeyCorrelationID = "correlation_id"

	// maxIDLength caps inbound IDs; longer values are replaced.
	maxIDLength = 128
)

// idMiddlewareConfig configures the ID middleware behavior.
type idMiddlewareConfig struct {
	headerName      string
	contextKey      string
	contextEnricher func(ctx context.Context, id string) context.Context
}

// RequestID returns middleware that takes the X-Request-ID header, or a
// fresh UUID v4 when it is absent or unusable. The ID is echoed in the
// response, stored on the gin.Context and added to the request logger.
func RequestID() gin.HandlerFunc {
	return createIDMiddleware(idMiddlewareConfig{
		headerName:      HeaderRequestID,
		contextKey:      ContextKeyRequestID,
		contextEnricher: logging.WithRequestID,
	})
}

// CorrelationID is RequestID for X-Correlation-ID.
func CorrelationID() gin.HandlerFunc {
	return createIDMiddleware(idMiddlewareConfig{
		headerName:      HeaderCorrelationID,
		contextKey:      ContextKeyCorrelationID,
		contextEnricher: logging.WithCorrelationID,
	})
}

// GetRequestID returns the request ID, or "" outside the middleware.
func GetRequestID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyRequestID)
}

// MustGetRequestID returns the request ID, or "unknown" outside the middleware.
func MustGetRequestID(c *gin.Context) string {
	return orUnknown(GetRequestID(c))
}

// GetCorrelationID returns the correlation ID, or "" outside the middleware.
func GetCorrelationID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyCorrelationID)
}

// MustGetCorrelationID returns the correlation ID, or "unknown" outside the middleware.
func MustGetCorrelationID(c *gin.Context) string {
	return orUnknown(GetCorrelationID(c))
}

func createIDMiddleware(cfg idMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(cfg.headerName)
		if !validID(id) {
			id = uuid.New().String()
		}

		c.Set(cfg.contextKey, id)
		c.Header(cfg.headerName, id)

		if cfg.contextEnricher != nil {
			c.Request = c.Request.WithContext(cfg.contextEnricher(c.Request.Context(), id))
		}

		c.Next()
	}
}

// validID accepts short, printable ASCII IDs. Anything else would end up
// verbatim in logs and response headers.
func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}

	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}

	return true
}

func getIDFromContext(c *gin.Context, key string) string {
	if id, exists := c.Get(key); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}

	return ""
}

func orUnknown(id string) string {
	if id == "" {
		return "unknown"
	}

	return id
}
