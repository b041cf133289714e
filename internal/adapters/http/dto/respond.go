package dto

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quote-service/internal/domain"
	"github.com/jsamuelsen/quote-service/internal/platform/logging"
)

// contextKeyTraceID is the gin context key some callers use to pin a trace ID.
const contextKeyTraceID = "trace_id"

// headerRequestID is the fallback trace source when no span is active.
const headerRequestID = "X-Request-ID"

// ErrorPolicy maps domain errors to flat error responses.
type ErrorPolicy struct {
	// NotFoundStatus is sent with MessageNotFound. 200 and 404 are the only
	// values config accepts; zero means 200.
	NotFoundStatus int
}

// MapDomainError maps a domain error to an HTTP status and flat error body.
// Unknown errors become 500 with a generic message.
func (p ErrorPolicy) MapDomainError(err error) (int, *FlatError) {
	switch {
	case err == nil:
		return http.StatusOK, nil

	case domain.IsNotFound(err):
		status := p.NotFoundStatus
		if status == 0 {
			status = http.StatusOK
		}

		return status, NewFlatError(MessageNotFound)

	case domain.IsValidation(err):
		return http.StatusBadRequest, NewFlatError(MessageTextAndAuthor)

	default:
		return http.StatusInternalServerError, NewFlatError(MessageInternalFailure)
	}
}

// HandleError writes the response for err. Internal errors are logged with
// their full detail since the client only sees a generic message.
func (p ErrorPolicy) HandleError(c *gin.Context, err error) {
	status, body := p.MapDomainError(err)

	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).Error("internal error",
			slog.Any("error", err),
			slog.String("trace_id", GetTraceID(c)),
		)
	}

	c.JSON(status, body)
}

// RespondWithErrorCode writes a structured error envelope with a specific code.
// Use this for adapter-level failures, such as a body that is not JSON.
func RespondWithErrorCode(c *gin.Context, code, message string) {
	errResp := NewErrorResponse(code, message).WithTraceID(GetTraceID(c))
	c.JSON(HTTPStatusFromCode(code), errResp)
}

// AbortWithFlatError aborts the chain with a flat error body.
func AbortWithFlatError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, NewFlatError(message))
}

// GetTraceID returns the active OpenTelemetry trace ID, falling back to a
// trace ID pinned on the context and then the request ID header.
func GetTraceID(c *gin.Context) string {
	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	if v, ok := c.Get(contextKeyTraceID); ok {
		if id, ok := v.(string); ok {
			return id
		}

		return ""
	}

	return c.GetHeader(headerRequestID)
}

// IsBindingError reports whether err came from decoding the request body.
func IsBindingError(err error) bool {
	return errors.Is(err, ErrBinding)
}
