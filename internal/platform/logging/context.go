package logging

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Attribute keys for the ids the HTTP layer attaches to request loggers.
const (
	RequestIDKey     = "request_id"
	CorrelationIDKey = "correlation_id"
	TraceIDKey       = "trace_id"
)

var defaultLogger = slog.Default()

// SetDefault replaces the fallback logger and the slog package default.
func SetDefault(logger *slog.Logger) {
	defaultLogger = logger
	slog.SetDefault(logger)
}

// WithContext returns a copy of ctx carrying logger.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// LoggerFromContext returns the logger stored in ctx without falling back.
func LoggerFromContext(ctx context.Context) (*slog.Logger, bool) {
	if ctx == nil {
		return nil, false
	}

	logger, ok := ctx.Value(ctxKey{}).(*slog.Logger)

	return logger, ok
}

// FromContext returns the logger stored in ctx, or the default logger.
// A nil ctx is allowed.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := LoggerFromContext(ctx); ok {
		return logger
	}

	return defaultLogger
}

// With stores a logger enriched with attrs.
func With(ctx context.Context, attrs ...slog.Attr) context.Context {
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}

	return WithContext(ctx, FromContext(ctx).With(args...))
}

// WithRequestID tags the context logger with the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return With(ctx, slog.String(RequestIDKey, id))
}

// WithCorrelationID tags the context logger with the correlation id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return With(ctx, slog.String(CorrelationIDKey, id))
}

// WithTraceID tags the context logger with the OpenTelemetry trace id.
func WithTraceID(ctx context.Context, id string) context.Context {
	return With(ctx, slog.String(TraceIDKey, id))
}
