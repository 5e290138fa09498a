package ports

import (
	"context"

	"github.com/google/uuid"
)

// Logger defines swatchbook's structured logging contract. All log calls
// take key/value pairs, must be safe for concurrent use, and should enrich
// entries with a correlation ID when one is present in context. Common
// fields:
//   - correlation_id (UUIDv4, generated once per command)
//   - layer (domain|application|infrastructure|presentation)
//   - component (fetcher, materializer, orchestrator, document, ...)
//   - slug / palette / style for import work
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

type correlationIDKey struct{}

// WithCorrelationID attaches the provided correlation ID to the context so
// downstream layers can emit correlated logs and events.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// GetCorrelationID extracts a correlation ID from context. It returns an
// empty string when none has been set.
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GenerateCorrelationID produces a new UUIDv4 string.
func GenerateCorrelationID() string {
	return uuid.NewString()
}
