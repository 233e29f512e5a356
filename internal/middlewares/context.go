package middlewares

import (
	"context"

	"github.com/sbilibin2017/passvault/internal/models"
)

// contextKey is an unexported type for keys in context
type contextKey struct{ name string }

var (
	identityKey  = contextKey{"identity"}
	requestIDKey = contextKey{"request_id"}
)

// WithIdentity stores the authenticated caller in the context.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the caller attached by AuthMiddleware.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(models.Identity)
	return identity, ok
}

// RequestIDFromContext returns the id assigned by LoggingMiddleware, or "".
func RequestIDFromContext(ctx context.Context) string {
	reqID, _ := ctx.Value(requestIDKey).(string)
	return reqID
}
