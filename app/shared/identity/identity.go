package identity

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the authenticated caller of a request.
type Identity struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type contextKey struct{}

// WithIdentity stores id in ctx.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the identity stored by WithIdentity.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}
