// Package identity carries the signed-in user through a request context.
package identity

import (
	"context"

	"staydrive/internal/domain"
)

type ctxKey struct{}

func WithIdentity(ctx context.Context, id *domain.Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the identity stored by the auth middleware, or nil.
func FromContext(ctx context.Context) *domain.Identity {
	id, _ := ctx.Value(ctxKey{}).(*domain.Identity)
	return id
}

// ContextResolver answers "who is signed in" from the request context.
type ContextResolver struct{}

func (ContextResolver) CurrentUser(ctx context.Context) (*domain.Identity, error) {
	return FromContext(ctx), nil
}
