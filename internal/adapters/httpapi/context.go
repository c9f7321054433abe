package httpapi

import (
	"context"

	"github.com/roamly/roamly-api/internal/domain"
)

type identityKey struct{}

// WithIdentity stores the authenticated user in the request context.
func WithIdentity(ctx context.Context, u domain.User) context.Context {
	return context.WithValue(ctx, identityKey{}, u)
}

// IdentityFromContext returns the authenticated user, if any.
func IdentityFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(identityKey{}).(domain.User)
	return u, ok && u.ID != 0
}
