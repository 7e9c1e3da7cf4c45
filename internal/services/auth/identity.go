// filepath: internal/services/auth/identity.go
package auth

import (
	"context"

	"daylog/internal/models"
)

// Identity is the resolved caller at the authorization boundary. Role is the
// claim embedded at token-issue time, not a live read from the store.
type Identity struct {
	ID       int64
	Username string
	Role     string
}

// IsAdmin reports whether the identity's role claim grants admin access.
func (i *Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

type contextKey string

const identityKey contextKey = "identity"

// NewContext returns a context carrying the resolved identity.
func NewContext(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext extracts the resolved identity set by the middleware.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*Identity)
	return identity, ok
}
