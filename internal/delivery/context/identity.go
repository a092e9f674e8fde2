package context

import (
	"context"

	domainerrors "empdir/internal/domain/errors"
	"empdir/internal/domain/service"
)

const (
	// KeyIdentity is the key for storing the verified caller identity in context.
	KeyIdentity ContextKey = "identity"
)

// WithIdentity returns a new context carrying the verified caller identity.
func WithIdentity(ctx context.Context, claims *service.IdentityClaims) context.Context {
	return context.WithValue(ctx, KeyIdentity, claims)
}

// GetIdentity extracts the caller identity from the context.
// It returns nil when the request carried no valid token.
func GetIdentity(ctx context.Context) *service.IdentityClaims {
	if claims, ok := ctx.Value(KeyIdentity).(*service.IdentityClaims); ok {
		return claims
	}

	return nil
}

// RequireIdentity is the authorization guard. It returns the attached
// identity, or ErrUnauthorized when the request context has none. It is the
// only gate: the authentication middleware never rejects a request itself.
func RequireIdentity(ctx context.Context) (*service.IdentityClaims, error) {
	claims := GetIdentity(ctx)
	if claims == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	return claims, nil
}
