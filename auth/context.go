package auth

import (
	"context"

	"github.com/user/changelog-api/apperror"
)

// `contextKey` is a custom type for context keys. Using a private type prevents
// collisions with context keys defined in other packages.
type contextKey string

const claimsContextKey contextKey = "auth_claims"

// NewContextWithClaims returns a child context carrying a copy of claims.
// Storing a value rather than a pointer keeps the identity immutable for the
// rest of the request.
func NewContextWithClaims(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext extracts the verified identity stored by the Auth Gate.
// The bool is false when the request did not pass through the gate.
func ClaimsFromContext(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(Claims)
	return claims, ok
}

// CallerID returns the id of the verified caller, or an AuthError when the
// request carries no identity.
func CallerID(ctx context.Context) (string, error) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok || claims.ID == "" {
		return "", apperror.NewAuthError("not authorized", nil)
	}
	return claims.ID, nil
}
