package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "empdir/internal/delivery/context"
	"empdir/internal/domain/service"
)

// AuthMiddleware authenticates requests by verifying the bearer token and
// attaching the decoded identity to the request context.
//
// It never rejects a request: a missing, malformed or invalid token simply
// leaves the context without an identity. Authorization is decided per
// operation by the guard, which keeps public operations (signup, login)
// reachable whatever credentials the client sends.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate inspects the Authorization header and, when the bearer token
// verifies, stores the identity claims on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return next(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			// Not a bearer token; pass through without an identity.
			return next(c)
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			// Invalid or expired token; the guard downstream decides
			// whether that matters for this operation.
			return next(c)
		}

		ctx := deliverycontext.WithIdentity(c.Request().Context(), claims)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
