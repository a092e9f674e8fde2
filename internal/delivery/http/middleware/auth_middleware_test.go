package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "empdir/internal/delivery/context"
	"empdir/internal/domain/service"
	mockSvc "empdir/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invokeAuthenticate(t *testing.T, tokenSvc service.TokenService, authHeader string) *service.IdentityClaims {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *service.IdentityClaims
	next := func(c echo.Context) error {
		seen = deliverycontext.GetIdentity(c.Request().Context())
		return c.NoContent(http.StatusOK)
	}

	handler := NewAuthMiddleware(tokenSvc).Authenticate(next)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	return seen
}

func TestAuthMiddleware_AttachesIdentityForValidToken(t *testing.T) {
	tokenSvc := new(mockSvc.MockTokenService)
	claims := &service.IdentityClaims{UserID: "64f000000000000000000001", Username: "johndoe"}
	tokenSvc.On("Verify", "good-token").Return(claims, nil)

	seen := invokeAuthenticate(t, tokenSvc, "Bearer good-token")

	require.NotNil(t, seen)
	assert.Equal(t, claims, seen)
}

// The authenticator must let every request through no matter what the
// Authorization header looks like; only the context annotation varies.
func TestAuthMiddleware_NeverRejects(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
	}{
		{name: "no header", authHeader: ""},
		{name: "not a bearer scheme", authHeader: "Basic dXNlcjpwYXNz"},
		{name: "bearer with empty token", authHeader: "Bearer "},
		{name: "invalid token", authHeader: "Bearer bad-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := new(mockSvc.MockTokenService)
			tokenSvc.On("Verify", "bad-token").Return(nil, errors.New("signature invalid"))

			seen := invokeAuthenticate(t, tokenSvc, tt.authHeader)

			assert.Nil(t, seen)
		})
	}
}
