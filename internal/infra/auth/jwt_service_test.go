package auth

import (
	"testing"
	"time"

	"empdir/config"
	"empdir/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.JWT = secret
	cfg.SecretKey.TokenTTL = ttl

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", 2*time.Hour))
	require.NoError(t, err)

	claims := service.IdentityClaims{UserID: "64a1f0c2e1b2c3d4e5f60718", Username: "alice"}

	token, err := svc.Issue(claims)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	decoded, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, decoded.UserID)
	assert.Equal(t, claims.Username, decoded.Username)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig("", 0))
	assert.Error(t, err)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", 2*time.Hour))
	require.NoError(t, err)

	decoded, err := svc.Verify("clearly-not-a-jwt-token")
	assert.Error(t, err)
	assert.Nil(t, decoded)
}

func TestJWTService_SignatureMismatch(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("secret_one_very_long_for_testing", 2*time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret_two_very_long_for_testing", 2*time.Hour))
	require.NoError(t, err)

	token, err := issuer.Issue(service.IdentityClaims{UserID: "64a1f0c2e1b2c3d4e5f60718", Username: "alice"})
	require.NoError(t, err)

	decoded, err := verifier.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, decoded)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := &jwtService{secret: "test_secret_key_very_long_for_testing", ttl: -time.Minute}

	token, err := svc.Issue(service.IdentityClaims{UserID: "64a1f0c2e1b2c3d4e5f60718", Username: "alice"})
	require.NoError(t, err)

	decoded, err := svc.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, decoded)
}
