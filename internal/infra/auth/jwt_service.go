// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"empdir/config"
	"empdir/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Process-wide signing secret. Rotating it invalidates all outstanding tokens.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.JWT == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.SecretKey.TokenTTL
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}

	return &jwtService{
		secret: cfg.SecretKey.JWT,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed token embedding the identity claims with the
// configured expiry.
func (s *jwtService) Issue(claims service.IdentityClaims) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":   claims.UserID,
		"username": claims.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	})

	return token.SignedString([]byte(s.secret))
}

// Verify checks the signature and expiry of a token string and decodes the
// embedded identity claims.
func (s *jwtService) Verify(tokenString string) (*service.IdentityClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected token claims type")
	}

	userID, _ := mapClaims["userId"].(string)
	username, _ := mapClaims["username"].(string)
	if userID == "" {
		return nil, errors.New("user id missing from token")
	}

	return &service.IdentityClaims{
		UserID:   userID,
		Username: username,
	}, nil
}
