// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"empdir/internal/domain/service"
)

// bcryptHasher implements PasswordHasher with bcrypt. Salts are generated
// per hash by the algorithm itself, so equal passwords never share a digest.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
func NewBcryptHasher() service.PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash generates a salted digest from a plaintext password.
func (h *bcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}

	return string(digest), nil
}

// Check reports whether the plaintext password produced the stored digest.
// Malformed digests simply fail the comparison.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
