// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
//
// Every operation returns a uniform envelope value. Expected business
// conditions (duplicates, not-found, invalid credentials, validation
// failures) come back as Success=false envelopes with a nil error; the
// error return is reserved for authorization failures and unexpected
// infrastructure faults.
package usecase

import (
	"context"

	"empdir/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new user.
type SignupInput struct {
	Username string `json:"username" validate:"min=3"`
	Email    string `json:"email" validate:"email"`
	Password string `json:"password" validate:"min=6"`
}

// LoginInput defines the data required for a user to log in. The identifier
// may be either the username or the email.
type LoginInput struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// --- Result envelopes ---

// AuthResult is the envelope returned by signup and login.
type AuthResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token,omitempty"`
	User    *entity.User `json:"user,omitempty"`
}

// UserUsecase defines the interface for identity-related business operations.
type UserUsecase interface {
	// Signup registers a new user and issues a token for them.
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)

	// Login verifies credentials and issues a token. The failure message
	// never distinguishes an unknown identifier from a wrong password.
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
}
