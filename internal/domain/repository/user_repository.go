// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"empdir/internal/domain/entity"
)

// ErrUserNotFound is returned when no user matches the given filter.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateKey is returned when a write violates a unique index.
// It is the authoritative duplicate guard; application-level pre-checks
// exist only to produce friendlier messages.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrInvalidID is returned when an identifier is not a well-formed object id.
var ErrInvalidID = errors.New("invalid object id")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByUsernameOrEmail retrieves the user whose username or email
	// exactly matches the given identifier.
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*entity.User, error)

	// ExistsByUsernameOrEmail reports whether a user already holds the
	// given username or the given email (case-sensitive exact match).
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// Create persists a new user entity and fills in its generated ID
	// and timestamps.
	Create(ctx context.Context, user *entity.User) error
}
