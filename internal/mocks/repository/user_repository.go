// Package repository contains testify mocks for the persistence interfaces.
package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"empdir/internal/domain/entity"
)

// MockUserRepository is a testify mock of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (*entity.User, error) {
	args := m.Called(ctx, identifier)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)

	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}
