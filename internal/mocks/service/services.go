// Package service contains testify mocks for the domain service interfaces.
package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"empdir/internal/domain/service"
)

// MockPasswordHasher is a testify mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenService is a testify mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(claims service.IdentityClaims) (string, error) {
	args := m.Called(claims)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(token string) (*service.IdentityClaims, error) {
	args := m.Called(token)
	if claims, ok := args.Get(0).(*service.IdentityClaims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockUploadService is a testify mock of service.UploadService.
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(ctx context.Context, dataURI, folder string) (*service.UploadResult, error) {
	args := m.Called(ctx, dataURI, folder)
	if result, ok := args.Get(0).(*service.UploadResult); ok {
		return result, args.Error(1)
	}

	return nil, args.Error(1)
}
