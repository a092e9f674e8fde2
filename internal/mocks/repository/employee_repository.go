package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"empdir/internal/domain/entity"
	"empdir/internal/domain/repository"
)

// MockEmployeeRepository is a testify mock of repository.EmployeeRepository.
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindAll(ctx context.Context) ([]*entity.Employee, error) {
	args := m.Called(ctx)
	if employees, ok := args.Get(0).([]*entity.Employee); ok {
		return employees, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, id string) (*entity.Employee, error) {
	args := m.Called(ctx, id)
	if employee, ok := args.Get(0).(*entity.Employee); ok {
		return employee, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockEmployeeRepository) FindByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	args := m.Called(ctx, email)
	if employee, ok := args.Get(0).(*entity.Employee); ok {
		return employee, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockEmployeeRepository) ExistsByEmailExcluding(ctx context.Context, email, excludeID string) (bool, error) {
	args := m.Called(ctx, email, excludeID)

	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeeRepository) Search(ctx context.Context, criteria repository.EmployeeSearch) ([]*entity.Employee, error) {
	args := m.Called(ctx, criteria)
	if employees, ok := args.Get(0).([]*entity.Employee); ok {
		return employees, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockEmployeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	args := m.Called(ctx, employee)

	return args.Error(0)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, id string, update repository.EmployeeUpdate) (*entity.Employee, error) {
	args := m.Called(ctx, id, update)
	if employee, ok := args.Get(0).(*entity.Employee); ok {
		return employee, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
