package usecase

import (
	"context"
	"time"

	"empdir/internal/domain/entity"
)

// --- Input DTOs ---

// EmployeeInput defines the full field set required to create an employee.
type EmployeeInput struct {
	FirstName     string    `json:"first_name" validate:"required"`
	LastName      string    `json:"last_name" validate:"required"`
	Email         string    `json:"email" validate:"employee_email"`
	Gender        string    `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Designation   string    `json:"designation" validate:"required"`
	Salary        float64   `json:"salary" validate:"gte=1000"`
	DateOfJoining time.Time `json:"date_of_joining" validate:"required"`
	Department    string    `json:"department" validate:"required"`
	EmployeePhoto string    `json:"employee_photo"`
}

// EmployeeUpdateInput is a partial update: nil fields are left unchanged.
type EmployeeUpdateInput struct {
	FirstName     *string    `json:"first_name" validate:"omitempty,min=1"`
	LastName      *string    `json:"last_name" validate:"omitempty,min=1"`
	Email         *string    `json:"email" validate:"omitempty,employee_email"`
	Gender        *string    `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Designation   *string    `json:"designation" validate:"omitempty,min=1"`
	Salary        *float64   `json:"salary" validate:"omitempty,gte=1000"`
	DateOfJoining *time.Time `json:"date_of_joining"`
	Department    *string    `json:"department" validate:"omitempty,min=1"`
	EmployeePhoto *string    `json:"employee_photo"`
}

// EmployeeSearchInput holds the optional search criteria.
type EmployeeSearchInput struct {
	Designation string `json:"designation"`
	Department  string `json:"department"`
}

// --- Result envelopes ---

// EmployeeResult is the envelope carrying a single employee.
type EmployeeResult struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Employee *entity.Employee `json:"employee,omitempty"`
}

// EmployeesResult is the envelope carrying a list of employees. Employees is
// always non-nil so failure envelopes serialize with an empty list.
type EmployeesResult struct {
	Success   bool               `json:"success"`
	Message   string             `json:"message"`
	Employees []*entity.Employee `json:"employees"`
}

// DeleteResult is the envelope for deletions; it carries no payload.
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// EmployeeUsecase defines the employee CRUD and search operations. Every
// method requires an identity on the context and fails with an unauthorized
// error when none is attached.
type EmployeeUsecase interface {
	GetAll(ctx context.Context) (*EmployeesResult, error)
	GetByID(ctx context.Context, id string) (*EmployeeResult, error)
	Search(ctx context.Context, input EmployeeSearchInput) (*EmployeesResult, error)
	Add(ctx context.Context, input EmployeeInput) (*EmployeeResult, error)
	Update(ctx context.Context, id string, input EmployeeUpdateInput) (*EmployeeResult, error)
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}
