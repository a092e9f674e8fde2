package repository

import (
	"context"
	"errors"
	"time"

	"empdir/internal/domain/entity"
)

// ErrEmployeeNotFound is returned when no employee matches the given id.
var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeSearch holds the optional criteria for a search. Empty fields are
// ignored; when both are set the match is a logical AND. Values are matched
// as case-insensitive substrings.
type EmployeeSearch struct {
	Designation string
	Department  string
}

// EmployeeUpdate is a partial update. Nil fields are left untouched.
type EmployeeUpdate struct {
	FirstName     *string
	LastName      *string
	Email         *string
	Gender        *entity.Gender
	Designation   *string
	Salary        *float64
	DateOfJoining *time.Time
	Department    *string
	EmployeePhoto *string
}

// EmployeeRepository defines the standard operations for employee persistence.
type EmployeeRepository interface {
	// FindAll returns every employee ordered by creation time, most
	// recent first.
	FindAll(ctx context.Context) ([]*entity.Employee, error)

	// FindByID retrieves a single employee. Returns ErrInvalidID for a
	// malformed id and ErrEmployeeNotFound when the id matches nothing.
	FindByID(ctx context.Context, id string) (*entity.Employee, error)

	// FindByEmail retrieves a single employee by exact email match.
	FindByEmail(ctx context.Context, email string) (*entity.Employee, error)

	// ExistsByEmailExcluding reports whether an employee other than the
	// one with excludeID holds the given email. An empty excludeID
	// matches against all employees.
	ExistsByEmailExcluding(ctx context.Context, email, excludeID string) (bool, error)

	// Search returns the employees matching the given criteria.
	Search(ctx context.Context, criteria EmployeeSearch) ([]*entity.Employee, error)

	// Create persists a new employee and fills in its generated ID and
	// timestamps.
	Create(ctx context.Context, employee *entity.Employee) error

	// Update applies a partial update and returns the updated record.
	Update(ctx context.Context, id string, update EmployeeUpdate) (*entity.Employee, error)

	// Delete removes the employee with the given id.
	Delete(ctx context.Context, id string) error
}
