package impl

import (
	"context"
	"log/slog"

	deliverycontext "empdir/internal/delivery/context"
	"empdir/internal/domain/entity"
	domainerrors "empdir/internal/domain/errors"
	"empdir/internal/domain/repository"
	"empdir/internal/usecase"
	"empdir/internal/validation"

	"github.com/pkg/errors"
)

const (
	employeeNotFoundMessage  = "Employee not found"
	duplicateEmployeeMessage = "Employee email already exists"
	salaryFloorMessage       = "salary must be >= 1000"
)

// employeeService implements the EmployeeUsecase interface. Every operation
// calls the authorization guard before anything else.
type employeeService struct {
	employeeRepo repository.EmployeeRepository
	validator    *validation.Validator
	logger       *slog.Logger
}

// NewEmployeeService is the constructor for employeeService.
func NewEmployeeService(
	employeeRepo repository.EmployeeRepository,
	validator *validation.Validator,
	logger *slog.Logger,
) usecase.EmployeeUsecase {
	return &employeeService{
		employeeRepo: employeeRepo,
		validator:    validator,
		logger:       logger,
	}
}

func (srv *employeeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetAll returns every employee, most recently created first.
func (srv *employeeService) GetAll(ctx context.Context) (*usecase.EmployeesResult, error) {
	if _, err := deliverycontext.RequireIdentity(ctx); err != nil {
		return nil, err
	}

	employees, err := srv.employeeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch employees")
	}

	return &usecase.EmployeesResult{
		Success:   true,
		Message:   "Employees fetched",
		Employees: employees,
	}, nil
}

// GetByID returns the employee or a not-found envelope. A malformed id is a
// hard error, not an envelope.
func (srv *employeeService) GetByID(ctx context.Context, id string) (*usecase.EmployeeResult, error) {
	if _, err := deliverycontext.RequireIdentity(ctx); err != nil {
		return nil, err
	}

	employee, err := srv.employeeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return &usecase.EmployeeResult{Success: false, Message: employeeNotFoundMessage}, nil
		}

		return nil, mapIDError(err)
	}

	return &usecase.EmployeeResult{
		Success:  true,
		Message:  "Employee found",
		Employee: employee,
	}, nil
}

// Search matches designation and/or department as case-insensitive
// substrings. No criteria at all is an expected condition: a failure
// envelope with an empty result set, never an error.
func (srv *employeeService) Search(ctx context.Context, input usecase.EmployeeSearchInput) (*usecase.EmployeesResult, error) {
	if _, err := deliverycontext.RequireIdentity(ctx); err != nil {
		return nil, err
	}

	if input.Designation == "" && input.Department == "" {
		return &usecase.EmployeesResult{
			Success:   false,
			Message:   "Provide designation or department",
			Employees: []*entity.Employee{},
		}, nil
	}

	employees, err := srv.employeeRepo.Search(ctx, repository.EmployeeSearch{
		Designation: input.Designation,
		Department:  input.Department,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search employees")
	}

	return &usecase.EmployeesResult{
		Success:   true,
		Message:   "Search complete",
		Employees: employees,
	}, nil
}

// Add validates the payload, re-checks the salary floor, rejects duplicate
// emails and creates the record.
func (srv *employeeService) Add(ctx context.Context, input usecase.EmployeeInput) (*usecase.EmployeeResult, error) {
	if _, err := deliverycontext.RequireIdentity(ctx); err != nil {
		return nil, err
	}

	// Schema-level constraints may enforce the floor too; this check is
	// the authoritative one and is never skipped.
	if input.Salary < entity.SalaryFloor {
		return &usecase.EmployeeResult{Success: false, Message: salaryFloorMessage}, nil
	}

	if violations := srv.validator.Struct(input); violations != nil {
		return &usecase.EmployeeResult{Success: false, Message: joinViolations(violations)}, nil
	}

	exists, err := srv.employeeRepo.ExistsByEmailExcluding(ctx, input.Email, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to check employee email uniqueness")
	}
	if exists {
		return &usecase.EmployeeResult{Success: false, Message: duplicateEmployeeMessage}, nil
	}

	employee := &entity.Employee{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		Gender:        entity.Gender(input.Gender),
		Designation:   input.Designation,
		Salary:        input.Salary,
		DateOfJoining: input.DateOfJoining,
		Department:    input.Department,
		EmployeePhoto: input.EmployeePhoto,
	}
	if err := srv.employeeRepo.Create(ctx, employee); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return &usecase.EmployeeResult{Success: false, Message: duplicateEmployeeMessage}, nil
		}

		return nil, errors.Wrap(err, "failed to create employee")
	}

	srv.log(ctx).Info("Employee created", slog.String("employeeID", employee.ID))

	return &usecase.EmployeeResult{
		Success:  true,
		Message:  "Employee created",
		Employee: employee,
	}, nil
}

// Update applies a partial update. A supplied salary must clear the floor;
// a supplied email must not collide with a different record.
func (srv *employeeService) Update(ctx context.Context, id string, input usecase.EmployeeUpdateInput) (*usecase.EmployeeResult, error) {
	if _, err := deliverycontext.RequireIdentity(ctx); err != nil {
		return nil, err
	}

	if input.Salary != nil && *input.Salary < entity.SalaryFloor {
		return &usecase.EmployeeResult{Success: false, Message: salaryFloorMessage}, nil
	}

	if violations := srv.validator.Struct(input); violations != nil {
		return &usecase.EmployeeResult{Success: false, Message: joinViolations(violations)}, nil
	}

	if input.Email != nil {
		// Self-collision is fine: only a different record blocks the update.
		exists, err := srv.employeeRepo.ExistsByEmailExcluding(ctx, *input.Email, id)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check employee email uniqueness")
		}
		if exists {
			return &usecase.EmployeeResult{Success: false, Message: duplicateEmployeeMessage}, nil
		}
	}

	employee, err := srv.employeeRepo.Update(ctx, id, toRepositoryUpdate(input))
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return &usecase.EmployeeResult{Success: false, Message: employeeNotFoundMessage}, nil
		}
		if errors.Is(err, repository.ErrDuplicateKey) {
			return &usecase.EmployeeResult{Success: false, Message: duplicateEmployeeMessage}, nil
		}

		return nil, mapIDError(err)
	}

	return &usecase.EmployeeResult{
		Success:  true,
		Message:  "Employee updated",
		Employee: employee,
	}, nil
}

// Delete removes the employee; a missing id is an expected condition.
func (srv *employeeService) Delete(ctx context.Context, id string) (*usecase.DeleteResult, error) {
	if _, err := deliverycontext.RequireIdentity(ctx); err != nil {
		return nil, err
	}

	if err := srv.employeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return &usecase.DeleteResult{Success: false, Message: employeeNotFoundMessage}, nil
		}

		return nil, mapIDError(err)
	}

	return &usecase.DeleteResult{Success: true, Message: "Employee deleted"}, nil
}

// mapIDError promotes a malformed identifier to its structured form; other
// faults pass through untouched.
func mapIDError(err error) error {
	if errors.Is(err, repository.ErrInvalidID) {
		return domainerrors.ErrInvalidID
	}

	return err
}

func toRepositoryUpdate(input usecase.EmployeeUpdateInput) repository.EmployeeUpdate {
	update := repository.EmployeeUpdate{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		Designation:   input.Designation,
		Salary:        input.Salary,
		DateOfJoining: input.DateOfJoining,
		Department:    input.Department,
		EmployeePhoto: input.EmployeePhoto,
	}
	if input.Gender != nil {
		gender := entity.Gender(*input.Gender)
		update.Gender = &gender
	}

	return update
}
