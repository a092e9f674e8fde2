package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	deliverycontext "empdir/internal/delivery/context"
	"empdir/internal/domain/entity"
	domainerrors "empdir/internal/domain/errors"
	"empdir/internal/domain/repository"
	"empdir/internal/domain/service"
	mockRepo "empdir/internal/mocks/repository"
	"empdir/internal/usecase"
	"empdir/internal/validation"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// employeeServiceFixtures holds all test dependencies for employee service tests.
type employeeServiceFixtures struct {
	service      usecase.EmployeeUsecase
	employeeRepo *mockRepo.MockEmployeeRepository
}

func createTestEmployeeService(t *testing.T) employeeServiceFixtures {
	t.Helper()

	employeeRepo := new(mockRepo.MockEmployeeRepository)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewEmployeeService(employeeRepo, validation.New(), logger)

	return employeeServiceFixtures{
		service:      svc,
		employeeRepo: employeeRepo,
	}
}

// authedContext returns a context carrying a verified caller identity, the
// way the authentication middleware attaches one.
func authedContext() context.Context {
	return deliverycontext.WithIdentity(context.Background(), &service.IdentityClaims{
		UserID:   "64f000000000000000000001",
		Username: "johndoe",
	})
}

func validEmployeeInput() usecase.EmployeeInput {
	return usecase.EmployeeInput{
		FirstName:     "Jane",
		LastName:      "Doe",
		Email:         "jane@example.com",
		Gender:        "Female",
		Designation:   "Engineer",
		Salary:        5000,
		DateOfJoining: time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		Department:    "Engineering",
	}
}

func TestEmployeeService_EveryOperationRequiresIdentity(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := context.Background() // no identity attached

	calls := map[string]func() error{
		"GetAll": func() error {
			_, err := fx.service.GetAll(ctx)
			return err
		},
		"GetByID": func() error {
			_, err := fx.service.GetByID(ctx, "64f000000000000000000009")
			return err
		},
		"Search": func() error {
			_, err := fx.service.Search(ctx, usecase.EmployeeSearchInput{Department: "Engineering"})
			return err
		},
		"Add": func() error {
			_, err := fx.service.Add(ctx, validEmployeeInput())
			return err
		},
		"Update": func() error {
			_, err := fx.service.Update(ctx, "64f000000000000000000009", usecase.EmployeeUpdateInput{})
			return err
		},
		"Delete": func() error {
			_, err := fx.service.Delete(ctx, "64f000000000000000000009")
			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "UNAUTHORIZED", appErr.ErrorCode())
			assert.Equal(t, "Unauthorized. Please login first.", appErr.Message())
		})
	}

	// The repository must never have been touched without an identity.
	fx.employeeRepo.AssertNotCalled(t, "FindAll", mock.Anything)
	fx.employeeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.employeeRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestEmployeeService_GetAll_Success(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := authedContext()

	stored := []*entity.Employee{
		{ID: "64f000000000000000000011", FirstName: "Jane"},
		{ID: "64f000000000000000000012", FirstName: "John"},
	}
	fx.employeeRepo.On("FindAll", ctx).Return(stored, nil)

	result, err := fx.service.GetAll(ctx)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Employees fetched", result.Message)
	assert.Equal(t, stored, result.Employees)
}

func TestEmployeeService_GetByID_NotFound(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := authedContext()

	fx.employeeRepo.On("FindByID", ctx, "64f000000000000000000099").
		Return(nil, repository.ErrEmployeeNotFound)

	result, err := fx.service.GetByID(ctx, "64f000000000000000000099")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Employee not found", result.Message)
	assert.Nil(t, result.Employee)
}

func TestEmployeeService_GetByID_MalformedID(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := authedContext()

	fx.employeeRepo.On("FindByID", ctx, "not-a-hex-id").
		Return(nil, repository.ErrInvalidID)

	result, err := fx.service.GetByID(ctx, "not-a-hex-id")

	require.Error(t, err)
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_ID", appErr.ErrorCode())
}

func TestEmployeeService_Search_NoCriteria(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := authedContext()

	result, err := fx.service.Search(ctx, usecase.EmployeeSearchInput{})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Provide designation or department", result.Message)
	require.NotNil(t, result.Employees)
	assert.Empty(t, result.Employees)
	fx.employeeRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestEmployeeService_Search_ByCriteria(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := authedContext()

	stored := []*entity.Employee{{ID: "64f000000000000000000011", Designation: "Senior Engineer"}}
	fx.employeeRepo.On("Search", ctx, repository.EmployeeSearch{Designation: "engineer"}).
		Return(stored, nil)

	result, err := fx.service.Search(ctx, usecase.EmployeeSearchInput{Designation: "engineer"})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Search complete", result.Message)
	assert.Equal(t, stored, result.Employees)
}

func TestEmployeeService_Add_Success(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := authedContext()
	input := validEmployeeInput()

	fx.employeeRepo.On("ExistsByEmailExcluding", ctx, input.Email, "").Return(false, nil)
	fx.employeeRepo.On("Create", ctx, mock.AnythingOfType("*entity.Employee")).
		Run(func(args mock.Arguments) {
			employee := args.Get(1).(*entity.Employee)
			employee.ID = "64f000000000000000000021"
		}).
		Return(nil)

	result, err := fx.service.Add(ctx, input)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Employee created", result.Message)
	require.NotNil(t, result.Employee)
	assert.Equal(t, "64f000000000000000000021", result.Employee.ID)
	assert.Equal(t, entity.GenderFemale, result.Employee.Gender)
}

func TestEmployeeService_Add_SalaryFloor(t *testing.T) {
	t.Run("just below the floor", func(t *testing.T) {
		fx := createTestEmployeeService(t)
		ctx := authedContext()

		input := validEmployeeInput()
		input.Salary = 999

		result, err := fx.service.Add(ctx, input)

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "salary must be >= 1000", result.Message)
		fx.employeeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("exactly the floor", func(t *testing.T) {
		fx := createTestEmployeeService(t)
		ctx := authedContext()

		input := validEmployeeInput()
		input.Salary = 1000

		fx.employeeRepo.On("ExistsByEmailExcluding", ctx, input.Email, "").Return(false, nil)
		fx.employeeRepo.On("Create", ctx, mock.AnythingOfType("*entity.Employee")).Return(nil)

		result, err := fx.service.Add(ctx, input)

		require.NoError(t, err)
		assert.True(t, result.Success)
	})
}

func TestEmployeeService_Add_ValidationFailure(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := authedContext()

	input := validEmployeeInput()
	input.FirstName = ""
	input.Email = "nope"
	input.Gender = "Unknown"

	result, err := fx.service.Add(ctx, input)

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "first_name is required")
	assert.Contains(t, result.Message, "employee email must be valid")
	assert.Contains(t, result.Message, "gender must be Male/Female/Other")
	fx.employeeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEmployeeService_Add_DuplicateEmail(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := authedContext()
	input := validEmployeeInput()

	fx.employeeRepo.On("ExistsByEmailExcluding", ctx, input.Email, "").Return(true, nil)

	result, err := fx.service.Add(ctx, input)

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Employee email already exists", result.Message)
	fx.employeeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEmployeeService_Update_Success(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := authedContext()

	designation := "Staff Engineer"
	salary := 9000.0
	updated := &entity.Employee{
		ID:          "64f000000000000000000021",
		Designation: designation,
		Salary:      salary,
	}
	fx.employeeRepo.On("Update", ctx, "64f000000000000000000021", repository.EmployeeUpdate{
		Designation: &designation,
		Salary:      &salary,
	}).Return(updated, nil)

	result, err := fx.service.Update(ctx, "64f000000000000000000021", usecase.EmployeeUpdateInput{
		Designation: &designation,
		Salary:      &salary,
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Employee updated", result.Message)
	assert.Equal(t, updated, result.Employee)
}

func TestEmployeeService_Update_SalaryBelowFloor(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := authedContext()

	salary := 500.0
	result, err := fx.service.Update(ctx, "64f000000000000000000021", usecase.EmployeeUpdateInput{
		Salary: &salary,
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "salary must be >= 1000", result.Message)
	fx.employeeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestEmployeeService_Update_EmailCollision(t *testing.T) {
	t.Run("another record owns the email", func(t *testing.T) {
		fx := createTestEmployeeService(t)
		ctx := authedContext()

		email := "taken@example.com"
		fx.employeeRepo.On("ExistsByEmailExcluding", ctx, email, "64f000000000000000000021").
			Return(true, nil)

		result, err := fx.service.Update(ctx, "64f000000000000000000021", usecase.EmployeeUpdateInput{
			Email: &email,
		})

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "Employee email already exists", result.Message)
		fx.employeeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("keeping one's own email is allowed", func(t *testing.T) {
		fx := createTestEmployeeService(t)
		ctx := authedContext()

		email := "jane@example.com"
		updated := &entity.Employee{ID: "64f000000000000000000021", Email: email}
		fx.employeeRepo.On("ExistsByEmailExcluding", ctx, email, "64f000000000000000000021").
			Return(false, nil)
		fx.employeeRepo.On("Update", ctx, "64f000000000000000000021", repository.EmployeeUpdate{
			Email: &email,
		}).Return(updated, nil)

		result, err := fx.service.Update(ctx, "64f000000000000000000021", usecase.EmployeeUpdateInput{
			Email: &email,
		})

		require.NoError(t, err)
		assert.True(t, result.Success)
	})
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := authedContext()

	designation := "Staff Engineer"
	fx.employeeRepo.On("Update", ctx, "64f000000000000000000099", mock.Anything).
		Return(nil, repository.ErrEmployeeNotFound)

	result, err := fx.service.Update(ctx, "64f000000000000000000099", usecase.EmployeeUpdateInput{
		Designation: &designation,
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Employee not found", result.Message)
}

func TestEmployeeService_Delete_Success(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := authedContext()

	fx.employeeRepo.On("Delete", ctx, "64f000000000000000000021").Return(nil)

	result, err := fx.service.Delete(ctx, "64f000000000000000000021")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Employee deleted", result.Message)
}

func TestEmployeeService_Delete_NotFound(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := authedContext()

	fx.employeeRepo.On("Delete", ctx, "64f000000000000000000099").
		Return(repository.ErrEmployeeNotFound)

	result, err := fx.service.Delete(ctx, "64f000000000000000000099")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Employee not found", result.Message)
}

func TestEmployeeService_Delete_RepositoryFault(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := authedContext()

	fx.employeeRepo.On("Delete", ctx, "64f000000000000000000021").
		Return(errors.New("connection reset"))

	result, err := fx.service.Delete(ctx, "64f000000000000000000021")

	require.Error(t, err)
	assert.Nil(t, result)
}
