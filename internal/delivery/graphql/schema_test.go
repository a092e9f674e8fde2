package graphql

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	deliverycontext "empdir/internal/delivery/context"
	"empdir/internal/domain/entity"
	"empdir/internal/domain/repository"
	"empdir/internal/domain/service"
	mockRepo "empdir/internal/mocks/repository"
	mockSvc "empdir/internal/mocks/service"
	"empdir/internal/usecase/impl"
	"empdir/internal/validation"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// schemaFixtures wires the real usecases over mocked repositories so the
// whole execution path from query string to envelope is under test.
type schemaFixtures struct {
	schema       graphql.Schema
	userRepo     *mockRepo.MockUserRepository
	employeeRepo *mockRepo.MockEmployeeRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenSvc     *mockSvc.MockTokenService
}

func createTestSchema(t *testing.T) schemaFixtures {
	t.Helper()

	userRepo := new(mockRepo.MockUserRepository)
	employeeRepo := new(mockRepo.MockEmployeeRepository)
	hasher := new(mockSvc.MockPasswordHasher)
	tokenSvc := new(mockSvc.MockTokenService)
	validator := validation.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	resolver := NewResolver(
		impl.NewUserService(userRepo, hasher, tokenSvc, validator, logger),
		impl.NewEmployeeService(employeeRepo, validator, logger),
	)
	schema, err := NewSchema(resolver)
	require.NoError(t, err)

	return schemaFixtures{
		schema:       schema,
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		hasher:       hasher,
		tokenSvc:     tokenSvc,
	}
}

func authedRequestContext() context.Context {
	return deliverycontext.WithIdentity(context.Background(), &service.IdentityClaims{
		UserID:   "64f000000000000000000001",
		Username: "johndoe",
	})
}

func execute(fx schemaFixtures, ctx context.Context, query string, variables map[string]any) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         fx.schema,
		RequestString:  query,
		VariableValues: variables,
		Context:        ctx,
	})
}

func TestSchema_GetAllEmployees_WithoutIdentity(t *testing.T) {
	fx := createTestSchema(t)

	result := execute(fx, context.Background(), `{ getAllEmployees { success message } }`, nil)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Unauthorized. Please login first.", result.Errors[0].Message)
	assert.Equal(t, map[string]any{"code": "UNAUTHORIZED"}, result.Errors[0].Extensions)
	fx.employeeRepo.AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestSchema_GetAllEmployees_Success(t *testing.T) {
	fx := createTestSchema(t)
	ctx := authedRequestContext()

	joined := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	fx.employeeRepo.On("FindAll", mock.Anything).Return([]*entity.Employee{
		{
			ID:            "64f000000000000000000011",
			FirstName:     "Jane",
			LastName:      "Doe",
			Email:         "jane@example.com",
			Designation:   "Engineer",
			Salary:        5000,
			DateOfJoining: joined,
			Department:    "Engineering",
		},
	}, nil)

	result := execute(fx, ctx, `{
		getAllEmployees {
			success
			message
			employees { _id first_name date_of_joining }
		}
	}`, nil)

	require.Empty(t, result.Errors)
	payload := result.Data.(map[string]any)["getAllEmployees"].(map[string]any)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "Employees fetched", payload["message"])

	employees := payload["employees"].([]any)
	require.Len(t, employees, 1)
	first := employees[0].(map[string]any)
	assert.Equal(t, "64f000000000000000000011", first["_id"])
	assert.Equal(t, "Jane", first["first_name"])
	assert.Equal(t, "2023-04-01T00:00:00Z", first["date_of_joining"])
}

func TestSchema_Login_Success(t *testing.T) {
	fx := createTestSchema(t)

	stored := &entity.User{ID: "64f000000000000000000002", Username: "johndoe", Password: "hashed"}
	fx.userRepo.On("FindByUsernameOrEmail", mock.Anything, "johndoe").Return(stored, nil)
	fx.hasher.On("Check", "secret123", "hashed").Return(true)
	fx.tokenSvc.On("Issue", service.IdentityClaims{
		UserID:   stored.ID,
		Username: stored.Username,
	}).Return("signed-token", nil)

	result := execute(fx, context.Background(), `{
		login(usernameOrEmail: "johndoe", password: "secret123") { success message token }
	}`, nil)

	require.Empty(t, result.Errors)
	payload := result.Data.(map[string]any)["login"].(map[string]any)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "Login successful", payload["message"])
	assert.Equal(t, "signed-token", payload["token"])
}

func TestSchema_Login_FailureEnvelopeNotError(t *testing.T) {
	fx := createTestSchema(t)

	stored := &entity.User{ID: "64f000000000000000000002", Username: "johndoe", Password: "hashed"}
	fx.userRepo.On("FindByUsernameOrEmail", mock.Anything, "johndoe").Return(stored, nil)
	fx.hasher.On("Check", "wrong", "hashed").Return(false)

	result := execute(fx, context.Background(), `{
		login(usernameOrEmail: "johndoe", password: "wrong") { success message token }
	}`, nil)

	// Login is public and its failure is an envelope, never a GraphQL error.
	require.Empty(t, result.Errors)
	payload := result.Data.(map[string]any)["login"].(map[string]any)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "Invalid credentials", payload["message"])
	assert.Nil(t, payload["token"])
}

func TestSchema_AddEmployee_DateOnlyVariable(t *testing.T) {
	fx := createTestSchema(t)
	ctx := authedRequestContext()

	fx.employeeRepo.On("ExistsByEmailExcluding", mock.Anything, "jane@example.com", "").
		Return(false, nil)
	fx.employeeRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Employee")).
		Run(func(args mock.Arguments) {
			employee := args.Get(1).(*entity.Employee)
			employee.ID = "64f000000000000000000021"
		}).
		Return(nil)

	result := execute(fx, ctx, `mutation ($input: EmployeeInput!) {
		addEmployee(input: $input) {
			success
			message
			employee { _id email date_of_joining }
		}
	}`, map[string]any{
		"input": map[string]any{
			"first_name":      "Jane",
			"last_name":       "Doe",
			"email":           "jane@example.com",
			"designation":     "Engineer",
			"salary":          5000,
			"date_of_joining": "2023-04-01",
			"department":      "Engineering",
		},
	})

	require.Empty(t, result.Errors)
	payload := result.Data.(map[string]any)["addEmployee"].(map[string]any)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "Employee created", payload["message"])

	employee := payload["employee"].(map[string]any)
	assert.Equal(t, "64f000000000000000000021", employee["_id"])
	assert.Equal(t, "2023-04-01T00:00:00Z", employee["date_of_joining"])
}

func TestSchema_DeleteEmployee_NotFoundEnvelope(t *testing.T) {
	fx := createTestSchema(t)
	ctx := authedRequestContext()

	fx.employeeRepo.On("Delete", mock.Anything, "64f000000000000000000099").
		Return(repository.ErrEmployeeNotFound)

	result := execute(fx, ctx, `mutation {
		deleteEmployee(eid: "64f000000000000000000099") { success message }
	}`, nil)

	require.Empty(t, result.Errors)
	payload := result.Data.(map[string]any)["deleteEmployee"].(map[string]any)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "Employee not found", payload["message"])
}
