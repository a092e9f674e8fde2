package graphql

import (
	"time"

	"github.com/graphql-go/graphql"

	"empdir/internal/usecase"
)

// Resolver adapts the GraphQL operations onto the usecases. Authorization
// is enforced inside the usecases themselves; resolvers only move data.
type Resolver struct {
	userUC     usecase.UserUsecase
	employeeUC usecase.EmployeeUsecase
}

// NewResolver is the constructor for Resolver.
func NewResolver(userUC usecase.UserUsecase, employeeUC usecase.EmployeeUsecase) *Resolver {
	return &Resolver{
		userUC:     userUC,
		employeeUC: employeeUC,
	}
}

func (r *Resolver) login(p graphql.ResolveParams) (any, error) {
	input := usecase.LoginInput{
		UsernameOrEmail: stringArg(p.Args, "usernameOrEmail"),
		Password:        stringArg(p.Args, "password"),
	}

	result, err := r.userUC.Login(p.Context, input)
	if err != nil {
		return nil, wrapResolverError(err)
	}

	return result, nil
}

func (r *Resolver) signup(p graphql.ResolveParams) (any, error) {
	input := usecase.SignupInput{
		Username: stringArg(p.Args, "username"),
		Email:    stringArg(p.Args, "email"),
		Password: stringArg(p.Args, "password"),
	}

	result, err := r.userUC.Signup(p.Context, input)
	if err != nil {
		return nil, wrapResolverError(err)
	}

	return result, nil
}

func (r *Resolver) getAllEmployees(p graphql.ResolveParams) (any, error) {
	result, err := r.employeeUC.GetAll(p.Context)
	if err != nil {
		return nil, wrapResolverError(err)
	}

	return result, nil
}

func (r *Resolver) getEmployeeByID(p graphql.ResolveParams) (any, error) {
	result, err := r.employeeUC.GetByID(p.Context, stringArg(p.Args, "eid"))
	if err != nil {
		return nil, wrapResolverError(err)
	}

	return result, nil
}

func (r *Resolver) searchEmployees(p graphql.ResolveParams) (any, error) {
	input := usecase.EmployeeSearchInput{
		Designation: stringArg(p.Args, "designation"),
		Department:  stringArg(p.Args, "department"),
	}

	result, err := r.employeeUC.Search(p.Context, input)
	if err != nil {
		return nil, wrapResolverError(err)
	}

	return result, nil
}

func (r *Resolver) addEmployee(p graphql.ResolveParams) (any, error) {
	raw, _ := p.Args["input"].(map[string]any)

	result, err := r.employeeUC.Add(p.Context, decodeEmployeeInput(raw))
	if err != nil {
		return nil, wrapResolverError(err)
	}

	return result, nil
}

func (r *Resolver) updateEmployee(p graphql.ResolveParams) (any, error) {
	raw, _ := p.Args["input"].(map[string]any)

	result, err := r.employeeUC.Update(p.Context, stringArg(p.Args, "eid"), decodeEmployeeUpdateInput(raw))
	if err != nil {
		return nil, wrapResolverError(err)
	}

	return result, nil
}

func (r *Resolver) deleteEmployee(p graphql.ResolveParams) (any, error) {
	result, err := r.employeeUC.Delete(p.Context, stringArg(p.Args, "eid"))
	if err != nil {
		return nil, wrapResolverError(err)
	}

	return result, nil
}

// --- argument decoding ---

func stringArg(args map[string]any, name string) string {
	value, _ := args[name].(string)

	return value
}

func decodeEmployeeInput(raw map[string]any) usecase.EmployeeInput {
	input := usecase.EmployeeInput{
		FirstName:   stringArg(raw, "first_name"),
		LastName:    stringArg(raw, "last_name"),
		Email:       stringArg(raw, "email"),
		Gender:      stringArg(raw, "gender"),
		Designation: stringArg(raw, "designation"),
		Department:  stringArg(raw, "department"),
	}
	if salary, ok := raw["salary"].(float64); ok {
		input.Salary = salary
	}
	if doj, ok := raw["date_of_joining"].(time.Time); ok {
		input.DateOfJoining = doj
	}
	if photo, ok := raw["employee_photo"].(string); ok {
		input.EmployeePhoto = photo
	}

	return input
}

func decodeEmployeeUpdateInput(raw map[string]any) usecase.EmployeeUpdateInput {
	var input usecase.EmployeeUpdateInput
	if v, ok := raw["first_name"].(string); ok {
		input.FirstName = &v
	}
	if v, ok := raw["last_name"].(string); ok {
		input.LastName = &v
	}
	if v, ok := raw["email"].(string); ok {
		input.Email = &v
	}
	if v, ok := raw["gender"].(string); ok {
		input.Gender = &v
	}
	if v, ok := raw["designation"].(string); ok {
		input.Designation = &v
	}
	if v, ok := raw["salary"].(float64); ok {
		input.Salary = &v
	}
	if v, ok := raw["date_of_joining"].(time.Time); ok {
		input.DateOfJoining = &v
	}
	if v, ok := raw["department"].(string); ok {
		input.Department = &v
	}
	if v, ok := raw["employee_photo"].(string); ok {
		input.EmployeePhoto = &v
	}

	return input
}
