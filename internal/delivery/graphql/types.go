package graphql

import (
	"github.com/graphql-go/graphql"

	"empdir/internal/usecase"
)

// Object types mirror the envelope shapes returned by the usecases; the
// default resolver matches fields through the json tags on the DTOs.

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"_id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"username":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"email":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"created_at": &graphql.Field{Type: dateScalar},
		"updated_at": &graphql.Field{Type: dateScalar},
	},
})

var employeeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Employee",
	Fields: graphql.Fields{
		"_id":             &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"first_name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"last_name":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"email":           &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"gender":          &graphql.Field{Type: graphql.String},
		"designation":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"salary":          &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"date_of_joining": &graphql.Field{Type: graphql.NewNonNull(dateScalar)},
		"department":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"employee_photo":  &graphql.Field{Type: graphql.String},
		"created_at":      &graphql.Field{Type: dateScalar},
		"updated_at":      &graphql.Field{Type: dateScalar},
	},
})

var authResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "AuthResponse",
	Fields: graphql.Fields{
		"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"token": &graphql.Field{
			Type: graphql.String,
			// Failure envelopes carry no token; resolve to null rather
			// than an empty string.
			Resolve: func(p graphql.ResolveParams) (any, error) {
				result, ok := p.Source.(*usecase.AuthResult)
				if !ok || result.Token == "" {
					return nil, nil
				}

				return result.Token, nil
			},
		},
		"user": &graphql.Field{Type: userType},
	},
})

var employeeResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "EmployeeResponse",
	Fields: graphql.Fields{
		"success":  &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"message":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"employee": &graphql.Field{Type: employeeType},
	},
})

var employeesResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "EmployeesResponse",
	Fields: graphql.Fields{
		"success":   &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"message":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"employees": &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(employeeType)))},
	},
})

var deleteResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DeleteResponse",
	Fields: graphql.Fields{
		"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var employeeInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "EmployeeInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"first_name":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"last_name":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email":           &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"gender":          &graphql.InputObjectFieldConfig{Type: graphql.String},
		"designation":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"salary":          &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"date_of_joining": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(dateScalar)},
		"department":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"employee_photo":  &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var employeeUpdateInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "EmployeeUpdateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"first_name":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"last_name":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"email":           &graphql.InputObjectFieldConfig{Type: graphql.String},
		"gender":          &graphql.InputObjectFieldConfig{Type: graphql.String},
		"designation":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"salary":          &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"date_of_joining": &graphql.InputObjectFieldConfig{Type: dateScalar},
		"department":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"employee_photo":  &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})
