package graphql

import "github.com/graphql-go/graphql"

// NewSchema assembles the executable schema around the given resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"login": &graphql.Field{
				Type: graphql.NewNonNull(authResponseType),
				Args: graphql.FieldConfigArgument{
					"usernameOrEmail": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.login,
			},
			"getAllEmployees": &graphql.Field{
				Type:    graphql.NewNonNull(employeesResponseType),
				Resolve: r.getAllEmployees,
			},
			"getEmployeeById": &graphql.Field{
				Type: graphql.NewNonNull(employeeResponseType),
				Args: graphql.FieldConfigArgument{
					"eid": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.getEmployeeByID,
			},
			"searchEmployees": &graphql.Field{
				Type: graphql.NewNonNull(employeesResponseType),
				Args: graphql.FieldConfigArgument{
					"designation": &graphql.ArgumentConfig{Type: graphql.String},
					"department":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.searchEmployees,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signup": &graphql.Field{
				Type: graphql.NewNonNull(authResponseType),
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.signup,
			},
			"addEmployee": &graphql.Field{
				Type: graphql.NewNonNull(employeeResponseType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(employeeInputType)},
				},
				Resolve: r.addEmployee,
			},
			"updateEmployee": &graphql.Field{
				Type: graphql.NewNonNull(employeeResponseType),
				Args: graphql.FieldConfigArgument{
					"eid":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(employeeUpdateInputType)},
				},
				Resolve: r.updateEmployee,
			},
			"deleteEmployee": &graphql.Field{
				Type: graphql.NewNonNull(deleteResponseType),
				Args: graphql.FieldConfigArgument{
					"eid": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.deleteEmployee,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
