// Package graphql defines the GraphQL schema and resolvers. The schema is
// built programmatically; resolvers are thin adapters over the usecases.
package graphql

import (
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

const dateOnlyLayout = "2006-01-02"

// dateScalar serializes time.Time values as RFC 3339 strings and accepts
// either full timestamps or date-only input.
var dateScalar = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Date",
	Description: "An RFC 3339 timestamp. Date-only values are accepted on input.",
	Serialize: func(value any) any {
		switch v := value.(type) {
		case time.Time:
			return v.Format(time.RFC3339)
		case *time.Time:
			if v == nil {
				return nil
			}

			return v.Format(time.RFC3339)
		}

		return nil
	},
	ParseValue: func(value any) any {
		switch v := value.(type) {
		case string:
			return parseDate(v)
		case time.Time:
			return v
		}

		return nil
	},
	ParseLiteral: func(valueAST ast.Value) any {
		if sv, ok := valueAST.(*ast.StringValue); ok {
			return parseDate(sv.Value)
		}

		return nil
	},
})

func parseDate(value string) any {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	if t, err := time.Parse(dateOnlyLayout, value); err == nil {
		return t
	}

	// A nil return marks the literal as invalid to the executor.
	return nil
}
