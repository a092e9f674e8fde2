package graphql

import (
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/labstack/echo/v4"

	"empdir/internal/delivery/http/response"
)

// Handler executes GraphQL requests over HTTP POST. Expected business
// failures ride inside the data payload; GraphQL errors (unauthorized,
// infrastructure faults) land in the errors array of a 200 response.
type Handler struct {
	schema graphql.Schema
}

// NewHandler is the constructor for Handler.
func NewHandler(r *Resolver) (*Handler, error) {
	schema, err := NewSchema(r)
	if err != nil {
		return nil, err
	}

	return &Handler{schema: schema}, nil
}

type request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// Execute runs a single GraphQL operation against the schema.
func (h *Handler) Execute(c echo.Context) error {
	var req request
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid GraphQL request body")
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        c.Request().Context(),
	})

	return c.JSON(http.StatusOK, result)
}
