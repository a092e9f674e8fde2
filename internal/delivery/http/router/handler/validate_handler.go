package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"empdir/internal/delivery/http/response"
	"empdir/internal/usecase"
	"empdir/internal/validation"
)

// ValidateHandler exposes the input validator on its own endpoints so
// clients can check payloads without touching persistence.
type ValidateHandler struct {
	validator *validation.Validator
}

// NewValidateHandler is the constructor for ValidateHandler.
func NewValidateHandler(validator *validation.Validator) *ValidateHandler {
	return &ValidateHandler{validator: validator}
}

// Signup handles POST /validate/signup.
func (h *ValidateHandler) Signup(c echo.Context) error {
	var input usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid signup body")
	}

	if violations := h.validator.Struct(input); violations != nil {
		return response.ValidationFailed(c, violations)
	}

	return response.Success(c, http.StatusOK, nil, "Valid signup body")
}

// Employee handles POST /validate/employee.
func (h *ValidateHandler) Employee(c echo.Context) error {
	var input usecase.EmployeeInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid employee body")
	}

	if violations := h.validator.Struct(input); violations != nil {
		return response.ValidationFailed(c, violations)
	}

	return response.Success(c, http.StatusOK, nil, "Valid employee body")
}
