// Package validation wraps go-playground/validator with human-readable,
// field-ordered violation reporting. It is pure rule checking: uniqueness
// and anything else that needs persistence is out of its hands.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldViolation is a single broken rule on a named field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator checks payload structs against their validate tags.
type Validator struct {
	v *validator.Validate
}

// New constructs a Validator that reports fields by their json names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Employee email failures are phrased distinctly from user email ones.
	v.RegisterAlias("employee_email", "email")
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return &Validator{v: v}
}

// Struct validates s and returns the violations in field declaration order.
// A nil result means the payload is valid.
func (va *Validator) Struct(s any) []FieldViolation {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldViolation{{Field: "", Message: err.Error()}}
	}

	violations := make([]FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, FieldViolation{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}

	return violations
}

// messageFor renders a violation the way the API has always phrased them.
func messageFor(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be valid"
	case "employee_email":
		return "employee " + field + " must be valid"
	case "min":
		if isNumericKind(fe.Kind()) {
			return fmt.Sprintf("%s must be >= %s", field, fe.Param())
		}

		return fmt.Sprintf("%s must be at least %s chars", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be %s", field, strings.ReplaceAll(fe.Param(), " ", "/"))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}

	return false
}
