package response

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status string       `json:"status,omitempty"`
	Error  string       `json:"error,omitempty"`
	Errors []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Success is the body of state-changing endpoints that return nothing else.
type Success struct {
	Success bool `json:"success"`
}

const StatusOK = "ok"

func OK() Response {
	return Response{
		Status: StatusOK,
	}
}

func Done() Success {
	return Success{Success: true}
}

func Error(msg string) Response {
	return Response{
		Error: msg,
	}
}

func Invalid(field, msg string) Response {
	return Response{
		Errors: []FieldError{{Field: field, Message: msg}},
	}
}

func ValidationError(errs validator.ValidationErrors) Response {
	fieldErrs := make([]FieldError, 0, len(errs))

	for _, err := range errs {
		fieldErrs = append(fieldErrs, FieldError{
			Field:   err.Field(),
			Message: message(err),
		})
	}

	return Response{
		Errors: fieldErrs,
	}
}

// FromValidate converts the error returned by validator.Struct into a
// response. Non-validation errors (invalid input type) become a generic error.
func FromValidate(err error) Response {
	var validateErr validator.ValidationErrors
	if errors.As(err, &validateErr) {
		return ValidationError(validateErr)
	}

	return Error("invalid request")
}

func message(err validator.FieldError) string {
	switch err.ActualTag() {
	case "required":
		return fmt.Sprintf("field %s is a required field", err.Field())
	case "email":
		return fmt.Sprintf("field %s is not a valid email", err.Field())
	case "min":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("field %s must be at least %s characters", err.Field(), err.Param())
		}
		return fmt.Sprintf("field %s must be at least %s", err.Field(), err.Param())
	case "max":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("field %s must be at most %s characters", err.Field(), err.Param())
		}
		return fmt.Sprintf("field %s must be at most %s", err.Field(), err.Param())
	case "gtfield":
		return fmt.Sprintf("field %s must be after %s", err.Field(), snakeCase(err.Param()))
	case "uuid":
		return fmt.Sprintf("field %s is not a valid id", err.Field())
	default:
		return fmt.Sprintf("field %s is not valid", err.Field())
	}
}

func snakeCase(s string) string {
	var b strings.Builder

	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
