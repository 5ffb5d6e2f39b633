// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "storyhub/internal/domain/errors"
	"storyhub/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON names.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: validate}
}

// Validate validates a bound request DTO. Failures become VALIDATION_FAILED.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "validate request")
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, describe(fieldErr))
	}

	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(strings.Join(messages, "; ")))
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldErr.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fieldErr.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fieldErr.Field(), fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fieldErr.Field(), fieldErr.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fieldErr.Field(), fieldErr.Tag())
	}
}
