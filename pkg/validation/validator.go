package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate *validator.Validate

// ErrNilValue is returned when a nil value is handed to Struct
var ErrNilValue = errors.New("value cannot be nil")

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// Struct validates v against its `validate` struct tags and returns the first
// failure in a readable form.
func Struct(v any) error {
	if v == nil {
		return ErrNilValue
	}
	if err := validate.Struct(v); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// Var validates a single value against a tag expression such as "min=1,max=8".
// name is only used in the error message.
func Var(name string, value any, tag string) error {
	if err := validate.Var(value, tag); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			return describe(name, validationErrs[0])
		}
		return err
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	e := validationErrs[0]
	return describe(fieldPath(e), e)
}

// fieldPath drops the top-level struct name from the namespace, so
// "Configuration.Rotors[1].Position" becomes "Rotors[1].Position".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

func describe(field string, e validator.FieldError) error {
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s: field is required", field)
	case "min":
		return fmt.Errorf("%s: must be at least %s, got %v", field, param, e.Value())
	case "max":
		return fmt.Errorf("%s: must not exceed %s, got %v", field, param, e.Value())
	case "oneof":
		return fmt.Errorf("%s: %v must be one of [%s]", field, e.Value(), param)
	case "len":
		return fmt.Errorf("%s: length must be %s", field, param)
	default:
		return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
	}
}
