package service

import (
	"errors"
	"fmt"

	apperrors "students-api/internal/errors"
	"students-api/internal/validation"

	"github.com/go-playground/validator/v10"
)

// validationError converts the first field error of a validator failure into a
// ValidationError. Other errors are returned unchanged.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	var msg string
	switch fe.Tag() {
	case "required":
		msg = "this field is required"
	case "min":
		msg = fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		msg = fmt.Sprintf("must be at most %s", fe.Param())
	case validation.GroupNameTag:
		msg = "must look like AB-12"
	default:
		msg = fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
	return apperrors.NewValidationError(fe.Field(), msg)
}
