package services

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/passvault/internal/errs"
)

// emailPattern accepts local@domain.tld without whitespace or extra '@'.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("mailbox", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("bcryptlen", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= maxPasswordBytes
	}); err != nil {
		panic(err)
	}
	return v
}

type registerInput struct {
	Username string `validate:"required,min=2"`
	Email    string `validate:"required,mailbox"`
	Password string `validate:"required,min=6,bcryptlen"`
}

type loginInput struct {
	Email    string `validate:"required,mailbox"`
	Password string `validate:"required"`
}

type passwordInput struct {
	Site     string `validate:"required,min=3"`
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// validateStruct runs the validator and converts the first failure into a
// client-facing validation error.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return errs.Validation(fmt.Sprintf("%s is required", fe.Field()))
	case "min":
		return errs.Validation(fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param()))
	case "bcryptlen":
		return errs.Validation(fmt.Sprintf("%s must be at most %d bytes", fe.Field(), maxPasswordBytes))
	case "mailbox":
		return errs.Validation(fmt.Sprintf("%s must be a valid email address", fe.Field()))
	default:
		return errs.Validation(fmt.Sprintf("%s is invalid", fe.Field()))
	}
}
