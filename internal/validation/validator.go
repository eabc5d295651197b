// Package validation wraps go-playground/validator with the project's
// custom tags and converts failures into domain errors.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dangerclosesec/trainhub/internal/domain"
	"github.com/go-playground/validator/v10"
)

const (
	// emailFormatTag checks the address shape with the same expression the
	// dashboard uses, which is looser than validator's built-in "email".
	emailFormatTag = "email_format"
	// businessEmailTag additionally rejects personal mailbox providers.
	businessEmailTag = "business_email"
)

// New returns a validator with the custom tags registered and JSON field
// names used in error output.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation(emailFormatTag, func(fl validator.FieldLevel) bool {
		return ValidateEmailFormat(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation(businessEmailTag, func(fl validator.FieldLevel) bool {
		return !IsPersonalDomain(fl.Field().String())
	})

	return v
}

// Struct validates s and returns a domain error. Email failures map to the
// dedicated format and restricted-domain errors so callers see the same
// messages as the direct checks.
func Struct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case emailFormatTag:
			return domain.ErrInvalidEmailFormat.WithDetails(fe.Field())
		case businessEmailTag:
			return domain.ErrRestrictedEmailDomain.WithDetails(fe.Field())
		}
		details = append(details, describe(fe))
	}

	if len(details) == 1 {
		return domain.Invalid("%s", details[0])
	}
	e := domain.Invalid("Validation failed")
	e.Details = details
	return e
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "min":
		if fe.Kind() == reflect.String && fe.Param() == "1" {
			return fmt.Sprintf("%s must not be blank", fe.Field())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "uuid":
		return fmt.Sprintf("%s must be a valid ID", fe.Field())
	case "gtefield":
		return fmt.Sprintf("%s must not be before %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
