package api

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/orbya/portfolio-backend/errs"
)

// newValidator builds a struct validator that reports fields under their
// JSON names.
func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return validate
}

// validationError maps the first struct validation failure onto the API
// error taxonomy: missing required fields and syntactically invalid
// values both surface with the offending field named.
func validationError(validate *validator.Validate, payload any) *errs.ApiErr {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return errs.NewBadRequestError("invalid payload")
	}

	first := fieldErrors[0]
	if first.Tag() == "required" {
		return errs.NewMissingRequiredFieldError(first.Field())
	}
	return errs.NewValidationError(first.Field(), "failed on '"+first.Tag()+"' validation")
}
