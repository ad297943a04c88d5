// Package validation evalúa las reglas declarativas (tags `validate`) de los
// payloads de entrada y junta todas las violaciones en un apperr.ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"pet-registry/internal/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Reportar los campos con su nombre JSON (name, userId, ...).
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("emptylist", emptyList)

	return &Validator{v: v}
}

// Struct devuelve nil, un *apperr.ValidationError con todas las violaciones,
// o el error del validador si s no es un struct validable.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make([]apperr.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, apperr.Violation{
			Field:  fe.Field(),
			Reason: reason(fe),
		})
	}
	return apperr.Invalid(out...)
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be null"
	case "notblank":
		return "must not be blank"
	case "isdefault":
		return "must be null"
	case "emptylist":
		return "list must be empty"
	case "email":
		return "must be a well-formed email address"
	case "min":
		if isLength(fe.Kind()) {
			return fmt.Sprintf("size must be at least %s", fe.Param())
		}
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "max":
		if isLength(fe.Kind()) {
			return fmt.Sprintf("size must be at most %s", fe.Param())
		}
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

func isLength(k reflect.Kind) bool {
	switch k {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

// emptyList acepta listas nulas o vacías.
func emptyList(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return f.Len() == 0
	case reflect.Ptr, reflect.Interface, reflect.Invalid:
		return !f.IsValid() || f.IsNil()
	}
	return false
}
