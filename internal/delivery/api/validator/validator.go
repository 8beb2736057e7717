// Package validator adapts go-playground/validator to echo and reports
// failures per JSON field.
package validator

import (
	"reflect"
	"strings"

	"dashkeep/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// FieldError describes one rejected request field, named as on the wire.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned by Validate when at least one field is invalid.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New registers the phone and national_id rules and json field naming.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		_, ok := entity.NormalizePhone(fl.Field().String())

		return ok
	})
	_ = v.RegisterValidation("national_id", func(fl validator.FieldLevel) bool {
		_, ok := entity.NormalizeNationalID(fl.Field().String())

		return ok
	})

	return &CustomValidator{validate: v}
}

// Validate returns *ValidationError for rule violations.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: message(fe)})
	}

	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "email inválido"
	case "min":
		return "deve ter pelo menos " + fe.Param() + " caracteres"
	case "max":
		return "deve ter no máximo " + fe.Param() + " caracteres"
	case "phone":
		return "telefone inválido, use (11) 99999-9999"
	case "national_id":
		return "CPF deve conter 11 dígitos"
	default:
		return "valor inválido"
	}
}
