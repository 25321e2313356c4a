// Package validator adapts go-playground/validator to echo and to the usecase layer.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"ucsbapi/internal/domain/entity"
	domainerrors "ucsbapi/internal/domain/errors"
	"ucsbapi/internal/domain/service"
	"ucsbapi/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator and service.StructValidator.
type CustomValidator struct {
	validate *validator.Validate
}

var _ service.StructValidator = (*CustomValidator)(nil)

// New builds a validator that reports fields by their JSON names.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	// Validate LocalDateTime as the time.Time it wraps, so "required" rejects the zero value.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if ldt, ok := field.Interface().(entity.LocalDateTime); ok {
			return ldt.Time
		}

		return nil
	}, entity.LocalDateTime{})

	// quarter accepts YYYYQ with Q in 1..4 (winter, spring, summer, fall).
	_ = v.RegisterValidation("quarter", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()

		return len(s) == 5 && s[4] >= '1' && s[4] <= '4'
	})

	return &CustomValidator{validate: v}
}

// Validate returns nil or a ValidationException listing every failed field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errors.Wrap(err, "validate")
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithMessage(strings.Join(messages, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "quarter":
		return fmt.Sprintf("%s must be YYYYQ with quarter 1-4", fe.Field())
	case "len", "max", "min", "gte", "lte":
		return fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
