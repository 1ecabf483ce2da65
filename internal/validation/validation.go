// Package validation проверяет входные данные кафе и сотрудников
// и собирает все нарушения в карту ошибок по полям.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/cafe-employee-api/internal/dto"
	"github.com/go-playground/validator/v10"
)

var (
	phonePattern = regexp.MustCompile(`^[89]\d{7}$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// FieldErrors - карта "поле -> список сообщений"
type FieldErrors map[string][]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// Validator проверяет входные структуры. Безопасен для конкурентного использования.
type Validator struct {
	validate *validator.Validate
}

// New создаёт валидатор с правилами для телефона и даты
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "isodate", func(fl validator.FieldLevel) bool {
		return datePattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// RequiredMessage - сообщение для поля, которого нет в запросе
const RequiredMessage = "Required"

// TypeMessage - сообщение для поля, пришедшего не строкой
func TypeMessage(received string) string {
	return "Expected string, received " + received
}

// Cafe проверяет данные кафе, включая необязательный логотип
func (v *Validator) Cafe(in *dto.CafeInput) error {
	return v.check(in, in.DecodeErrors)
}

// Employee проверяет данные сотрудника. Существование кафе не проверяется.
func (v *Validator) Employee(in *dto.EmployeeInput) error {
	return v.check(in, in.DecodeErrors)
}

func (v *Validator) check(s any, decodeErrs map[string]string) error {
	fields := make(FieldErrors)

	if err := v.validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			field := topLevelField(fe.Namespace())
			fields[field] = append(fields[field], message(field, fe))
		}
	}

	// Для поля, не прошедшего разбор, правила не имеют смысла
	for field, msg := range decodeErrs {
		fields[field] = []string{msg}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

// topLevelField превращает "CafeInput.logo.size" в "logo"
func topLevelField(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) < 2 {
		return namespace
	}
	return parts[1]
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return RequiredMessage
	case "min":
		return fmt.Sprintf("String must contain at least %s character(s)", fe.Param())
	case "max":
		if field == "logo" {
			return "Max image size is 2MB."
		}
		return fmt.Sprintf("String must contain at most %s character(s)", fe.Param())
	case "email":
		return "Please provide a valid email"
	case "phone":
		return "Please provide a valid phone number (Starts with either 9 or 8 and have 8 digits)"
	case "uuid":
		return "Invalid cafe id format"
	case "isodate":
		return "Invalid date format (format should be YYYY-MM-DD)"
	case "oneof":
		if field == "logo" {
			return "Only .jpg, .jpeg, .png and .webp formats are supported."
		}
		return "Invalid selection"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
