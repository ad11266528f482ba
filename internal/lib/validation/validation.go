// Package validation реализует проверку входных данных сервиса.
//
// Ошибки собираются в FieldErrors: отображение имени поля в список сообщений.
// Проверка не останавливается на первой ошибке, клиент получает все нарушения сразу.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator"
)

// FieldErrors ошибки валидации по полям.
type FieldErrors map[string][]string

// Add добавляет сообщение к полю.
func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Merge переносит ошибки other в e.
func (e FieldErrors) Merge(other FieldErrors) {
	for field, msgs := range other {
		e[field] = append(e[field], msgs...)
	}
}

// Has сообщает, есть ли ошибки у поля.
func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// Error реализует интерфейс error. Поля выводятся в алфавитном порядке.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(e[f], " ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Err возвращает nil, если ошибок нет, иначе сам набор ошибок.
func (e FieldErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// usernameRe допустимые символы имени пользователя: буквы, цифры и @.+-_
var usernameRe = regexp.MustCompile(`^[\p{L}\p{N}@.+\-_]+$`)

// New создаёт validator.Validate, который называет поля по json-тегам
// и знает тег username.
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct проверяет структуру по validate-тегам и возвращает ошибки по полям.
func Struct(v *validator.Validate, s any) FieldErrors {
	errs := FieldErrors{}
	err := v.Struct(s)
	if err == nil {
		return errs
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs.Add("non_field_errors", err.Error())
		return errs
	}
	errs.Merge(FromValidationErrors(verrs))
	return errs
}

// FromValidationErrors переводит ошибки go-playground/validator в человеко-читаемые сообщения.
func FromValidationErrors(verrs validator.ValidationErrors) FieldErrors {
	errs := FieldErrors{}
	for _, fe := range verrs {
		errs.Add(fe.Field(), message(fe))
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return "this field is required."
	case "max":
		return fmt.Sprintf("ensure this field has no more than %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("ensure this field has at least %s characters.", fe.Param())
	case "email":
		return "enter a valid email address."
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(fe.Value()))
	case "alphanum":
		return "this field can contain only numbers and letters."
	case "numeric":
		return "this field can contain only numbers."
	case "username":
		return "enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	default:
		return "this field is not valid."
	}
}
