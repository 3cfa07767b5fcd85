package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator envuelve go-playground/validator con mensajes legibles.
type Validator struct {
	validate *validator.Validate
}

// ValidationError es un error de validación de un campo.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag"`
}

// ValidationErrors agrupa los errores de una struct.
type ValidationErrors []ValidationError

// Error implementa la interfaz error.
func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// New construye el validador con los tags propios de la aplicación.
func New() *Validator {
	v := validator.New()

	// Usar el nombre del tag json en los mensajes de error
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("dateformat", validateDateFormat)
	_ = v.RegisterValidation("hourminute", validateHourMinute)

	return &Validator{validate: v}
}

// Validate valida una struct y devuelve ValidationErrors o nil.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var out ValidationErrors
	for _, fe := range err.(validator.ValidationErrors) {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: msgForTag(fe),
			Tag:     fe.Tag(),
		})
	}
	return out
}

func msgForTag(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", field)
	case "email":
		return fmt.Sprintf("%s deve ser um e-mail válido", field)
	case "url":
		return fmt.Sprintf("%s deve ser uma URL válida", field)
	case "min":
		return fmt.Sprintf("%s deve ter no mínimo %s caracteres", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s deve ter no máximo %s caracteres", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s deve ser um de: %s", field, fe.Param())
	case "dateformat":
		return fmt.Sprintf("%s deve estar no formato YYYY-MM-DD", field)
	case "hourminute":
		return fmt.Sprintf("%s deve estar no formato HH:MM", field)
	default:
		return fmt.Sprintf("%s inválido (%s)", field, fe.Tag())
	}
}

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	hourRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

func validateDateFormat(fl validator.FieldLevel) bool {
	return dateRe.MatchString(fl.Field().String())
}

func validateHourMinute(fl validator.FieldLevel) bool {
	return hourRe.MatchString(fl.Field().String())
}
