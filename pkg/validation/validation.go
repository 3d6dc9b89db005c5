package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	// notblank не входит в стандартный набор тегов
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	// в ошибках используем имена полей из json-тегов, как их видит клиент
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
}

// FieldError невалидное поле и нарушенное правило
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Struct проверяет структуру по тегам validate
// Возвращает список невалидных полей (пустой, если все в порядке).
// error возвращается только если s нельзя проверить (не структура)
func Struct(s interface{}) ([]FieldError, error) {
	err := validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fieldPath(fe), Rule: fe.Tag()})
	}
	return fields, nil
}

// fieldPath путь без имени корневой структуры: "specificNeeds[0]"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

// Names имена полей из списка ошибок
func Names(fields []FieldError) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
	}
	return names
}

// Error ошибка валидации со списком невалидных полей
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	return "validation failed: " + strings.Join(Names(e.Fields), ", ")
}

// Validate как Struct, но возвращает *Error, если есть невалидные поля
func Validate(s interface{}) error {
	fields, err := Struct(s)
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}
