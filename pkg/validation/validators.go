package validation

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Enum is implemented by closed string sets such as domain.Gender.
type Enum interface {
	Valid() bool
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("enum", ValidEnum)
	_ = v.RegisterValidation("maxbytes", MaxBytes)
}

// ValidEnum accepts values whose type reports them as a member of its set.
// Empty values pass; pair with required when presence matters.
func ValidEnum(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.String && field.String() == "" {
		return true
	}
	if !field.CanInterface() {
		return false
	}
	e, ok := field.Interface().(Enum)
	if !ok {
		return false
	}
	return e.Valid()
}

// MaxBytes bounds the encoded length of a string, unlike max which counts runes.
// bcrypt rejects passwords longer than 72 bytes.
func MaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// jsonFieldName reports fields by their wire name so messages match the payload.
func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
