package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps wire field names to user-friendly labels
var FieldLabels = map[string]string{
	"uuid":              "UUID",
	"firstName":         "First name",
	"lastName":          "Last name",
	"email":             "Email",
	"password":          "Password",
	"careerLevel":       "Career level",
	"jobMajor":          "Job major",
	"yearsOfExperience": "Years of experience",
	"degreeType":        "Degree type",
	"skills":            "Skills",
	"nationality":       "Nationality",
	"city":              "City",
	"salary":            "Salary",
	"gender":            "Gender",
}

// EnumValues lists the accepted values per enum field for error messages.
var EnumValues = map[string][]string{
	"careerLevel": {"Junior", "Mid Level", "Senior"},
	"degreeType":  {"High School", "Bachelor", "Master"},
	"gender":      {"Male", "Female", "Not Specified"},
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// EnumMessage describes an invalid enum value for the named wire field.
func EnumMessage(field string) string {
	label := getFieldLabel(field)
	if values, ok := EnumValues[field]; ok {
		return fmt.Sprintf("%s: Must be one of: %s", label, strings.Join(values, ", "))
	}
	return fmt.Sprintf("%s: Invalid value", label)
}

func formatSingleError(e validator.FieldError) string {
	field := e.Field()
	label := getFieldLabel(field)
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: Field required", label)
	case "email":
		return fmt.Sprintf("%s: Invalid email address", label)
	case "enum":
		return EnumMessage(field)
	case "gte":
		return fmt.Sprintf("%s: Must be greater than or equal to %s", label, param)
	case "maxbytes":
		return fmt.Sprintf("%s: At most %s bytes", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: At most %s characters", label, param)
		}
		return fmt.Sprintf("%s: At most %s", label, param)
	default:
		return fmt.Sprintf("%s: Failed validation (%s)", label, e.Tag())
	}
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
