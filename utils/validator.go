// utils/validator.go
package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/draftdesk/draftdesk/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("field_type", validateFieldType)
	validate.RegisterValidation("editable_by", validateEditableBy)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateFieldType(fl validator.FieldLevel) bool {
	return models.FieldType(fl.Field().String()).Valid()
}

func validateEditableBy(fl validator.FieldLevel) bool {
	return models.EditableBy(fl.Field().String()).Valid()
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "field_type":
		return "Field type must be one of text, date, signature, checkbox"
	case "editable_by":
		return "Editable-by must be one of manager, client, both"
	default:
		return e.Field() + " is invalid"
	}
}
