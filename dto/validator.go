package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("clean_text", validateCleanText)
}

func GetValidator() *validator.Validate {
	return validate
}

func validateCleanText(fl validator.FieldLevel) bool {
	return IsClean(fl.Field().String())
}

const profanitySuffix = "contiene lenguaje inapropiado"

// Field labels for the Spanish-facing profanity messages.
var fieldLabels = map[string]string{
	"Marca":             "La marca",
	"Modelo":            "El modelo",
	"Problema":          "La descripción",
	"UbicacionServicio": "La ubicación",
}

func profanityMessage(field string) string {
	label, ok := fieldLabels[field]
	if !ok {
		label = "El campo " + field
	}
	return label + " " + profanitySuffix
}

func FormatValidationErrors(err error) []ValidationError {
	var errors []ValidationError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			var message string

			switch fieldError.Tag() {
			case "required":
				message = fieldError.Field() + " is required"
			case "email":
				message = "Invalid email format"
			case "min":
				message = fieldError.Field() + " must be at least " + fieldError.Param() + " characters"
			case "max":
				message = fieldError.Field() + " must be at most " + fieldError.Param() + " characters"
			case "len":
				message = fieldError.Field() + " must be exactly " + fieldError.Param() + " characters"
			case "numeric":
				message = fieldError.Field() + " must contain only numbers"
			case "oneof":
				message = fieldError.Field() + " must be one of: " + fieldError.Param()
			case "datetime":
				message = fieldError.Field() + " must be a valid date"
			case "clean_text":
				message = profanityMessage(fieldError.Field())
			default:
				message = fieldError.Field() + " is invalid"
			}

			errors = append(errors, ValidationError{
				Field:   fieldError.Field(),
				Message: message,
			})
		}
	}

	return errors
}

type Validator interface {
	Validate() error
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Code     int               `json:"code"`
	Message  string            `json:"message"`
	Errors   []ValidationError `json:"errors"`
	Warnings []string          `json:"warnings,omitempty"`
}

func CreateValidationErrorResponse(err error) ValidationErrorResponse {
	return ValidationErrorResponse{
		Code:    400,
		Message: "Validation failed",
		Errors:  FormatValidationErrors(err),
	}
}

// ProfanityFields extracts which fields failed the clean_text rule, for abuse
// logging and penalty tracking.
func ProfanityFields(errs []ValidationError) []string {
	var fields []string
	for _, e := range errs {
		if strings.HasSuffix(e.Message, profanitySuffix) {
			fields = append(fields, e.Field)
		}
	}
	return fields
}
