package dto

import (
	"github.com/go-playground/validator/v10"
)

const (
	MinPasscode = 1000
	MaxPasscode = 9999
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("passcode", validatePasscode)
}

func GetValidator() *validator.Validate {
	return validate
}

func validatePasscode(fl validator.FieldLevel) bool {
	return ValidPasscode(int(fl.Field().Int()))
}

func ValidPasscode(passcode int) bool {
	return passcode >= MinPasscode && passcode <= MaxPasscode
}

type ValidationError struct {
	Field   string `json:"field" example:"passcode"`
	Message string `json:"message" example:"passcode must be a 4-digit number between 1000 and 9999"`
}

func FormatValidationErrors(err error) []ValidationError {
	var errors []ValidationError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			var message string

			switch fieldError.Tag() {
			case "required":
				message = fieldError.Field() + " is required"
			case "min":
				message = fieldError.Field() + " must be at least " + fieldError.Param()
			case "max":
				message = fieldError.Field() + " must be at most " + fieldError.Param()
			case "gt":
				message = fieldError.Field() + " must be greater than " + fieldError.Param()
			case "passcode":
				message = fieldError.Field() + " must be a 4-digit number between 1000 and 9999"
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
