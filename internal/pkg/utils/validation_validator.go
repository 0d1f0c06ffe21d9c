package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var nonDigitsRegex = regexp.MustCompile(`\D`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("cpf", validateCPF)
	validate.RegisterValidation("crm", validateCRM)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateCPF accepts exactly 11 digit-characters after stripping formatting
// (dots, dashes, spaces).
func validateCPF(fl validator.FieldLevel) bool {
	return len(StripNonDigits(fl.Field().String())) == 11
}

func validateCRM(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func StripNonDigits(value string) string {
	return nonDigitsRegex.ReplaceAllString(value, "")
}
