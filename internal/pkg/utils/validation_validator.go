package utils

import (
	"questionnaire-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("question_number", validateQuestionNumber)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateQuestionNumber(fl validator.FieldLevel) bool {
	number := fl.Field().String()
	if number == "" {
		return false
	}
	return regexp.MustCompile(constvars.RegexQuestionNumber).MatchString(number)
}

