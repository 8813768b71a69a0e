package util

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

type ErrorResponse struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Msg   string `json:"message"`
}

// ValidateStruct runs the validate tags on s and returns one entry per failing
// field, or nil when the payload is valid.
func ValidateStruct(s interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := Validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			element := ErrorResponse{
				Field: err.Field(),
				Tag:   err.Tag(),
			}

			switch err.Tag() {
			case "required":
				element.Msg = fmt.Sprintf("Field '%s' is required.", element.Field)
			case "min":
				element.Msg = fmt.Sprintf("Field '%s' must be at least %s.", element.Field, err.Param())
			case "max":
				element.Msg = fmt.Sprintf("Field '%s' must be at most %s.", element.Field, err.Param())
			case "email":
				element.Msg = "Invalid email format."
			case "url":
				element.Msg = fmt.Sprintf("Field '%s' must be a valid URL.", element.Field)
			case "oneof":
				element.Msg = fmt.Sprintf("Field '%s' must be one of: %s.", element.Field, err.Param())
			case "datetime":
				element.Msg = fmt.Sprintf("Field '%s' must match format %s.", element.Field, err.Param())
			case "gtefield":
				element.Msg = fmt.Sprintf("Field '%s' must not be before '%s'.", element.Field, err.Param())
			default:
				element.Msg = fmt.Sprintf("Field '%s' failed validation for tag '%s'.", element.Field, element.Tag)
			}
			errors = append(errors, &element)
		}
	}
	return errors
}
