package serverutils

import (
	"fmt"
	"strings"

	"notely-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks the struct's validate tags and folds failures into
// a single 400-mapped error.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.Validation("Invalid request body.")
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields = append(fields, fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
		case "email":
			fields = append(fields, "email must be a valid address")
		case "min":
			fields = append(fields, fmt.Sprintf("%s must be at least %s characters", strings.ToLower(fe.Field()), fe.Param()))
		case "max":
			fields = append(fields, fmt.Sprintf("%s must be at most %s characters", strings.ToLower(fe.Field()), fe.Param()))
		case "url":
			fields = append(fields, fmt.Sprintf("%s must be a valid URL", strings.ToLower(fe.Field())))
		default:
			fields = append(fields, fmt.Sprintf("%s is invalid", strings.ToLower(fe.Field())))
		}
	}

	return apperror.Validation(strings.Join(fields, "; ") + ".")
}
