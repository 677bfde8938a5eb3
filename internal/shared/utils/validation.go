package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"libris/internal/shared/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names for validation errors
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct validates a struct by its validate tags and converts the
// failures into a single validation AppError listing each bad field.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewValidationError(err.Error())
	}

	details := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		details = append(details, fmt.Sprintf("%s failed on %s", fieldErr.Field(), fieldErr.Tag()))
	}
	return errors.NewValidationError("validation failed", details...)
}
