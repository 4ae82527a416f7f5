package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

func registerCustomRules(v *validator.Validate) error {
	// notblank rejects strings that are empty after trimming; "required"
	// alone lets all-whitespace values through.
	return v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}
