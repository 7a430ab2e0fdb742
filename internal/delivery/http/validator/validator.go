// Package validator adapts go-playground validation to echo's Validator hook.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator instance for echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator with struct tag validation enabled.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *CustomValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
