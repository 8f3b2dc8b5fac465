// Package validator plugs go-playground validation into Echo's binding flow.
package validator

import (
	domainerrors "centinela/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator instance so Echo can call it through
// c.Validate on bound request payloads.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the HTTP server.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags on the bound payload. A failed `required` rule
// surfaces as the missing-fields error so clients see the usual 400 message.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrMissingFields.WithDetails(err.Error())
	}

	return nil
}
