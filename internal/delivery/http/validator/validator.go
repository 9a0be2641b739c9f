// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"errors"

	domainerrors "github.com/Renan-rss/instagram-clone/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *playground.Validate
}

// New creates the request validator installed on the echo server.
func New() *echoValidator {
	return &echoValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate runs struct tag validation and converts failures into the domain's
// validation error so the error handler renders a 400 envelope.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var fieldErrs playground.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return domainerrors.ErrValidationFailed.WithDetails(fieldErrs.Error())
		}

		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
