package navigation

import (
	domainerrors "wayfinder/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateConfig checks struct tags and maps failures to ErrInvalidConfig.
func validateConfig(cfg any) error {
	if err := validate.Struct(cfg); err != nil {
		return domainerrors.ErrInvalidConfig.WithDetails(err.Error())
	}

	return nil
}
