package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/finware/glcore/internal/apperrors"
)

// validate is the shared request validator. Struct tags on the dto package
// describe the required shape; services call validateStruct on entry.
var validate = validator.New()

// validateStruct runs tag validation and maps failures onto ErrValidation so
// callers can match with errors.Is.
func validateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return nil
}
