package service

import (
	"strings"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
)

// NewValidator returns the validator shared by the page services.
func NewValidator() *validator.Validate {
	return validator.New()
}

func validateStruct(v *validator.Validate, payload interface{}, message string) error {
	if err := v.Struct(payload); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
	}
	return nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}
