package validation

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct runs the dto's validate tags. Failures collapse into
// ErrMissingFields: the HTTP boundary exposes a single machine code, not
// per-field details.
func Struct(req any) error {
	if err := validate.Struct(req); err != nil {
		return ErrMissingFields
	}
	return nil
}
