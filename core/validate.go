package core

import (
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// optionValidator is goroutine-safe and caches struct metadata.
var optionValidator = validator.New(validator.WithRequiredStructEnabled())

// ValidateOptions checks the `validate` struct tags of an options or kwargs
// struct. The first violation is reported wrapped in ErrInvalidOption.
func ValidateOptions(v any) error {
	err := optionValidator.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return errors.Wrapf(ErrInvalidOption, "%s=%v violates %q", fe.Field(), fe.Value(), tagWithParam(fe))
	}

	return errors.Wrapf(ErrInvalidOption, "%v", err)
}

func tagWithParam(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}

	return fe.Tag() + "=" + fe.Param()
}

// CheckLengths returns ErrLengthMismatch unless every length equals the first.
func CheckLengths(lengths ...int) error {
	for i := 1; i < len(lengths); i++ {
		if lengths[i] != lengths[0] {
			return errors.Wrapf(ErrLengthMismatch, "column %d has %d rows, want %d", i, lengths[i], lengths[0])
		}
	}

	return nil
}
