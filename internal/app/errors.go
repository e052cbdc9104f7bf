package app

import (
	"errors"
	"fmt"

	"fitcore/internal/domain"
)

// ErrValidation marks input rejected by a service before it reaches storage.
var ErrValidation = errors.New("validation failed")

func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// IsDataError reports whether err means the user's stored data cannot
// produce a nutrition snapshot. Such errors are resolved by the user
// supplying data, not by retrying.
func IsDataError(err error) bool {
	return errors.Is(err, domain.ErrMissingAnthropometricData) ||
		errors.Is(err, domain.ErrInvalidMeasurement) ||
		errors.Is(err, domain.ErrMissingBirthDate) ||
		errors.Is(err, domain.ErrUnknownProgramCategory) ||
		errors.Is(err, domain.ErrInvalidProfile)
}

// failureReason is the metrics label for a failed snapshot computation.
func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingAnthropometricData):
		return "missing_measurement"
	case errors.Is(err, domain.ErrInvalidMeasurement):
		return "invalid_measurement"
	case errors.Is(err, domain.ErrMissingBirthDate):
		return "missing_birth_date"
	case errors.Is(err, domain.ErrUnknownProgramCategory):
		return "unknown_program"
	case errors.Is(err, domain.ErrInvalidProfile):
		return "invalid_profile"
	case errors.Is(err, domain.ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, ErrValidation):
		return "validation"
	default:
		return "storage"
	}
}
