package errors

import "math"

// ValidatePositive returns an INVALID_CONFIG error naming field when v is not
// a finite value greater than zero.
func ValidatePositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return New(ErrCodeInvalidConfig, "%s must be positive, got %v", field, v)
	}
	return nil
}

// ValidateNonNegative returns an INVALID_CONFIG error naming field when v is
// negative or not finite.
func ValidateNonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return New(ErrCodeInvalidConfig, "%s must not be negative, got %v", field, v)
	}
	return nil
}

// ValidateRatio checks that a layout ratio lies strictly between 0 and 1.
//
// A ratio of 0 would collapse the command column and a ratio of 1 would leave
// no room for the simulation area, so both endpoints are rejected.
func ValidateRatio(field string, v float64) error {
	if math.IsNaN(v) || v <= 0 || v >= 1 {
		return New(ErrCodeInvalidConfig, "%s must be in (0, 1), got %v", field, v)
	}
	return nil
}
