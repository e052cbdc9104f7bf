package domain

import "errors"

var (
	// ErrMissingAnthropometricData indicates that no measurement record exists for the user.
	ErrMissingAnthropometricData = errors.New("missing anthropometric data")
	// ErrInvalidMeasurement indicates that a measurement set cannot be fed into the circumference formula.
	ErrInvalidMeasurement = errors.New("invalid measurement")
	// ErrMissingBirthDate indicates that age cannot be computed for the user.
	ErrMissingBirthDate = errors.New("missing birth date")
	// ErrUnknownProgramCategory indicates a program category outside the known set.
	ErrUnknownProgramCategory = errors.New("unknown program category")
	// ErrUserNotFound indicates that the user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidProfile indicates a profile field outside its enumerated set.
	ErrInvalidProfile = errors.New("invalid profile")
	// ErrFoodNotFound indicates that an ingestion line references an unknown food.
	ErrFoodNotFound = errors.New("food not found")
)
