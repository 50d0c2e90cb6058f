package error

import "errors"

// Household profile domain errors.
var (
	// ErrProfileNotFound is returned when a household profile does not exist.
	ErrProfileNotFound = errors.New("household profile not found")

	// ErrInvalidProfile is returned when a profile fails validation on save.
	ErrInvalidProfile = errors.New("invalid household profile")
)

// HouseholdErrorCode defines error codes for household errors.
type HouseholdErrorCode string

const (
	ErrCodeProfileNotFound HouseholdErrorCode = "HSH-010001"
	ErrCodeInvalidProfile  HouseholdErrorCode = "HSH-010002"
)
