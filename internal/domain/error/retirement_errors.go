package error

import "errors"

// Retirement projection domain errors.
var (
	// ErrInvalidAges is returned when current, retirement, and life-expectancy ages
	// are not strictly increasing.
	ErrInvalidAges = errors.New("ages must satisfy current < retirement < life expectancy")

	// ErrNegativeSavings is returned when current savings or contributions are negative.
	ErrNegativeSavings = errors.New("savings and contributions cannot be negative")

	// ErrInvalidReturnAssumption is returned for return or inflation rates out of range.
	ErrInvalidReturnAssumption = errors.New("return and inflation rates must be between -50 and 50")

	// ErrInvalidBenefitIncome is returned when a benefit estimate has non-positive income.
	ErrInvalidBenefitIncome = errors.New("annual income must be positive")

	// ErrInvalidClaimAge is returned when the claiming age is outside 62-70.
	ErrInvalidClaimAge = errors.New("claiming age must be between 62 and 70")
)

// RetirementErrorCode defines error codes for retirement errors.
type RetirementErrorCode string

const (
	ErrCodeInvalidAges             RetirementErrorCode = "RET-010001"
	ErrCodeNegativeSavings         RetirementErrorCode = "RET-010002"
	ErrCodeInvalidReturnAssumption RetirementErrorCode = "RET-010003"
	ErrCodeInvalidBenefitIncome    RetirementErrorCode = "RET-010004"
	ErrCodeInvalidClaimAge         RetirementErrorCode = "RET-010005"
)

// RetirementError represents a retirement projection error with code and message.
type RetirementError struct {
	Code    RetirementErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RetirementError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RetirementError) Unwrap() error {
	return e.Err
}

// NewRetirementError creates a new RetirementError with the given code and message.
func NewRetirementError(code RetirementErrorCode, message string, err error) *RetirementError {
	return &RetirementError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
