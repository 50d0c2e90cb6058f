package error

import "errors"

// Scenario simulation domain errors.
var (
	// ErrUnknownScenarioType is returned for a scenario type with no calculation branch.
	ErrUnknownScenarioType = errors.New("unknown scenario type")

	// ErrMissingScenarioParams is returned when a branch's required parameters are absent.
	ErrMissingScenarioParams = errors.New("missing scenario parameters")

	// ErrInvalidScenarioParams is returned when parameters are present but out of range.
	ErrInvalidScenarioParams = errors.New("invalid scenario parameters")
)

// ScenarioErrorCode defines error codes for scenario errors.
type ScenarioErrorCode string

const (
	ErrCodeUnknownScenarioType   ScenarioErrorCode = "SCN-010001"
	ErrCodeMissingScenarioParams ScenarioErrorCode = "SCN-010002"
	ErrCodeInvalidScenarioParams ScenarioErrorCode = "SCN-010003"
)

// ScenarioError represents a scenario evaluation error with code and message.
type ScenarioError struct {
	Code    ScenarioErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ScenarioError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ScenarioError) Unwrap() error {
	return e.Err
}

// NewScenarioError creates a new ScenarioError with the given code and message.
func NewScenarioError(code ScenarioErrorCode, message string, err error) *ScenarioError {
	return &ScenarioError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
