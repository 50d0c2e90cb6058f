// Package error defines domain-specific errors for the Finance Advisor application.
package error

import (
	"errors"
	"fmt"
)

// Debt planning domain errors.
var (
	// ErrNoDebts is returned when a simulation is requested with an empty debt list.
	ErrNoDebts = errors.New("no debts provided")

	// ErrInvalidDebt is returned when a debt has a negative balance, rate, or minimum payment.
	ErrInvalidDebt = errors.New("invalid debt")

	// ErrInvalidBudget is returned when the monthly budget is zero or negative.
	ErrInvalidBudget = errors.New("invalid monthly budget")

	// ErrInvalidStrategy is returned when the strategy is not avalanche, snowball, or hybrid.
	ErrInvalidStrategy = errors.New("invalid payoff strategy")

	// ErrInsufficientBudget is returned when the budget cannot cover minimum payments.
	ErrInsufficientBudget = errors.New("monthly budget below combined minimum payments")
)

// DebtPlanErrorCode defines error codes for debt planning errors.
// Format: DBT-XXYYYY where XX is category and YYYY is specific error.
type DebtPlanErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNoDebts         DebtPlanErrorCode = "DBT-010001"
	ErrCodeInvalidDebt     DebtPlanErrorCode = "DBT-010002"
	ErrCodeInvalidBudget   DebtPlanErrorCode = "DBT-010003"
	ErrCodeInvalidStrategy DebtPlanErrorCode = "DBT-010004"

	// Feasibility errors (02XXXX)
	ErrCodeInsufficientBudget DebtPlanErrorCode = "DBT-020001"
)

// DebtPlanError represents a debt planning error with code and message.
type DebtPlanError struct {
	Code    DebtPlanErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DebtPlanError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DebtPlanError) Unwrap() error {
	return e.Err
}

// NewDebtPlanError creates a new DebtPlanError with the given code and message.
func NewDebtPlanError(code DebtPlanErrorCode, message string, err error) *DebtPlanError {
	return &DebtPlanError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// InsufficientBudgetError reports a budget that cannot cover minimum payments.
// It is a normal "no plan possible" outcome rather than an internal fault, so it
// carries the figures the caller needs to present the shortfall.
type InsufficientBudgetError struct {
	Budget          float64
	MinimumRequired float64
}

// Error implements the error interface.
func (e *InsufficientBudgetError) Error() string {
	return fmt.Sprintf("monthly budget %.2f is below the %.2f required for minimum payments", e.Budget, e.MinimumRequired)
}

// Unwrap returns the sentinel insufficient-budget error.
func (e *InsufficientBudgetError) Unwrap() error {
	return ErrInsufficientBudget
}
