package error

import "errors"

// Cash-flow forecasting domain errors.
var (
	// ErrInvalidForecastHorizon is returned when the forecast month count is out of range.
	ErrInvalidForecastHorizon = errors.New("forecast months must be between 1 and 60")

	// ErrNegativeIncome is returned when monthly income is negative.
	ErrNegativeIncome = errors.New("monthly income cannot be negative")

	// ErrUnknownCashFlowScenario is returned for an unrecognized scenario type.
	ErrUnknownCashFlowScenario = errors.New("unknown cash flow scenario type")

	// ErrRecurringExpenseNotFound is returned when a remove_recurring scenario names
	// an expense that does not exist on the snapshot.
	ErrRecurringExpenseNotFound = errors.New("recurring expense not found")

	// ErrNegativeBalance is returned when a runway calculation receives a negative balance.
	ErrNegativeBalance = errors.New("current balance cannot be negative")
)

// CashFlowErrorCode defines error codes for cash-flow errors.
type CashFlowErrorCode string

const (
	ErrCodeInvalidForecastHorizon   CashFlowErrorCode = "CSH-010001"
	ErrCodeNegativeIncome           CashFlowErrorCode = "CSH-010002"
	ErrCodeUnknownCashFlowScenario  CashFlowErrorCode = "CSH-010003"
	ErrCodeRecurringExpenseNotFound CashFlowErrorCode = "CSH-010004"
	ErrCodeNegativeBalance          CashFlowErrorCode = "CSH-010005"
)

// CashFlowError represents a cash-flow error with code and message.
type CashFlowError struct {
	Code    CashFlowErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CashFlowError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CashFlowError) Unwrap() error {
	return e.Err
}

// NewCashFlowError creates a new CashFlowError with the given code and message.
func NewCashFlowError(code CashFlowErrorCode, message string, err error) *CashFlowError {
	return &CashFlowError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
