package entity

import "time"

// ExpenseFrequency classifies how often a recurring expense repeats.
type ExpenseFrequency string

const (
	FrequencyWeekly   ExpenseFrequency = "weekly"
	FrequencyBiWeekly ExpenseFrequency = "bi-weekly"
	FrequencyMonthly  ExpenseFrequency = "monthly"
)

// RecurringExpense is a known repeating outflow.
type RecurringExpense struct {
	Name      string
	Amount    float64
	Frequency ExpenseFrequency
}

// PlannedExpense is a one-off outflow scheduled for a specific date.
type PlannedExpense struct {
	Name   string
	Date   time.Time
	Amount float64
}

// HistoricalTransaction is a past transaction used for expense averaging.
type HistoricalTransaction struct {
	Date   time.Time
	Amount float64 // positive values are expenses
}

// BudgetSnapshot captures the monthly financial state a forecast starts from.
type BudgetSnapshot struct {
	MonthlyIncome     float64
	RecurringExpenses []RecurringExpense
	Transactions      []HistoricalTransaction
	PlannedExpenses   []PlannedExpense
}

// CashFlowStatus classifies a forecast month's net position.
type CashFlowStatus string

const (
	StatusDeficit CashFlowStatus = "deficit"
	StatusTight   CashFlowStatus = "tight"
	StatusHealthy CashFlowStatus = "healthy"
	StatusSurplus CashFlowStatus = "surplus"
)

// ForecastMonth is a single projected month of cash flow.
type ForecastMonth struct {
	Month             string // "2006-01" calendar month label
	ProjectedIncome   float64
	ProjectedExpenses float64
	NetCashFlow       float64
	EndingBalance     float64 // cumulative net cash flow, not an account balance
	Status            CashFlowStatus
}
