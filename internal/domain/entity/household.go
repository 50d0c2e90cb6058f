package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProfileTransaction is a transaction stored on a household profile.
// Amounts are kept as decimals at rest; calculators receive plain floats.
type ProfileTransaction struct {
	ID          uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal // positive for expenses
}

// HouseholdProfile is the persisted financial snapshot for one household.
// It seeds calculator inputs but is never mutated by them.
type HouseholdProfile struct {
	ID                uuid.UUID
	Name              string
	MonthlyIncome     float64
	CashBalance       float64
	InvestmentBalance float64
	Debts             []Debt
	RecurringExpenses []RecurringExpense
	PlannedExpenses   []PlannedExpense
	Transactions      []ProfileTransaction
	FocusAreas        []string // planning areas the household cares about, e.g. "debt", "retirement"
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewHouseholdProfile creates a new HouseholdProfile entity.
func NewHouseholdProfile(name string, monthlyIncome float64) *HouseholdProfile {
	now := time.Now().UTC()

	return &HouseholdProfile{
		ID:            uuid.New(),
		Name:          name,
		MonthlyIncome: monthlyIncome,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// BudgetSnapshot derives the forecast input from the stored profile.
func (p *HouseholdProfile) BudgetSnapshot() BudgetSnapshot {
	transactions := make([]HistoricalTransaction, 0, len(p.Transactions))
	for _, tx := range p.Transactions {
		transactions = append(transactions, HistoricalTransaction{
			Date:   tx.Date,
			Amount: tx.Amount.InexactFloat64(),
		})
	}

	return BudgetSnapshot{
		MonthlyIncome:     p.MonthlyIncome,
		RecurringExpenses: append([]RecurringExpense(nil), p.RecurringExpenses...),
		Transactions:      transactions,
		PlannedExpenses:   append([]PlannedExpense(nil), p.PlannedExpenses...),
	}
}
