// Package model defines database models for persistence layer.
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/entity"
)

// DebtJSON represents a single debt inside the profile's JSONB debts column.
type DebtJSON struct {
	Name           string  `json:"name"`
	Balance        float64 `json:"balance"`
	InterestRate   float64 `json:"interest_rate"`
	MinimumPayment float64 `json:"minimum_payment"`
}

// DebtsJSON is the JSONB collection of a profile's debts.
type DebtsJSON []DebtJSON

// Value implements the driver.Valuer interface.
func (d DebtsJSON) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements the sql.Scanner interface.
func (d *DebtsJSON) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, d)
}

// RecurringExpenseJSON represents one recurring expense in the JSONB column.
type RecurringExpenseJSON struct {
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Frequency string  `json:"frequency"`
}

// RecurringExpensesJSON is the JSONB collection of recurring expenses.
type RecurringExpensesJSON []RecurringExpenseJSON

// Value implements the driver.Valuer interface.
func (r RecurringExpensesJSON) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// Scan implements the sql.Scanner interface.
func (r *RecurringExpensesJSON) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, r)
}

// PlannedExpenseJSON represents one planned expense in the JSONB column.
type PlannedExpenseJSON struct {
	Name   string    `json:"name"`
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

// PlannedExpensesJSON is the JSONB collection of planned expenses.
type PlannedExpensesJSON []PlannedExpenseJSON

// Value implements the driver.Valuer interface.
func (p PlannedExpensesJSON) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements the sql.Scanner interface.
func (p *PlannedExpensesJSON) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, p)
}

// ProfileTransactionJSON represents one stored transaction in the JSONB column.
type ProfileTransactionJSON struct {
	ID          uuid.UUID       `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// ProfileTransactionsJSON is the JSONB collection of profile transactions.
type ProfileTransactionsJSON []ProfileTransactionJSON

// Value implements the driver.Valuer interface.
func (t ProfileTransactionsJSON) Value() (driver.Value, error) {
	return json.Marshal(t)
}

// Scan implements the sql.Scanner interface.
func (t *ProfileTransactionsJSON) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, t)
}

// HouseholdProfileModel represents the household_profiles table in the database.
type HouseholdProfileModel struct {
	ID                uuid.UUID               `gorm:"type:uuid;primaryKey"`
	Name              string                  `gorm:"type:varchar(255);not null"`
	MonthlyIncome     float64                 `gorm:"type:decimal(15,2);not null;default:0"`
	CashBalance       float64                 `gorm:"type:decimal(15,2);not null;default:0"`
	InvestmentBalance float64                 `gorm:"type:decimal(15,2);not null;default:0"`
	Debts             DebtsJSON               `gorm:"type:jsonb"`
	RecurringExpenses RecurringExpensesJSON   `gorm:"type:jsonb"`
	PlannedExpenses   PlannedExpensesJSON     `gorm:"type:jsonb"`
	Transactions      ProfileTransactionsJSON `gorm:"type:jsonb"`
	FocusAreas        pq.StringArray          `gorm:"type:text[]"`
	CreatedAt         time.Time               `gorm:"not null"`
	UpdatedAt         time.Time               `gorm:"not null"`
}

// TableName returns the table name for the HouseholdProfileModel.
func (HouseholdProfileModel) TableName() string {
	return "household_profiles"
}

// ToEntity converts a HouseholdProfileModel to a domain HouseholdProfile entity.
func (m *HouseholdProfileModel) ToEntity() *entity.HouseholdProfile {
	profile := &entity.HouseholdProfile{
		ID:                m.ID,
		Name:              m.Name,
		MonthlyIncome:     m.MonthlyIncome,
		CashBalance:       m.CashBalance,
		InvestmentBalance: m.InvestmentBalance,
		FocusAreas:        append([]string(nil), m.FocusAreas...),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}

	for _, d := range m.Debts {
		profile.Debts = append(profile.Debts, entity.Debt{
			Name:           d.Name,
			Balance:        d.Balance,
			InterestRate:   d.InterestRate,
			MinimumPayment: d.MinimumPayment,
		})
	}
	for _, r := range m.RecurringExpenses {
		profile.RecurringExpenses = append(profile.RecurringExpenses, entity.RecurringExpense{
			Name:      r.Name,
			Amount:    r.Amount,
			Frequency: entity.ExpenseFrequency(r.Frequency),
		})
	}
	for _, p := range m.PlannedExpenses {
		profile.PlannedExpenses = append(profile.PlannedExpenses, entity.PlannedExpense{
			Name:   p.Name,
			Date:   p.Date,
			Amount: p.Amount,
		})
	}
	for _, tx := range m.Transactions {
		profile.Transactions = append(profile.Transactions, entity.ProfileTransaction{
			ID:          tx.ID,
			Date:        tx.Date,
			Description: tx.Description,
			Amount:      tx.Amount,
		})
	}

	return profile
}

// HouseholdProfileFromEntity creates a HouseholdProfileModel from a domain entity.
func HouseholdProfileFromEntity(profile *entity.HouseholdProfile) *HouseholdProfileModel {
	m := &HouseholdProfileModel{
		ID:                profile.ID,
		Name:              profile.Name,
		MonthlyIncome:     profile.MonthlyIncome,
		CashBalance:       profile.CashBalance,
		InvestmentBalance: profile.InvestmentBalance,
		FocusAreas:        pq.StringArray(profile.FocusAreas),
		CreatedAt:         profile.CreatedAt,
		UpdatedAt:         profile.UpdatedAt,
	}

	for _, d := range profile.Debts {
		m.Debts = append(m.Debts, DebtJSON{
			Name:           d.Name,
			Balance:        d.Balance,
			InterestRate:   d.InterestRate,
			MinimumPayment: d.MinimumPayment,
		})
	}
	for _, r := range profile.RecurringExpenses {
		m.RecurringExpenses = append(m.RecurringExpenses, RecurringExpenseJSON{
			Name:      r.Name,
			Amount:    r.Amount,
			Frequency: string(r.Frequency),
		})
	}
	for _, p := range profile.PlannedExpenses {
		m.PlannedExpenses = append(m.PlannedExpenses, PlannedExpenseJSON{
			Name:   p.Name,
			Date:   p.Date,
			Amount: p.Amount,
		})
	}
	for _, tx := range profile.Transactions {
		m.Transactions = append(m.Transactions, ProfileTransactionJSON{
			ID:          tx.ID,
			Date:        tx.Date,
			Description: tx.Description,
			Amount:      tx.Amount,
		})
	}

	return m
}
