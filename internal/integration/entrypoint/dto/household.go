package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/entity"
)

// ProfileTransactionRequest represents one stored transaction on the wire.
type ProfileTransactionRequest struct {
	ID          string  `json:"id"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// SaveProfileRequest represents the body of PUT /households/:id/profile.
type SaveProfileRequest struct {
	Name              string                      `json:"name" binding:"required"`
	MonthlyIncome     float64                     `json:"monthly_income"`
	CashBalance       float64                     `json:"cash_balance"`
	InvestmentBalance float64                     `json:"investment_balance"`
	Debts             []DebtRequest               `json:"debts"`
	RecurringExpenses []RecurringExpenseRequest   `json:"recurring_expenses"`
	PlannedExpenses   []PlannedExpenseRequest     `json:"planned_expenses"`
	Transactions      []ProfileTransactionRequest `json:"transactions"`
	FocusAreas        []string                    `json:"focus_areas"`
}

// ToEntity converts the request to a domain HouseholdProfile with the given ID.
func (r *SaveProfileRequest) ToEntity(id uuid.UUID) (*entity.HouseholdProfile, error) {
	profile := &entity.HouseholdProfile{
		ID:                id,
		Name:              r.Name,
		MonthlyIncome:     r.MonthlyIncome,
		CashBalance:       r.CashBalance,
		InvestmentBalance: r.InvestmentBalance,
		FocusAreas:        r.FocusAreas,
		CreatedAt:         time.Now().UTC(),
		UpdatedAt:         time.Now().UTC(),
	}

	for _, d := range r.Debts {
		profile.Debts = append(profile.Debts, entity.Debt{
			Name:           d.Name,
			Balance:        d.Balance,
			InterestRate:   d.InterestRate,
			MinimumPayment: d.MinimumPayment,
		})
	}
	for _, e := range r.RecurringExpenses {
		profile.RecurringExpenses = append(profile.RecurringExpenses, entity.RecurringExpense{
			Name:      e.Name,
			Amount:    e.Amount,
			Frequency: entity.ExpenseFrequency(e.Frequency),
		})
	}
	for _, p := range r.PlannedExpenses {
		date, err := time.Parse(dateLayout, p.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid planned expense date %q: %w", p.Date, err)
		}
		profile.PlannedExpenses = append(profile.PlannedExpenses, entity.PlannedExpense{
			Name:   p.Name,
			Date:   date,
			Amount: p.Amount,
		})
	}
	for _, tx := range r.Transactions {
		date, err := time.Parse(dateLayout, tx.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid transaction date %q: %w", tx.Date, err)
		}
		txID := uuid.New()
		if tx.ID != "" {
			parsed, err := uuid.Parse(tx.ID)
			if err != nil {
				return nil, fmt.Errorf("invalid transaction id %q: %w", tx.ID, err)
			}
			txID = parsed
		}
		profile.Transactions = append(profile.Transactions, entity.ProfileTransaction{
			ID:          txID,
			Date:        date,
			Description: tx.Description,
			Amount:      decimal.NewFromFloat(tx.Amount),
		})
	}

	return profile, nil
}

// ProfileTransactionResponse represents one stored transaction in responses.
type ProfileTransactionResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// DebtResponse represents one stored debt in responses.
type DebtResponse struct {
	Name           string  `json:"name"`
	Balance        float64 `json:"balance"`
	InterestRate   float64 `json:"interest_rate"`
	MinimumPayment float64 `json:"minimum_payment"`
}

// RecurringExpenseResponse represents one recurring expense in responses.
type RecurringExpenseResponse struct {
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Frequency string  `json:"frequency"`
}

// PlannedExpenseResponse represents one planned expense in responses.
type PlannedExpenseResponse struct {
	Name   string  `json:"name"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// HouseholdProfileResponse represents a household profile in responses.
type HouseholdProfileResponse struct {
	ID                string                       `json:"id"`
	Name              string                       `json:"name"`
	MonthlyIncome     float64                      `json:"monthly_income"`
	CashBalance       float64                      `json:"cash_balance"`
	InvestmentBalance float64                      `json:"investment_balance"`
	Debts             []DebtResponse               `json:"debts"`
	RecurringExpenses []RecurringExpenseResponse   `json:"recurring_expenses"`
	PlannedExpenses   []PlannedExpenseResponse     `json:"planned_expenses"`
	Transactions      []ProfileTransactionResponse `json:"transactions"`
	FocusAreas        []string                     `json:"focus_areas"`
	UpdatedAt         string                       `json:"updated_at"`
}

// ToHouseholdProfileResponse converts a domain HouseholdProfile to its DTO.
func ToHouseholdProfileResponse(profile *entity.HouseholdProfile) HouseholdProfileResponse {
	response := HouseholdProfileResponse{
		ID:                profile.ID.String(),
		Name:              profile.Name,
		MonthlyIncome:     profile.MonthlyIncome,
		CashBalance:       profile.CashBalance,
		InvestmentBalance: profile.InvestmentBalance,
		Debts:             make([]DebtResponse, 0, len(profile.Debts)),
		RecurringExpenses: make([]RecurringExpenseResponse, 0, len(profile.RecurringExpenses)),
		PlannedExpenses:   make([]PlannedExpenseResponse, 0, len(profile.PlannedExpenses)),
		Transactions:      make([]ProfileTransactionResponse, 0, len(profile.Transactions)),
		FocusAreas:        profile.FocusAreas,
		UpdatedAt:         profile.UpdatedAt.Format(time.RFC3339),
	}
	if response.FocusAreas == nil {
		response.FocusAreas = []string{}
	}

	for _, d := range profile.Debts {
		response.Debts = append(response.Debts, DebtResponse{
			Name:           d.Name,
			Balance:        d.Balance,
			InterestRate:   d.InterestRate,
			MinimumPayment: d.MinimumPayment,
		})
	}
	for _, e := range profile.RecurringExpenses {
		response.RecurringExpenses = append(response.RecurringExpenses, RecurringExpenseResponse{
			Name:      e.Name,
			Amount:    e.Amount,
			Frequency: string(e.Frequency),
		})
	}
	for _, p := range profile.PlannedExpenses {
		response.PlannedExpenses = append(response.PlannedExpenses, PlannedExpenseResponse{
			Name:   p.Name,
			Date:   p.Date.Format(dateLayout),
			Amount: p.Amount,
		})
	}
	for _, tx := range profile.Transactions {
		response.Transactions = append(response.Transactions, ProfileTransactionResponse{
			ID:          tx.ID.String(),
			Date:        tx.Date.Format(dateLayout),
			Description: tx.Description,
			Amount:      tx.Amount.InexactFloat64(),
		})
	}

	return response
}
