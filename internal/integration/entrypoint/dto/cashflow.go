package dto

import (
	"fmt"
	"time"

	"github.com/finance-advisor/backend/internal/application/usecase/cashflow"
	"github.com/finance-advisor/backend/internal/domain/entity"
)

// Cash-flow action discriminators.
const (
	CashFlowActionForecast = "forecast"
	CashFlowActionScenario = "scenario"
	CashFlowActionRunway   = "runway"
)

// dateLayout is the wire format for all dates.
const dateLayout = "2006-01-02"

// RecurringExpenseRequest represents a recurring expense on the wire.
type RecurringExpenseRequest struct {
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Frequency string  `json:"frequency"`
}

// TransactionRequest represents a historical transaction on the wire.
type TransactionRequest struct {
	Date   string  `json:"date" binding:"required"`
	Amount float64 `json:"amount"`
}

// PlannedExpenseRequest represents a planned expense on the wire.
type PlannedExpenseRequest struct {
	Name   string  `json:"name"`
	Date   string  `json:"date" binding:"required"`
	Amount float64 `json:"amount"`
}

// CashFlowScenarioRequest carries the scenario block of a scenario action.
type CashFlowScenarioRequest struct {
	Type             string  `json:"type" binding:"required"`
	NewMonthlyIncome float64 `json:"new_monthly_income"`
	MonthlyAmount    float64 `json:"monthly_amount"`
	RecurringName    string  `json:"recurring_name"`
	EmergencyAmount  float64 `json:"emergency_amount"`
	EmergencyDate    string  `json:"emergency_date"`
}

// RunwayRequest carries the runway block of a runway action.
type RunwayRequest struct {
	CurrentBalance     float64 `json:"current_balance"`
	AvgMonthlyExpenses float64 `json:"avg_monthly_expenses"`
}

// CashFlowRequest represents the body of POST /planning/cashflow.
type CashFlowRequest struct {
	Action            string                    `json:"action" binding:"required"`
	MonthlyIncome     float64                   `json:"monthly_income"`
	RecurringExpenses []RecurringExpenseRequest `json:"recurring_expenses"`
	Transactions      []TransactionRequest      `json:"transactions"`
	PlannedExpenses   []PlannedExpenseRequest   `json:"planned_expenses"`
	ForecastMonths    int                       `json:"forecast_months"`
	Scenario          *CashFlowScenarioRequest  `json:"scenario"`
	Runway            *RunwayRequest            `json:"runway"`
}

// ToSnapshot converts the request to a domain budget snapshot.
func (r *CashFlowRequest) ToSnapshot() (entity.BudgetSnapshot, error) {
	snapshot := entity.BudgetSnapshot{
		MonthlyIncome: r.MonthlyIncome,
	}

	for _, e := range r.RecurringExpenses {
		snapshot.RecurringExpenses = append(snapshot.RecurringExpenses, entity.RecurringExpense{
			Name:      e.Name,
			Amount:    e.Amount,
			Frequency: entity.ExpenseFrequency(e.Frequency),
		})
	}
	for _, tx := range r.Transactions {
		date, err := time.Parse(dateLayout, tx.Date)
		if err != nil {
			return entity.BudgetSnapshot{}, fmt.Errorf("invalid transaction date %q: %w", tx.Date, err)
		}
		snapshot.Transactions = append(snapshot.Transactions, entity.HistoricalTransaction{
			Date:   date,
			Amount: tx.Amount,
		})
	}
	for _, p := range r.PlannedExpenses {
		date, err := time.Parse(dateLayout, p.Date)
		if err != nil {
			return entity.BudgetSnapshot{}, fmt.Errorf("invalid planned expense date %q: %w", p.Date, err)
		}
		snapshot.PlannedExpenses = append(snapshot.PlannedExpenses, entity.PlannedExpense{
			Name:   p.Name,
			Date:   date,
			Amount: p.Amount,
		})
	}

	return snapshot, nil
}

// ToScenarioParams converts the scenario block to use case params.
func (r *CashFlowScenarioRequest) ToScenarioParams() (cashflow.ScenarioParams, error) {
	params := cashflow.ScenarioParams{
		NewMonthlyIncome: r.NewMonthlyIncome,
		MonthlyAmount:    r.MonthlyAmount,
		RecurringName:    r.RecurringName,
		EmergencyAmount:  r.EmergencyAmount,
	}
	if r.EmergencyDate != "" {
		date, err := time.Parse(dateLayout, r.EmergencyDate)
		if err != nil {
			return cashflow.ScenarioParams{}, fmt.Errorf("invalid emergency date %q: %w", r.EmergencyDate, err)
		}
		params.EmergencyDate = date
	}
	return params, nil
}

// ForecastMonthResponse represents one projected month.
type ForecastMonthResponse struct {
	Month             string  `json:"month"`
	ProjectedIncome   float64 `json:"projected_income"`
	ProjectedExpenses float64 `json:"projected_expenses"`
	NetCashFlow       float64 `json:"net_cash_flow"`
	EndingBalance     float64 `json:"ending_balance"`
	Status            string  `json:"status"`
}

// ForecastSummaryResponse represents the forecast summary block.
type ForecastSummaryResponse struct {
	AverageNetCashFlow float64 `json:"average_net_cash_flow"`
	AverageSavingsRate float64 `json:"average_savings_rate"`
	DeficitMonths      int     `json:"deficit_months"`
	FinalBalance       float64 `json:"final_balance"`
}

// ForecastResponse represents the forecast result.
type ForecastResponse struct {
	Forecasts []ForecastMonthResponse `json:"forecasts"`
	Summary   ForecastSummaryResponse `json:"summary"`
	Insights  []string                `json:"insights"`
}

// ToForecastResponse converts a ForecastOutput to its DTO.
func ToForecastResponse(output *cashflow.ForecastOutput) ForecastResponse {
	response := ForecastResponse{
		Forecasts: make([]ForecastMonthResponse, 0, len(output.Forecasts)),
		Summary: ForecastSummaryResponse{
			AverageNetCashFlow: output.Summary.AverageNetCashFlow,
			AverageSavingsRate: output.Summary.AverageSavingsRate,
			DeficitMonths:      output.Summary.DeficitMonths,
			FinalBalance:       output.Summary.FinalBalance,
		},
		Insights: output.Insights,
	}
	if response.Insights == nil {
		response.Insights = []string{}
	}
	for _, f := range output.Forecasts {
		response.Forecasts = append(response.Forecasts, ForecastMonthResponse{
			Month:             f.Month,
			ProjectedIncome:   f.ProjectedIncome,
			ProjectedExpenses: f.ProjectedExpenses,
			NetCashFlow:       f.NetCashFlow,
			EndingBalance:     f.EndingBalance,
			Status:            string(f.Status),
		})
	}
	return response
}

// ScenarioDeltaResponse represents a before/after metric change.
type ScenarioDeltaResponse struct {
	Before float64 `json:"before"`
	After  float64 `json:"after"`
	Change float64 `json:"change"`
}

// CashFlowScenarioResponse represents the scenario comparison result.
type CashFlowScenarioResponse struct {
	Baseline         ForecastResponse      `json:"baseline"`
	Adjusted         ForecastResponse      `json:"adjusted"`
	NetCashFlowDelta ScenarioDeltaResponse `json:"net_cash_flow_delta"`
	SavingsRateDelta ScenarioDeltaResponse `json:"savings_rate_delta"`
}

// ToCashFlowScenarioResponse converts a RunScenarioOutput to its DTO.
func ToCashFlowScenarioResponse(output *cashflow.RunScenarioOutput) CashFlowScenarioResponse {
	return CashFlowScenarioResponse{
		Baseline: ToForecastResponse(output.Baseline),
		Adjusted: ToForecastResponse(output.Adjusted),
		NetCashFlowDelta: ScenarioDeltaResponse{
			Before: output.NetCashFlowDelta.Before,
			After:  output.NetCashFlowDelta.After,
			Change: output.NetCashFlowDelta.Change,
		},
		SavingsRateDelta: ScenarioDeltaResponse{
			Before: output.SavingsRateDelta.Before,
			After:  output.SavingsRateDelta.After,
			Change: output.SavingsRateDelta.Change,
		},
	}
}

// RunwayResponse represents the runway calculation result.
type RunwayResponse struct {
	Unbounded   bool    `json:"unbounded"`
	Months      int     `json:"months"`
	MonthlyBurn float64 `json:"monthly_burn"`
}

// ToRunwayResponse converts a RunwayOutput to its DTO.
func ToRunwayResponse(output *cashflow.RunwayOutput) RunwayResponse {
	return RunwayResponse{
		Unbounded:   output.Unbounded,
		Months:      output.Months,
		MonthlyBurn: output.MonthlyBurn,
	}
}
