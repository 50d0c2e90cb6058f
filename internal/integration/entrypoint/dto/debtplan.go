package dto

import (
	"github.com/finance-advisor/backend/internal/application/usecase/debtplan"
	"github.com/finance-advisor/backend/internal/domain/entity"
)

// Debt plan action discriminators.
const (
	DebtActionCalculate = "calculate"
	DebtActionCompare   = "compare"
	DebtActionInsights  = "insights"
)

// DebtRequest represents a single debt in a planning request.
type DebtRequest struct {
	Name           string  `json:"name" binding:"required"`
	Balance        float64 `json:"balance"`
	InterestRate   float64 `json:"interest_rate"`
	MinimumPayment float64 `json:"minimum_payment"`
}

// DebtPlanRequest represents the body of POST /planning/debts.
type DebtPlanRequest struct {
	Action        string        `json:"action" binding:"required"`
	Debts         []DebtRequest `json:"debts"`
	MonthlyBudget float64       `json:"monthly_budget"`
	Strategy      string        `json:"strategy"`
}

// ToDebtEntities converts request debts to domain entities.
func (r *DebtPlanRequest) ToDebtEntities() []entity.Debt {
	debts := make([]entity.Debt, 0, len(r.Debts))
	for _, d := range r.Debts {
		debts = append(debts, entity.Debt{
			Name:           d.Name,
			Balance:        d.Balance,
			InterestRate:   d.InterestRate,
			MinimumPayment: d.MinimumPayment,
		})
	}
	return debts
}

// ScheduleSnapshotResponse represents one sampled point of a payoff schedule.
type ScheduleSnapshotResponse struct {
	Month                  int     `json:"month"`
	TotalRemainingBalance  float64 `json:"total_remaining_balance"`
	CumulativeInterestPaid float64 `json:"cumulative_interest_paid"`
}

// PayoffEventResponse represents one debt's payoff month.
type PayoffEventResponse struct {
	DebtName     string `json:"debt_name"`
	MonthPaidOff int    `json:"month_paid_off"`
}

// PayoffPlanResponse represents a simulated payoff plan.
type PayoffPlanResponse struct {
	Strategy          string                     `json:"strategy"`
	TotalMonths       int                        `json:"total_months"`
	TotalPaid         float64                    `json:"total_paid"`
	TotalInterestPaid float64                    `json:"total_interest_paid"`
	Schedule          []ScheduleSnapshotResponse `json:"schedule"`
	PayoffOrder       []PayoffEventResponse      `json:"payoff_order"`
}

// ToPayoffPlanResponse converts a domain PayoffSchedule to its DTO.
func ToPayoffPlanResponse(plan *entity.PayoffSchedule) PayoffPlanResponse {
	response := PayoffPlanResponse{
		Strategy:          string(plan.Strategy),
		TotalMonths:       plan.TotalMonths,
		TotalPaid:         plan.TotalPaid,
		TotalInterestPaid: plan.TotalInterestPaid,
		Schedule:          make([]ScheduleSnapshotResponse, 0, len(plan.Schedule)),
		PayoffOrder:       make([]PayoffEventResponse, 0, len(plan.PayoffOrder)),
	}
	for _, s := range plan.Schedule {
		response.Schedule = append(response.Schedule, ScheduleSnapshotResponse{
			Month:                  s.Month,
			TotalRemainingBalance:  s.TotalRemainingBalance,
			CumulativeInterestPaid: s.CumulativeInterestPaid,
		})
	}
	for _, e := range plan.PayoffOrder {
		response.PayoffOrder = append(response.PayoffOrder, PayoffEventResponse{
			DebtName:     e.DebtName,
			MonthPaidOff: e.MonthPaidOff,
		})
	}
	return response
}

// StrategyComparisonResponse represents one strategy's comparison line.
type StrategyComparisonResponse struct {
	Strategy          string  `json:"strategy"`
	TotalMonths       int     `json:"total_months"`
	TotalInterestPaid float64 `json:"total_interest_paid"`
}

// CompareStrategiesResponse represents the strategy comparison result.
type CompareStrategiesResponse struct {
	Results        []StrategyComparisonResponse `json:"results"`
	LowestInterest string                       `json:"lowest_interest"`
	FastestPayoff  string                       `json:"fastest_payoff"`
	InterestSpread float64                      `json:"interest_spread"`
	BestPlan       PayoffPlanResponse           `json:"best_plan"`
}

// ToCompareStrategiesResponse converts a CompareOutput to its DTO.
func ToCompareStrategiesResponse(output *debtplan.CompareOutput) CompareStrategiesResponse {
	response := CompareStrategiesResponse{
		LowestInterest: string(output.LowestInterest),
		FastestPayoff:  string(output.FastestPayoff),
		InterestSpread: output.InterestSpread,
		BestPlan:       ToPayoffPlanResponse(output.BestPlan),
	}
	for _, r := range output.Results {
		response.Results = append(response.Results, StrategyComparisonResponse{
			Strategy:          string(r.Strategy),
			TotalMonths:       r.TotalMonths,
			TotalInterestPaid: r.TotalInterestPaid,
		})
	}
	return response
}

// DebtInsightsResponse represents the debt insight result.
type DebtInsightsResponse struct {
	Plan     PayoffPlanResponse `json:"plan"`
	Insights []string           `json:"insights"`
}

// ToDebtInsightsResponse converts an InsightsOutput to its DTO.
func ToDebtInsightsResponse(output *debtplan.InsightsOutput) DebtInsightsResponse {
	insights := output.Insights
	if insights == nil {
		insights = []string{}
	}
	return DebtInsightsResponse{
		Plan:     ToPayoffPlanResponse(output.Plan),
		Insights: insights,
	}
}
