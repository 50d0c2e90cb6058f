package dto

import (
	"github.com/finance-advisor/backend/internal/application/usecase/scenario"
	"github.com/finance-advisor/backend/internal/domain/entity"
)

// ScenarioBlockRequest carries the scenario object with its type discriminator.
type ScenarioBlockRequest struct {
	Type string `json:"type" binding:"required"`

	// buy_house
	HousePrice      float64 `json:"house_price"`
	DownPaymentPct  float64 `json:"down_payment_pct"`
	MortgageRate    float64 `json:"mortgage_rate"`
	MortgageTermYrs int     `json:"mortgage_term_years"`

	// change_job
	NewAnnualSalary float64 `json:"new_annual_salary"`
	OldMatchPct     float64 `json:"old_match_pct"`
	NewMatchPct     float64 `json:"new_match_pct"`

	// have_child
	SupportYears int `json:"support_years"`

	// max_401k
	CurrentAnnual401k float64 `json:"current_annual_401k"`
	TaxBracket        float64 `json:"tax_bracket"`

	// market_crash
	CrashPct float64 `json:"crash_pct"`

	// retire_early
	TargetRetirementAge int `json:"target_retirement_age"`
}

// CurrentStateRequest represents the shared current-state block.
type CurrentStateRequest struct {
	NetWorth          float64 `json:"net_worth"`
	MonthlyIncome     float64 `json:"monthly_income"`
	MonthlyExpenses   float64 `json:"monthly_expenses"`
	InvestmentBalance float64 `json:"investment_balance"`
	CashBalance       float64 `json:"cash_balance"`
	MonthlyInvestment float64 `json:"monthly_investment"`
	ExpectedReturn    float64 `json:"expected_return"`
	Age               int     `json:"age"`
}

// ScenarioRequest represents the body of POST /planning/scenarios.
type ScenarioRequest struct {
	Scenario     ScenarioBlockRequest `json:"scenario" binding:"required"`
	CurrentState CurrentStateRequest  `json:"current_state"`
}

// ToEvaluateInput converts the request to the scenario use case input.
func (r *ScenarioRequest) ToEvaluateInput() scenario.EvaluateInput {
	return scenario.EvaluateInput{
		Type: entity.ScenarioType(r.Scenario.Type),
		Params: scenario.Params{
			HousePrice:          r.Scenario.HousePrice,
			DownPaymentPct:      r.Scenario.DownPaymentPct,
			MortgageRate:        r.Scenario.MortgageRate,
			MortgageTermYrs:     r.Scenario.MortgageTermYrs,
			NewAnnualSalary:     r.Scenario.NewAnnualSalary,
			OldMatchPct:         r.Scenario.OldMatchPct,
			NewMatchPct:         r.Scenario.NewMatchPct,
			SupportYears:        r.Scenario.SupportYears,
			CurrentAnnual401k:   r.Scenario.CurrentAnnual401k,
			TaxBracket:          r.Scenario.TaxBracket,
			CrashPct:            r.Scenario.CrashPct,
			TargetRetirementAge: r.Scenario.TargetRetirementAge,
		},
		State: entity.FinancialState{
			NetWorth:          r.CurrentState.NetWorth,
			MonthlyIncome:     r.CurrentState.MonthlyIncome,
			MonthlyExpenses:   r.CurrentState.MonthlyExpenses,
			InvestmentBalance: r.CurrentState.InvestmentBalance,
			CashBalance:       r.CurrentState.CashBalance,
			MonthlyInvestment: r.CurrentState.MonthlyInvestment,
			ExpectedReturn:    r.CurrentState.ExpectedReturn,
			Age:               r.CurrentState.Age,
		},
	}
}

// TimelinePointResponse represents one sampled year of a scenario projection.
type TimelinePointResponse struct {
	Year  int     `json:"year"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// TradeoffResponse represents one pro/con line.
type TradeoffResponse struct {
	Pro  *bool  `json:"pro"`
	Text string `json:"text"`
}

// ScenarioResultResponse represents the scenario evaluation result.
type ScenarioResultResponse struct {
	Type           string                  `json:"type"`
	Title          string                  `json:"title"`
	Summary        string                  `json:"summary"`
	Impact         map[string]float64      `json:"impact"`
	Timeline       []TimelinePointResponse `json:"timeline"`
	Tradeoffs      []TradeoffResponse      `json:"tradeoffs"`
	Recommendation string                  `json:"recommendation"`
}

// ToScenarioResultResponse converts a domain ScenarioResult to its DTO.
func ToScenarioResultResponse(result *entity.ScenarioResult) ScenarioResultResponse {
	response := ScenarioResultResponse{
		Type:           string(result.Type),
		Title:          result.Title,
		Summary:        result.Summary,
		Impact:         result.Impact,
		Timeline:       make([]TimelinePointResponse, 0, len(result.Timeline)),
		Tradeoffs:      make([]TradeoffResponse, 0, len(result.Tradeoffs)),
		Recommendation: result.Recommendation,
	}
	for _, p := range result.Timeline {
		response.Timeline = append(response.Timeline, TimelinePointResponse{
			Year:  p.Year,
			Label: p.Label,
			Value: p.Value,
		})
	}
	for _, t := range result.Tradeoffs {
		response.Tradeoffs = append(response.Tradeoffs, TradeoffResponse{
			Pro:  t.Pro,
			Text: t.Text,
		})
	}
	return response
}
