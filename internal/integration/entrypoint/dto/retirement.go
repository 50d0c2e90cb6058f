package dto

import (
	"github.com/finance-advisor/backend/internal/application/usecase/retirement"
	"github.com/finance-advisor/backend/internal/domain/entity"
)

// Retirement action discriminators.
const (
	RetirementActionCalculate  = "calculate"
	RetirementActionEstimateSS = "estimate_ss"
)

// RetirementRequest represents the body of POST /planning/retirement.
type RetirementRequest struct {
	Action string `json:"action" binding:"required"`

	// calculate
	CurrentAge             int     `json:"current_age"`
	RetirementAge          int     `json:"retirement_age"`
	LifeExpectancy         int     `json:"life_expectancy"`
	CurrentSavings         float64 `json:"current_savings"`
	MonthlyContribution    float64 `json:"monthly_contribution"`
	EmployerMatch          float64 `json:"employer_match"`
	ExpectedReturn         float64 `json:"expected_return"`
	InflationRate          float64 `json:"inflation_rate"`
	CurrentMonthlyExpenses float64 `json:"current_monthly_expenses"`
	RetirementExpenseRatio float64 `json:"retirement_expense_ratio"`
	SocialSecurityMonthly  float64 `json:"social_security_monthly"`
	PensionMonthly         float64 `json:"pension_monthly"`
	OtherIncomeMonthly     float64 `json:"other_income_monthly"`

	// estimate_ss
	AnnualIncome float64 `json:"annual_income"`
	ClaimAge     int     `json:"claim_age"`
}

// ToProfile converts the request to a domain retirement profile.
func (r *RetirementRequest) ToProfile() entity.RetirementProfile {
	return entity.RetirementProfile{
		CurrentAge:             r.CurrentAge,
		RetirementAge:          r.RetirementAge,
		LifeExpectancy:         r.LifeExpectancy,
		CurrentSavings:         r.CurrentSavings,
		MonthlyContribution:    r.MonthlyContribution,
		EmployerMatch:          r.EmployerMatch,
		ExpectedReturn:         r.ExpectedReturn,
		InflationRate:          r.InflationRate,
		CurrentMonthlyExpenses: r.CurrentMonthlyExpenses,
		RetirementExpenseRatio: r.RetirementExpenseRatio,
		SocialSecurityMonthly:  r.SocialSecurityMonthly,
		PensionMonthly:         r.PensionMonthly,
		OtherIncomeMonthly:     r.OtherIncomeMonthly,
	}
}

// YearProjectionResponse represents one simulated year.
type YearProjectionResponse struct {
	Age     int     `json:"age"`
	Balance float64 `json:"balance"`
	Phase   string  `json:"phase"`
}

// RetirementPlanResponse represents the retirement projection result.
type RetirementPlanResponse struct {
	YearsToRetirement     int                      `json:"years_to_retirement"`
	ProjectedAtRetirement float64                  `json:"projected_at_retirement"`
	AmountNeeded          float64                  `json:"amount_needed"`
	Gap                   float64                  `json:"gap"`
	OnTrack               bool                     `json:"on_track"`
	MonthlyFundingGap     float64                  `json:"monthly_funding_gap"`
	RunsOutAt             *int                     `json:"runs_out_at"`
	YearByYear            []YearProjectionResponse `json:"year_by_year"`
	Insights              []string                 `json:"insights"`
}

// ToRetirementPlanResponse converts a domain RetirementPlan to its DTO.
func ToRetirementPlanResponse(plan *entity.RetirementPlan) RetirementPlanResponse {
	response := RetirementPlanResponse{
		YearsToRetirement:     plan.YearsToRetirement,
		ProjectedAtRetirement: plan.ProjectedAtRetirement,
		AmountNeeded:          plan.AmountNeeded,
		Gap:                   plan.Gap,
		OnTrack:               plan.OnTrack,
		MonthlyFundingGap:     plan.MonthlyFundingGap,
		RunsOutAt:             plan.RunsOutAt,
		YearByYear:            make([]YearProjectionResponse, 0, len(plan.YearByYear)),
		Insights:              plan.Insights,
	}
	if response.Insights == nil {
		response.Insights = []string{}
	}
	for _, y := range plan.YearByYear {
		response.YearByYear = append(response.YearByYear, YearProjectionResponse{
			Age:     y.Age,
			Balance: y.Balance,
			Phase:   string(y.Phase),
		})
	}
	return response
}

// BenefitEstimateResponse represents the Social Security estimate result.
type BenefitEstimateResponse struct {
	MonthlyBenefit  float64 `json:"monthly_benefit"`
	ReplacementRate float64 `json:"replacement_rate"`
	ClaimAgeFactor  float64 `json:"claim_age_factor"`
}

// ToBenefitEstimateResponse converts an EstimateBenefitOutput to its DTO.
func ToBenefitEstimateResponse(output *retirement.EstimateBenefitOutput) BenefitEstimateResponse {
	return BenefitEstimateResponse{
		MonthlyBenefit:  output.MonthlyBenefit,
		ReplacementRate: output.ReplacementRate,
		ClaimAgeFactor:  output.ClaimAgeFactor,
	}
}
