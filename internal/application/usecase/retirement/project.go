// Package retirement contains retirement projection use cases.
package retirement

import (
	"context"
	"fmt"
	"math"

	"github.com/finance-advisor/backend/internal/domain/entity"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

const (
	// safeWithdrawalRate is the classic 4% rule used for the withdrawal-multiple target.
	safeWithdrawalRate = 0.04

	// postRetirementReturnHaircut lowers the nominal return assumption once
	// withdrawals begin, reflecting a more conservative allocation.
	postRetirementReturnHaircut = 2.0

	// defaultRetirementExpenseRatio applies when the profile leaves the ratio unset.
	defaultRetirementExpenseRatio = 0.8

	// contributionNudgeRatio triggers the low-savings insight when monthly
	// contributions fall under this share of monthly expenses.
	contributionNudgeRatio = 0.15

	maxAssumptionMagnitude = 50.0
)

// ProjectInput represents the input for a retirement projection.
type ProjectInput struct {
	Profile entity.RetirementProfile
}

// ProjectOutput represents the output of a retirement projection.
type ProjectOutput struct {
	Plan *entity.RetirementPlan
}

// ProjectUseCase computes required savings, accumulation, and a year-by-year
// drawdown simulation under a simplified real-return annuity model.
type ProjectUseCase struct{}

// NewProjectUseCase creates a new ProjectUseCase instance.
func NewProjectUseCase() *ProjectUseCase {
	return &ProjectUseCase{}
}

// Execute performs the projection.
func (uc *ProjectUseCase) Execute(ctx context.Context, input ProjectInput) (*ProjectOutput, error) {
	p := input.Profile
	if err := validateProfile(p); err != nil {
		return nil, err
	}
	if p.RetirementExpenseRatio <= 0 {
		p.RetirementExpenseRatio = defaultRetirementExpenseRatio
	}

	yearsToRetirement := p.RetirementAge - p.CurrentAge
	retirementYears := p.LifeExpectancy - p.RetirementAge

	// Real (inflation-adjusted) return, compounded monthly.
	realAnnual := (1+p.ExpectedReturn/100)/(1+p.InflationRate/100) - 1
	monthlyReal := realAnnual / 12

	// Accumulation is simulated month by month rather than with a closed form,
	// matching the sequential-compounding model of the planner.
	monthlyIn := p.MonthlyContribution + p.EmployerMatch
	projected := p.CurrentSavings
	for m := 0; m < yearsToRetirement*12; m++ {
		projected = projected*(1+monthlyReal) + monthlyIn
	}

	// Monthly funding gap at retirement: inflated expense need minus
	// guaranteed income sources.
	expensesAtRetirement := p.CurrentMonthlyExpenses * p.RetirementExpenseRatio *
		math.Pow(1+p.InflationRate/100, float64(yearsToRetirement))
	guaranteed := p.SocialSecurityMonthly + p.PensionMonthly + p.OtherIncomeMonthly
	monthlyGap := expensesAtRetirement - guaranteed
	if monthlyGap < 0 {
		monthlyGap = 0
	}

	// Required principal, the conservative way: take the larger of the 4%-rule
	// multiple and the present value of the gap annuity at the reduced
	// post-retirement return.
	withdrawalTarget := monthlyGap * 12 / safeWithdrawalRate

	postMonthly := (p.ExpectedReturn - postRetirementReturnHaircut) / 100 / 12
	annuityTarget := 0.0
	for m := 1; m <= retirementYears*12; m++ {
		annuityTarget += monthlyGap / math.Pow(1+postMonthly, float64(m))
	}

	amountNeeded := math.Max(withdrawalTarget, annuityTarget)

	plan := &entity.RetirementPlan{
		YearsToRetirement:     yearsToRetirement,
		ProjectedAtRetirement: projected,
		AmountNeeded:          amountNeeded,
		Gap:                   amountNeeded - projected,
		OnTrack:               projected >= amountNeeded,
		MonthlyFundingGap:     monthlyGap,
	}

	plan.YearByYear, plan.RunsOutAt = simulateYears(p, monthlyReal, postMonthly, monthlyIn, monthlyGap)
	plan.Insights = projectionInsights(p, plan)

	return &ProjectOutput{Plan: plan}, nil
}

// simulateYears runs the monthly balance simulation across both phases,
// sampling at each birthday. The balance is allowed to go negative so the
// caller can see the depth of a shortfall; the first age at or below zero is
// reported separately.
func simulateYears(p entity.RetirementProfile, monthlyReal, postMonthly, monthlyIn, monthlyGap float64) ([]entity.YearProjection, *int) {
	balance := p.CurrentSavings
	var runsOutAt *int
	years := make([]entity.YearProjection, 0, p.LifeExpectancy-p.CurrentAge)

	for age := p.CurrentAge + 1; age <= p.LifeExpectancy; age++ {
		phase := entity.PhaseAccumulation
		if age > p.RetirementAge {
			phase = entity.PhaseDistribution
		}

		for m := 0; m < 12; m++ {
			if phase == entity.PhaseAccumulation {
				balance = balance*(1+monthlyReal) + monthlyIn
			} else {
				balance = (balance - monthlyGap) * (1 + postMonthly)
			}
		}

		if balance <= 0 && runsOutAt == nil && phase == entity.PhaseDistribution {
			a := age
			runsOutAt = &a
		}

		years = append(years, entity.YearProjection{
			Age:     age,
			Balance: balance,
			Phase:   phase,
		})
	}

	return years, runsOutAt
}

// projectionInsights evaluates the independent insight rules over the plan.
func projectionInsights(p entity.RetirementProfile, plan *entity.RetirementPlan) []string {
	var insights []string

	if plan.OnTrack {
		insights = append(insights, fmt.Sprintf(
			"You are on track: projected savings of $%.0f exceed the $%.0f target by $%.0f.",
			plan.ProjectedAtRetirement, plan.AmountNeeded, -plan.Gap,
		))
	} else {
		insights = append(insights, fmt.Sprintf(
			"You are projected to fall $%.0f short of the $%.0f needed at retirement.",
			plan.Gap, plan.AmountNeeded,
		))
	}

	if plan.RunsOutAt != nil {
		insights = append(insights, fmt.Sprintf(
			"Savings run out at age %d, before your life expectancy of %d.",
			*plan.RunsOutAt, p.LifeExpectancy,
		))
	}

	if p.EmployerMatch == 0 && p.MonthlyContribution > 0 {
		insights = append(insights,
			"No employer match is recorded; if one is available it is the highest-return contribution you can make.",
		)
	}

	if p.CurrentMonthlyExpenses > 0 && p.MonthlyContribution < p.CurrentMonthlyExpenses*contributionNudgeRatio {
		insights = append(insights, fmt.Sprintf(
			"Monthly contributions are below %.0f%% of expenses; raising them even modestly moves the retirement date.",
			contributionNudgeRatio*100,
		))
	}

	return insights
}

// validateProfile checks the projection preconditions.
func validateProfile(p entity.RetirementProfile) error {
	if !(p.CurrentAge < p.RetirementAge && p.RetirementAge < p.LifeExpectancy) {
		return domainerror.NewRetirementError(
			domainerror.ErrCodeInvalidAges,
			"ages must satisfy current < retirement < life expectancy",
			domainerror.ErrInvalidAges,
		)
	}
	if p.CurrentSavings < 0 || p.MonthlyContribution < 0 || p.EmployerMatch < 0 {
		return domainerror.NewRetirementError(
			domainerror.ErrCodeNegativeSavings,
			"savings and contributions cannot be negative",
			domainerror.ErrNegativeSavings,
		)
	}
	if math.Abs(p.ExpectedReturn) > maxAssumptionMagnitude || math.Abs(p.InflationRate) > maxAssumptionMagnitude {
		return domainerror.NewRetirementError(
			domainerror.ErrCodeInvalidReturnAssumption,
			"return and inflation assumptions must be between -50 and 50 percent",
			domainerror.ErrInvalidReturnAssumption,
		)
	}
	return nil
}
