package debtplan

import (
	"context"
	"fmt"

	"github.com/finance-advisor/backend/internal/domain/entity"
)

// Insight rule thresholds.
const (
	highRateThreshold     = 20.0 // APR above which a debt is flagged as expensive
	minimumsDominateRatio = 0.9  // minimums consuming this share of budget leaves no room
	heavyInterestShare    = 0.25 // interest above this share of total paid is called out
	smallBalanceQuickWin  = 1000.0
)

// InsightsInput represents the input for debt insight generation.
type InsightsInput struct {
	Debts         []entity.Debt
	MonthlyBudget float64
	Strategy      entity.PayoffStrategy
}

// InsightsOutput represents the generated insights plus the plan they describe.
type InsightsOutput struct {
	Plan     *entity.PayoffSchedule
	Insights []string
}

// InsightsUseCase derives rule-based observations from a simulated payoff plan.
// Every rule is evaluated independently; all applicable insights are returned.
type InsightsUseCase struct {
	simulate *SimulateUseCase
}

// NewInsightsUseCase creates a new InsightsUseCase instance.
func NewInsightsUseCase(simulate *SimulateUseCase) *InsightsUseCase {
	return &InsightsUseCase{simulate: simulate}
}

// Execute simulates the plan and evaluates the insight rules against it.
func (uc *InsightsUseCase) Execute(ctx context.Context, input InsightsInput) (*InsightsOutput, error) {
	result, err := uc.simulate.Execute(ctx, SimulateInput{
		Debts:         input.Debts,
		MonthlyBudget: input.MonthlyBudget,
		Strategy:      input.Strategy,
	})
	if err != nil {
		return nil, err
	}
	plan := result.Plan

	var insights []string

	minimumTotal := 0.0
	for _, d := range input.Debts {
		minimumTotal += d.MinimumPayment
		if d.InterestRate >= highRateThreshold {
			insights = append(insights, fmt.Sprintf(
				"%s carries a %.1f%% rate; it should be a payoff priority to limit interest cost.",
				d.Name, d.InterestRate,
			))
		}
		if d.Balance > 0 && d.Balance <= smallBalanceQuickWin {
			insights = append(insights, fmt.Sprintf(
				"%s is under $%.0f; clearing it early frees its $%.2f minimum for other debts.",
				d.Name, smallBalanceQuickWin, d.MinimumPayment,
			))
		}
	}

	if input.MonthlyBudget > 0 && minimumTotal/input.MonthlyBudget >= minimumsDominateRatio {
		insights = append(insights, fmt.Sprintf(
			"Minimum payments consume %.0f%% of your budget; extra income would shorten the %d-month payoff considerably.",
			minimumTotal/input.MonthlyBudget*100, plan.TotalMonths,
		))
	}

	if plan.TotalPaid > 0 && plan.TotalInterestPaid/plan.TotalPaid >= heavyInterestShare {
		insights = append(insights, fmt.Sprintf(
			"Interest makes up %.0f%% of everything you will pay; a lower-rate consolidation could reduce that share.",
			plan.TotalInterestPaid/plan.TotalPaid*100,
		))
	}

	if len(plan.PayoffOrder) > 1 {
		first := plan.PayoffOrder[0]
		insights = append(insights, fmt.Sprintf(
			"%s is retired first at month %d; its freed minimum accelerates every debt after it.",
			first.DebtName, first.MonthPaidOff,
		))
	}

	return &InsightsOutput{Plan: plan, Insights: insights}, nil
}
