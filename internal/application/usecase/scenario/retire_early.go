package scenario

import (
	"fmt"
	"math"

	"github.com/finance-advisor/backend/internal/domain/entity"
)

const (
	// Corpus targets from the standard safe-withdrawal rules.
	fourPercentRule  = 0.04
	threePercentRule = 0.03
)

// evaluateRetireEarly checks the current trajectory against 4%-rule and
// 3%-rule corpus targets for the requested retirement age.
func evaluateRetireEarly(params Params, state entity.FinancialState) (*entity.ScenarioResult, error) {
	if params.TargetRetirementAge <= state.Age {
		return nil, invalidParams("target retirement age must be greater than current age")
	}

	yearsToTarget := params.TargetRetirementAge - state.Age
	annualExpenses := state.MonthlyExpenses * 12

	corpus4 := annualExpenses / fourPercentRule
	corpus3 := annualExpenses / threePercentRule

	monthlyReturn := state.ExpectedReturn / 100 / 12
	months := float64(yearsToTarget * 12)

	// Closed-form future value of the current balance plus level contributions.
	growth := math.Pow(1+monthlyReturn, months)
	var projected float64
	if monthlyReturn == 0 {
		projected = state.InvestmentBalance + state.MonthlyInvestment*months
	} else {
		projected = state.InvestmentBalance*growth +
			state.MonthlyInvestment*(growth-1)/monthlyReturn
	}

	shortfall4 := corpus4 - projected
	shortfall3 := corpus3 - projected

	// Sample the trajectory against a straight-line path to the 4%-rule target.
	timeline := make([]entity.TimelinePoint, 0, yearsToTarget)
	for year := 1; year <= yearsToTarget; year++ {
		m := float64(year * 12)
		g := math.Pow(1+monthlyReturn, m)
		var atYear float64
		if monthlyReturn == 0 {
			atYear = state.InvestmentBalance + state.MonthlyInvestment*m
		} else {
			atYear = state.InvestmentBalance*g + state.MonthlyInvestment*(g-1)/monthlyReturn
		}

		if year == 1 || year%2 == 0 || year == yearsToTarget {
			expected := corpus4 * float64(year) / float64(yearsToTarget)
			label := "on track"
			if atYear < expected {
				label = "behind"
			}
			timeline = append(timeline, entity.TimelinePoint{
				Year:  state.Age + year,
				Label: fmt.Sprintf("Age %d: %s", state.Age+year, label),
				Value: atYear,
			})
		}
	}

	result := &entity.ScenarioResult{
		Title: fmt.Sprintf("Retiring at %d", params.TargetRetirementAge),
		Summary: fmt.Sprintf(
			"By age %d you are projected to have $%.0f against a 4%%-rule target of $%.0f.",
			params.TargetRetirementAge, projected, corpus4,
		),
		Impact: map[string]float64{
			"projected_at_target": projected,
			"corpus_4pct_rule":    corpus4,
			"corpus_3pct_rule":    corpus3,
			"shortfall_4pct":      shortfall4,
			"shortfall_3pct":      shortfall3,
		},
		Timeline: timeline,
		Tradeoffs: []entity.Tradeoff{
			note("The 3% rule suits longer retirements; early retirees should weight it more heavily."),
		},
	}

	switch {
	case shortfall3 <= 0:
		result.Tradeoffs = append(result.Tradeoffs, pro("Trajectory clears even the conservative 3%-rule target."))
		result.Recommendation = fmt.Sprintf("Retiring at %d looks achievable under both withdrawal rules.", params.TargetRetirementAge)
	case shortfall4 <= 0:
		result.Tradeoffs = append(result.Tradeoffs, pro("Trajectory clears the 4%-rule target."))
		result.Tradeoffs = append(result.Tradeoffs, con(fmt.Sprintf("The conservative 3%%-rule target is $%.0f short.", shortfall3)))
		result.Recommendation = "You clear the 4% rule but not the 3% rule; a one-to-two year buffer would de-risk the plan."
	default:
		result.Tradeoffs = append(result.Tradeoffs, con(fmt.Sprintf("Projected savings fall $%.0f short of the 4%%-rule target.", shortfall4)))
		result.Recommendation = fmt.Sprintf(
			"Raising monthly investing above $%.0f or pushing the date out closes the gap fastest.",
			state.MonthlyInvestment,
		)
	}

	return result, nil
}
