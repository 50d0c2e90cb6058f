package scenario

import (
	"fmt"
	"math"

	"github.com/finance-advisor/backend/internal/domain/entity"
)

const (
	// Markets are modeled as recovering faster immediately after a crash,
	// then settling back to a baseline growth rate.
	recoveryAnnualReturn = 0.15
	baselineAnnualReturn = 0.08

	crashProjectionYears = 10
)

// recoveryYearsFor is the heuristic recovery window: roughly one year of
// accelerated growth per ten points of drawdown, at least two.
func recoveryYearsFor(crashPct float64) int {
	years := int(math.Ceil(crashPct / 10))
	if years < 2 {
		years = 2
	}
	return years
}

// evaluateMarketCrash applies a percentage haircut to the investment balance
// and projects the recovery path against a no-crash baseline.
func evaluateMarketCrash(params Params, state entity.FinancialState) (*entity.ScenarioResult, error) {
	if params.CrashPct <= 0 || params.CrashPct >= 100 {
		return nil, invalidParams("crash percent must be between 0 and 100")
	}

	immediateLoss := state.InvestmentBalance * params.CrashPct / 100
	crashed := state.InvestmentBalance - immediateLoss
	recoveryYears := recoveryYearsFor(params.CrashPct)

	timeline := make([]entity.TimelinePoint, 0, crashProjectionYears+1)
	timeline = append(timeline, entity.TimelinePoint{
		Year:  0,
		Label: "Immediately after crash",
		Value: crashed,
	})

	recovered := crashed
	baseline := state.InvestmentBalance
	yearsToRecover := 0
	for year := 1; year <= crashProjectionYears; year++ {
		rate := baselineAnnualReturn
		if year <= recoveryYears {
			rate = recoveryAnnualReturn
		}
		recovered = recovered*(1+rate) + state.MonthlyInvestment*12
		baseline = baseline*(1+baselineAnnualReturn) + state.MonthlyInvestment*12

		if yearsToRecover == 0 && recovered >= state.InvestmentBalance {
			yearsToRecover = year
		}

		timeline = append(timeline, entity.TimelinePoint{
			Year:  year,
			Label: fmt.Sprintf("Year %d after crash", year),
			Value: recovered,
		})
	}

	shortfallAt10 := baseline - recovered

	result := &entity.ScenarioResult{
		Title: fmt.Sprintf("A %.0f%% market crash", params.CrashPct),
		Summary: fmt.Sprintf(
			"A %.0f%% crash wipes $%.0f immediately; with continued contributions the portfolio recovers its value in about %d years.",
			params.CrashPct, immediateLoss, yearsToRecover,
		),
		Impact: map[string]float64{
			"immediate_loss":            immediateLoss,
			"balance_after_crash":       crashed,
			"recovery_years":            float64(recoveryYears),
			"shortfall_vs_no_crash_10y": shortfallAt10,
		},
		Timeline: timeline,
		Tradeoffs: []entity.Tradeoff{
			con(fmt.Sprintf("Paper loss of $%.0f on day one.", immediateLoss)),
			pro("Continued monthly contributions buy in at depressed prices during recovery."),
			note(fmt.Sprintf("Even after recovery, the portfolio trails the no-crash path by about $%.0f at year 10.", shortfallAt10)),
		},
	}

	if yearsToRecover == 0 {
		result.Recommendation = "The portfolio does not regain its pre-crash value within ten years; keep contributions steady and avoid selling at the bottom."
	} else {
		result.Recommendation = "Selling after the drop locks in the loss; staying invested recovers the value within the projection window."
	}

	return result, nil
}
