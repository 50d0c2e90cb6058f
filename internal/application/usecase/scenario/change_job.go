package scenario

import (
	"fmt"

	"github.com/finance-advisor/backend/internal/domain/entity"
)

// Flat-rate tax approximation applied to the salary delta. The bracket is
// chosen by the new salary level; thresholds and rates are deliberate
// simplifications kept as part of the observable contract.
const (
	taxBracketMidThreshold  = 90000.0
	taxBracketHighThreshold = 150000.0

	taxRateLow  = 0.22
	taxRateMid  = 0.24
	taxRateHigh = 0.32
)

// evaluateChangeJob models a salary change net of the flat-bracket tax
// approximation and the employer 401(k) match delta.
func evaluateChangeJob(params Params, state entity.FinancialState) (*entity.ScenarioResult, error) {
	if params.NewAnnualSalary <= 0 {
		return nil, missingParams("change_job requires a positive new annual salary")
	}

	currentSalary := state.MonthlyIncome * 12
	salaryDelta := params.NewAnnualSalary - currentSalary

	rate := taxRateLow
	if params.NewAnnualSalary > taxBracketHighThreshold {
		rate = taxRateHigh
	} else if params.NewAnnualSalary > taxBracketMidThreshold {
		rate = taxRateMid
	}

	netAnnualDelta := salaryDelta * (1 - rate)
	netMonthlyDelta := netAnnualDelta / 12

	oldMatch := currentSalary * params.OldMatchPct / 100
	newMatch := params.NewAnnualSalary * params.NewMatchPct / 100
	matchDelta := newMatch - oldMatch

	timeline := make([]entity.TimelinePoint, 0, 5)
	cumulative := 0.0
	for year := 1; year <= 5; year++ {
		cumulative += netAnnualDelta + matchDelta
		timeline = append(timeline, entity.TimelinePoint{
			Year:  year,
			Label: fmt.Sprintf("Cumulative gain after year %d", year),
			Value: cumulative,
		})
	}

	result := &entity.ScenarioResult{
		Title: "Changing jobs",
		Summary: fmt.Sprintf(
			"Moving from $%.0f to $%.0f changes take-home pay by about $%.0f/month after a %.0f%% tax approximation.",
			currentSalary, params.NewAnnualSalary, netMonthlyDelta, rate*100,
		),
		Impact: map[string]float64{
			"salary_delta":       salaryDelta,
			"tax_rate_applied":   rate,
			"net_monthly_delta":  netMonthlyDelta,
			"match_delta_annual": matchDelta,
		},
		Timeline: timeline,
	}

	if salaryDelta >= 0 {
		result.Tradeoffs = append(result.Tradeoffs, pro(fmt.Sprintf("Take-home pay rises about $%.0f per month.", netMonthlyDelta)))
	} else {
		result.Tradeoffs = append(result.Tradeoffs, con(fmt.Sprintf("Take-home pay falls about $%.0f per month.", -netMonthlyDelta)))
	}
	if matchDelta > 0 {
		result.Tradeoffs = append(result.Tradeoffs, pro(fmt.Sprintf("Employer match improves by $%.0f per year.", matchDelta)))
	} else if matchDelta < 0 {
		result.Tradeoffs = append(result.Tradeoffs, con(fmt.Sprintf("Employer match shrinks by $%.0f per year.", -matchDelta)))
	}
	result.Tradeoffs = append(result.Tradeoffs, note("Tax figures use a flat-bracket approximation, not a full return."))

	if netAnnualDelta+matchDelta > 0 {
		result.Recommendation = "The move is a net financial gain once taxes and match are accounted for."
	} else {
		result.Recommendation = "After taxes and match, the move is a net loss; weigh the non-financial upside carefully."
	}

	return result, nil
}
