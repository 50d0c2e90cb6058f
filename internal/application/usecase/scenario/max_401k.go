package scenario

import (
	"fmt"
	"math"

	"github.com/finance-advisor/backend/internal/domain/entity"
)

const (
	// irsAnnual401kLimit is the elective deferral limit used for the max-out comparison.
	irsAnnual401kLimit = 23000.0

	// defaultTaxBracket applies when the request does not specify one.
	defaultTaxBracket = 0.22
)

// fvHorizonYears are the projection horizons for the additional contributions.
var fvHorizonYears = []int{10, 20, 30}

// evaluateMax401k compares the current contribution against the IRS limit,
// the tax savings from the difference, and its future value over several horizons.
func evaluateMax401k(params Params, state entity.FinancialState) (*entity.ScenarioResult, error) {
	if params.CurrentAnnual401k < 0 || params.CurrentAnnual401k > irsAnnual401kLimit {
		return nil, invalidParams(fmt.Sprintf("current 401(k) contribution must be between 0 and %.0f", irsAnnual401kLimit))
	}
	bracket := params.TaxBracket
	if bracket == 0 {
		bracket = defaultTaxBracket
	}
	if bracket < 0 || bracket >= 1 {
		return nil, invalidParams("tax bracket must be a fraction between 0 and 1")
	}

	additionalAnnual := irsAnnual401kLimit - params.CurrentAnnual401k
	additionalMonthly := additionalAnnual / 12
	taxSavings := additionalAnnual * bracket

	monthlyReturn := state.ExpectedReturn / 100 / 12

	impact := map[string]float64{
		"additional_annual":  additionalAnnual,
		"additional_monthly": additionalMonthly,
		"annual_tax_savings": taxSavings,
	}

	timeline := make([]entity.TimelinePoint, 0, len(fvHorizonYears))
	for _, years := range fvHorizonYears {
		fv := annuityFutureValue(additionalMonthly, monthlyReturn, years*12)
		impact[fmt.Sprintf("future_value_%dy", years)] = fv
		timeline = append(timeline, entity.TimelinePoint{
			Year:  years,
			Label: fmt.Sprintf("Extra contributions after %d years", years),
			Value: fv,
		})
	}

	result := &entity.ScenarioResult{
		Title: "Maxing out your 401(k)",
		Summary: fmt.Sprintf(
			"Raising contributions by $%.0f/year saves $%.0f in taxes now and grows to $%.0f over 30 years.",
			additionalAnnual, taxSavings, impact["future_value_30y"],
		),
		Impact:   impact,
		Timeline: timeline,
		Tradeoffs: []entity.Tradeoff{
			pro(fmt.Sprintf("Immediate tax savings of $%.0f per year at your %.0f%% bracket.", taxSavings, bracket*100)),
			con(fmt.Sprintf("Take-home pay drops by about $%.0f per month.", additionalMonthly-taxSavings/12)),
			note("Contributions are locked until 59½ outside of hardship provisions."),
		},
	}

	if additionalAnnual == 0 {
		result.Recommendation = "You are already at the IRS limit; direct further savings to an IRA or brokerage account."
	} else {
		result.Recommendation = fmt.Sprintf(
			"Increasing deferrals by $%.0f/month is among the highest-leverage moves available at your bracket.",
			additionalMonthly,
		)
	}

	return result, nil
}

// annuityFutureValue is the closed-form FV of a level monthly contribution.
func annuityFutureValue(monthly, monthlyRate float64, months int) float64 {
	if monthlyRate == 0 {
		return monthly * float64(months)
	}
	return monthly * (math.Pow(1+monthlyRate, float64(months)) - 1) / monthlyRate
}
