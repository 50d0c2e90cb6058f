package scenario

import (
	"fmt"
	"math"

	"github.com/finance-advisor/backend/internal/domain/entity"
)

const (
	// firstYearChildCost covers one-time setup plus first-year essentials.
	firstYearChildCost = 15000.0

	// Ongoing monthly costs after the first year.
	monthlyChildcareCost  = 1250.0
	monthlyChildOtherCost = 600.0

	// 529-style education fund assumptions.
	collegeFundMonthly      = 250.0
	collegeFundAnnualReturn = 0.06
	collegeFundYears        = 18

	defaultSupportYears = 18
)

// evaluateHaveChild models the cost of a child: a fixed first year, ongoing
// childcare and other costs for the support window, and a parallel
// college-fund growth projection.
func evaluateHaveChild(params Params, state entity.FinancialState) (*entity.ScenarioResult, error) {
	years := params.SupportYears
	if years <= 0 {
		years = defaultSupportYears
	}
	if years > 30 {
		return nil, invalidParams("support years must be 30 or fewer")
	}

	monthlyCost := monthlyChildcareCost + monthlyChildOtherCost
	ongoingTotal := monthlyCost * 12 * float64(years-1)
	totalCost := firstYearChildCost + ongoingTotal

	newNet := state.MonthlyIncome - state.MonthlyExpenses - monthlyCost

	// College fund grows as a level monthly annuity.
	monthlyReturn := collegeFundAnnualReturn / 12
	fundMonths := float64(collegeFundYears * 12)
	collegeFund := collegeFundMonthly * (math.Pow(1+monthlyReturn, fundMonths) - 1) / monthlyReturn

	timeline := make([]entity.TimelinePoint, 0, years)
	cumulative := firstYearChildCost
	fund := 0.0
	for year := 1; year <= years; year++ {
		if year > 1 {
			cumulative += monthlyCost * 12
		}
		if year <= collegeFundYears {
			for m := 0; m < 12; m++ {
				fund = fund*(1+monthlyReturn) + collegeFundMonthly
			}
		}
		if year == 1 || year%3 == 0 || year == years {
			timeline = append(timeline, entity.TimelinePoint{
				Year:  year,
				Label: fmt.Sprintf("Cumulative cost through year %d", year),
				Value: cumulative,
			})
		}
	}

	return &entity.ScenarioResult{
		Title: "Having a child",
		Summary: fmt.Sprintf(
			"Expect about $%.0f in the first year and $%.0f/month after, roughly $%.0f over %d years.",
			firstYearChildCost, monthlyCost, totalCost, years,
		),
		Impact: map[string]float64{
			"first_year_cost":    firstYearChildCost,
			"monthly_cost":       monthlyCost,
			"total_cost":         totalCost,
			"new_net_cash_flow":  newNet,
			"college_fund_at_18": collegeFund,
			"college_fund_total": fund,
		},
		Timeline: timeline,
		Tradeoffs: []entity.Tradeoff{
			con(fmt.Sprintf("Monthly expenses rise by about $%.0f.", monthlyCost)),
			pro(fmt.Sprintf("A $%.0f/month college fund grows to about $%.0f by year %d.", collegeFundMonthly, collegeFund, collegeFundYears)),
			note("Childcare costs vary widely by region; these are national-average figures."),
		},
		Recommendation: childRecommendation(newNet),
	}, nil
}

func childRecommendation(newNet float64) string {
	if newNet < 0 {
		return "Projected cash flow goes negative with child costs; build margin before or plan expense cuts."
	}
	return "Your cash flow absorbs the added costs; starting the college fund early does most of the work."
}
