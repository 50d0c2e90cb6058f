package scenario

import (
	"fmt"
	"math"

	"github.com/finance-advisor/backend/internal/domain/entity"
)

const (
	// closingCostRate approximates closing costs as a share of the purchase price.
	closingCostRate = 0.03

	// propertyTaxRate and homeInsuranceAnnual feed the monthly carrying cost.
	propertyTaxRate     = 0.011
	homeInsuranceAnnual = 1800.0

	// lowLiquidityFloor flags a purchase that drains cash below this level.
	lowLiquidityFloor = 10000.0

	defaultMortgageTermYears = 30
)

// evaluateBuyHouse models a home purchase: mortgage payment, carrying costs,
// and post-purchase liquidity.
func evaluateBuyHouse(params Params, state entity.FinancialState) (*entity.ScenarioResult, error) {
	if params.HousePrice <= 0 {
		return nil, missingParams("buy_house requires a positive house price")
	}
	if params.DownPaymentPct < 0 || params.DownPaymentPct > 100 {
		return nil, invalidParams("down payment percent must be between 0 and 100")
	}

	termYears := params.MortgageTermYrs
	if termYears <= 0 {
		termYears = defaultMortgageTermYears
	}

	downPayment := params.HousePrice * params.DownPaymentPct / 100
	closingCosts := params.HousePrice * closingCostRate
	principal := params.HousePrice - downPayment

	// Standard amortizing-mortgage payment: P*r(1+r)^n / ((1+r)^n - 1).
	monthlyRate := params.MortgageRate / 100 / 12
	n := float64(termYears * 12)
	var mortgagePayment float64
	if monthlyRate == 0 {
		mortgagePayment = principal / n
	} else {
		growth := math.Pow(1+monthlyRate, n)
		mortgagePayment = principal * monthlyRate * growth / (growth - 1)
	}

	monthlyHousing := mortgagePayment +
		params.HousePrice*propertyTaxRate/12 +
		homeInsuranceAnnual/12

	liquidityAfter := state.CashBalance - downPayment - closingCosts
	newMonthlyExpenses := state.MonthlyExpenses + monthlyHousing
	newNet := state.MonthlyIncome - newMonthlyExpenses

	timeline := make([]entity.TimelinePoint, 0, termYears/5+1)
	remaining := principal
	for year := 1; year <= termYears; year++ {
		for m := 0; m < 12; m++ {
			remaining = remaining*(1+monthlyRate) - mortgagePayment
		}
		if remaining < 0 {
			remaining = 0
		}
		if year == 1 || year%5 == 0 || year == termYears {
			timeline = append(timeline, entity.TimelinePoint{
				Year:  year,
				Label: fmt.Sprintf("Year %d mortgage balance", year),
				Value: remaining,
			})
		}
	}

	result := &entity.ScenarioResult{
		Title: "Buying a home",
		Summary: fmt.Sprintf(
			"A $%.0f home with %.0f%% down costs about $%.0f/month all-in and leaves $%.0f in cash.",
			params.HousePrice, params.DownPaymentPct, monthlyHousing, liquidityAfter,
		),
		Impact: map[string]float64{
			"monthly_payment":   mortgagePayment,
			"monthly_housing":   monthlyHousing,
			"down_payment":      downPayment,
			"closing_costs":     closingCosts,
			"liquidity_after":   liquidityAfter,
			"new_net_cash_flow": newNet,
		},
		Timeline: timeline,
		Tradeoffs: []entity.Tradeoff{
			pro("Fixed housing cost builds equity instead of paying rent."),
			con(fmt.Sprintf("Monthly expenses rise by $%.0f.", monthlyHousing)),
			note(fmt.Sprintf("Closing costs add roughly $%.0f on top of the down payment.", closingCosts)),
		},
	}

	if liquidityAfter < lowLiquidityFloor {
		result.Tradeoffs = append(result.Tradeoffs, con(fmt.Sprintf(
			"Post-purchase liquidity of $%.0f is under the $%.0f cushion.", liquidityAfter, lowLiquidityFloor,
		)))
		result.Recommendation = "Liquidity after purchase would be thin; consider a smaller down payment or building cash first."
	} else if newNet < 0 {
		result.Recommendation = "The all-in payment pushes monthly cash flow negative; a lower price range would be safer."
	} else {
		result.Recommendation = "The purchase fits your cash flow with a reasonable liquidity cushion."
	}

	return result, nil
}
