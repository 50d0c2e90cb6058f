// Package cashflow contains cash-flow forecasting use cases.
package cashflow

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/finance-advisor/backend/internal/application/adapter"
	"github.com/finance-advisor/backend/internal/domain/entity"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

const (
	// maxForecastMonths bounds the forecast horizon.
	maxForecastMonths = 60

	// historicalWindowMonths is how many recent calendar months feed the expense average.
	historicalWindowMonths = 3

	// Frequency normalization factors to a monthly equivalent.
	weeklyToMonthly   = 4.33
	biWeeklyToMonthly = 2.17

	// Status classification thresholds as fractions of monthly income.
	tightCushionRatio   = 0.1
	surplusCushionRatio = 0.3

	// Insight rule thresholds.
	savingsRateLow      = 0.10
	savingsRateStrong   = 0.20
	recurringHeavyRatio = 0.50
)

// ForecastInput represents the input for a cash-flow forecast.
type ForecastInput struct {
	Snapshot       entity.BudgetSnapshot
	ForecastMonths int
}

// ForecastSummary aggregates the forecast for quick display.
type ForecastSummary struct {
	AverageNetCashFlow float64
	AverageSavingsRate float64 // fraction of income, 0 when income is zero
	DeficitMonths      int
	FinalBalance       float64
}

// ForecastOutput represents the output of a cash-flow forecast.
type ForecastOutput struct {
	Forecasts []entity.ForecastMonth
	Summary   ForecastSummary
	Insights  []string
}

// ForecastUseCase projects income, expenses, and net balance for future months.
type ForecastUseCase struct {
	clock adapter.Clock
}

// NewForecastUseCase creates a new ForecastUseCase instance.
func NewForecastUseCase(clock adapter.Clock) *ForecastUseCase {
	return &ForecastUseCase{clock: clock}
}

// Execute performs the forecast.
func (uc *ForecastUseCase) Execute(ctx context.Context, input ForecastInput) (*ForecastOutput, error) {
	if input.ForecastMonths < 1 || input.ForecastMonths > maxForecastMonths {
		return nil, domainerror.NewCashFlowError(
			domainerror.ErrCodeInvalidForecastHorizon,
			fmt.Sprintf("forecast months must be between 1 and %d", maxForecastMonths),
			domainerror.ErrInvalidForecastHorizon,
		)
	}
	if input.Snapshot.MonthlyIncome < 0 {
		return nil, domainerror.NewCashFlowError(
			domainerror.ErrCodeNegativeIncome,
			"monthly income cannot be negative",
			domainerror.ErrNegativeIncome,
		)
	}

	snapshot := input.Snapshot
	historicalAvg := historicalMonthlyAverage(snapshot.Transactions)
	recurringTotal := monthlyRecurringTotal(snapshot.RecurringExpenses)

	// The variable residual is what history suggests gets spent beyond the
	// known recurring outflows. It never goes negative.
	variable := historicalAvg - recurringTotal
	if variable < 0 {
		variable = 0
	}

	start := monthStart(uc.clock.Now())
	forecasts := make([]entity.ForecastMonth, 0, input.ForecastMonths)
	balance := 0.0

	for i := 1; i <= input.ForecastMonths; i++ {
		monthTime := start.AddDate(0, i, 0)
		expenses := recurringTotal + variable + plannedExpensesIn(snapshot.PlannedExpenses, monthTime)
		net := snapshot.MonthlyIncome - expenses
		balance += net

		forecasts = append(forecasts, entity.ForecastMonth{
			Month:             monthTime.Format("2006-01"),
			ProjectedIncome:   snapshot.MonthlyIncome,
			ProjectedExpenses: expenses,
			NetCashFlow:       net,
			EndingBalance:     balance,
			Status:            classifyMonth(net, snapshot.MonthlyIncome),
		})
	}

	summary := summarize(forecasts, snapshot.MonthlyIncome)
	insights := generateInsights(forecasts, summary, snapshot.MonthlyIncome, recurringTotal)

	return &ForecastOutput{
		Forecasts: forecasts,
		Summary:   summary,
		Insights:  insights,
	}, nil
}

// historicalMonthlyAverage averages expense totals over the most recent
// calendar months present in the transaction history, up to the window size.
// Months with no transactions simply do not participate.
func historicalMonthlyAverage(transactions []entity.HistoricalTransaction) float64 {
	if len(transactions) == 0 {
		return 0
	}

	totals := make(map[string]float64)
	for _, tx := range transactions {
		if tx.Amount <= 0 {
			continue
		}
		totals[tx.Date.Format("2006-01")] += tx.Amount
	}
	if len(totals) == 0 {
		return 0
	}

	months := make([]string, 0, len(totals))
	for m := range totals {
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	window := historicalWindowMonths
	if len(months) < window {
		window = len(months)
	}

	sum := 0.0
	for _, m := range months[:window] {
		sum += totals[m]
	}
	return sum / float64(window)
}

// monthlyRecurringTotal normalizes all recurring expenses to a monthly equivalent.
func monthlyRecurringTotal(expenses []entity.RecurringExpense) float64 {
	total := 0.0
	for _, e := range expenses {
		switch e.Frequency {
		case entity.FrequencyWeekly:
			total += e.Amount * weeklyToMonthly
		case entity.FrequencyBiWeekly:
			total += e.Amount * biWeeklyToMonthly
		default:
			total += e.Amount
		}
	}
	return total
}

// plannedExpensesIn sums planned expenses whose date falls in the given calendar month.
func plannedExpensesIn(planned []entity.PlannedExpense, month time.Time) float64 {
	total := 0.0
	for _, p := range planned {
		if p.Date.Year() == month.Year() && p.Date.Month() == month.Month() {
			total += p.Amount
		}
	}
	return total
}

// classifyMonth derives the status label for a forecast month. A zero-income
// month with zero net is healthy rather than tight; the ratio thresholds are
// meaningless without income.
func classifyMonth(net, income float64) entity.CashFlowStatus {
	if net < 0 {
		return entity.StatusDeficit
	}
	if income == 0 {
		return entity.StatusHealthy
	}
	if net < income*tightCushionRatio {
		return entity.StatusTight
	}
	if net > income*surplusCushionRatio {
		return entity.StatusSurplus
	}
	return entity.StatusHealthy
}

// summarize reduces the forecast to its aggregate figures.
func summarize(forecasts []entity.ForecastMonth, income float64) ForecastSummary {
	summary := ForecastSummary{}
	if len(forecasts) == 0 {
		return summary
	}

	netSum := 0.0
	for _, f := range forecasts {
		netSum += f.NetCashFlow
		if f.Status == entity.StatusDeficit {
			summary.DeficitMonths++
		}
	}
	summary.AverageNetCashFlow = netSum / float64(len(forecasts))
	if income > 0 {
		summary.AverageSavingsRate = summary.AverageNetCashFlow / income
	}
	summary.FinalBalance = forecasts[len(forecasts)-1].EndingBalance
	return summary
}

// generateInsights evaluates the fixed insight rule set over the forecast.
// Rules are independent; every applicable insight is returned.
func generateInsights(forecasts []entity.ForecastMonth, summary ForecastSummary, income, recurringTotal float64) []string {
	var insights []string

	if summary.DeficitMonths > 0 {
		insights = append(insights, fmt.Sprintf(
			"%d of the next %d months project a deficit; plan cash reserves for those months.",
			summary.DeficitMonths, len(forecasts),
		))
	}

	surplusMonths := 0
	surplusTotal := 0.0
	for _, f := range forecasts {
		if f.Status == entity.StatusSurplus {
			surplusMonths++
			surplusTotal += f.NetCashFlow
		}
	}
	if surplusMonths > 0 {
		insights = append(insights, fmt.Sprintf(
			"%d surplus months free up about $%.0f; that could go to savings or extra debt payments.",
			surplusMonths, surplusTotal,
		))
	}

	if income > 0 {
		switch {
		case summary.AverageSavingsRate >= savingsRateStrong:
			insights = append(insights, fmt.Sprintf(
				"Your projected savings rate of %.0f%% is strong; consider directing the surplus to investments.",
				summary.AverageSavingsRate*100,
			))
		case summary.AverageSavingsRate < savingsRateLow && summary.AverageSavingsRate >= 0:
			insights = append(insights, fmt.Sprintf(
				"Your projected savings rate is %.0f%%, under the 10%% guideline; small expense cuts would compound here.",
				summary.AverageSavingsRate*100,
			))
		}

		if recurringTotal/income > recurringHeavyRatio {
			insights = append(insights, fmt.Sprintf(
				"Recurring expenses take %.0f%% of income; reviewing subscriptions and fixed bills has the most leverage.",
				recurringTotal/income*100,
			))
		}
	}

	return insights
}

// monthStart truncates a time to the first instant of its calendar month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
