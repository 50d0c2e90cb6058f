package cashflow

import (
	"context"
	"time"

	"github.com/finance-advisor/backend/internal/domain/entity"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

// CashFlowScenarioType discriminates the what-if adjustments a forecast supports.
type CashFlowScenarioType string

const (
	ScenarioIncomeChange     CashFlowScenarioType = "income_change"
	ScenarioExpenseReduction CashFlowScenarioType = "expense_reduction"
	ScenarioAddExpense       CashFlowScenarioType = "add_expense"
	ScenarioRemoveRecurring  CashFlowScenarioType = "remove_recurring"
	ScenarioEmergency        CashFlowScenarioType = "emergency"
)

// ScenarioParams carries the per-type scenario knobs. Only the fields the
// chosen type reads are consulted.
type ScenarioParams struct {
	NewMonthlyIncome float64   // income_change
	MonthlyAmount    float64   // expense_reduction, add_expense
	RecurringName    string    // remove_recurring
	EmergencyAmount  float64   // emergency
	EmergencyDate    time.Time // emergency; zero value means next month
}

// RunScenarioInput represents the input for a forecast scenario.
type RunScenarioInput struct {
	Snapshot       entity.BudgetSnapshot
	ForecastMonths int
	Type           CashFlowScenarioType
	Params         ScenarioParams
}

// ScenarioDelta is the before/after change of a summary metric.
type ScenarioDelta struct {
	Before float64
	After  float64
	Change float64
}

// RunScenarioOutput represents the output of a forecast scenario.
type RunScenarioOutput struct {
	Baseline         *ForecastOutput
	Adjusted         *ForecastOutput
	NetCashFlowDelta ScenarioDelta
	SavingsRateDelta ScenarioDelta
}

// RunScenarioUseCase applies a hypothetical change to a cloned snapshot and
// re-runs the forecast against the same horizon.
type RunScenarioUseCase struct {
	forecast *ForecastUseCase
}

// NewRunScenarioUseCase creates a new RunScenarioUseCase instance.
func NewRunScenarioUseCase(forecast *ForecastUseCase) *RunScenarioUseCase {
	return &RunScenarioUseCase{forecast: forecast}
}

// Execute runs the baseline and adjusted forecasts and reports the deltas.
func (uc *RunScenarioUseCase) Execute(ctx context.Context, input RunScenarioInput) (*RunScenarioOutput, error) {
	baseline, err := uc.forecast.Execute(ctx, ForecastInput{
		Snapshot:       input.Snapshot,
		ForecastMonths: input.ForecastMonths,
	})
	if err != nil {
		return nil, err
	}

	adjusted, err := applyScenario(input.Snapshot, input.Type, input.Params, uc.forecast.clock.Now())
	if err != nil {
		return nil, err
	}

	after, err := uc.forecast.Execute(ctx, ForecastInput{
		Snapshot:       adjusted,
		ForecastMonths: input.ForecastMonths,
	})
	if err != nil {
		return nil, err
	}

	return &RunScenarioOutput{
		Baseline: baseline,
		Adjusted: after,
		NetCashFlowDelta: ScenarioDelta{
			Before: baseline.Summary.AverageNetCashFlow,
			After:  after.Summary.AverageNetCashFlow,
			Change: after.Summary.AverageNetCashFlow - baseline.Summary.AverageNetCashFlow,
		},
		SavingsRateDelta: ScenarioDelta{
			Before: baseline.Summary.AverageSavingsRate,
			After:  after.Summary.AverageSavingsRate,
			Change: after.Summary.AverageSavingsRate - baseline.Summary.AverageSavingsRate,
		},
	}, nil
}

// applyScenario clones the snapshot and applies the hypothetical change.
// The caller's snapshot is never mutated. Recurring-expense changes below the
// historical spending floor are absorbed by the variable residual, since the
// forecast always projects at least the historical monthly average.
func applyScenario(snapshot entity.BudgetSnapshot, scenarioType CashFlowScenarioType, params ScenarioParams, now time.Time) (entity.BudgetSnapshot, error) {
	clone := cloneSnapshot(snapshot)

	switch scenarioType {
	case ScenarioIncomeChange:
		clone.MonthlyIncome = params.NewMonthlyIncome

	case ScenarioExpenseReduction:
		clone.RecurringExpenses = append(clone.RecurringExpenses, entity.RecurringExpense{
			Name:      "expense reduction",
			Amount:    -params.MonthlyAmount,
			Frequency: entity.FrequencyMonthly,
		})

	case ScenarioAddExpense:
		clone.RecurringExpenses = append(clone.RecurringExpenses, entity.RecurringExpense{
			Name:      "new expense",
			Amount:    params.MonthlyAmount,
			Frequency: entity.FrequencyMonthly,
		})

	case ScenarioRemoveRecurring:
		removed := false
		kept := clone.RecurringExpenses[:0]
		for _, e := range clone.RecurringExpenses {
			if !removed && e.Name == params.RecurringName {
				removed = true
				continue
			}
			kept = append(kept, e)
		}
		if !removed {
			return entity.BudgetSnapshot{}, domainerror.NewCashFlowError(
				domainerror.ErrCodeRecurringExpenseNotFound,
				"recurring expense '"+params.RecurringName+"' not found",
				domainerror.ErrRecurringExpenseNotFound,
			)
		}
		clone.RecurringExpenses = kept

	case ScenarioEmergency:
		date := params.EmergencyDate
		if date.IsZero() {
			date = now.AddDate(0, 1, 0)
		}
		clone.PlannedExpenses = append(clone.PlannedExpenses, entity.PlannedExpense{
			Name:   "emergency",
			Date:   date,
			Amount: params.EmergencyAmount,
		})

	default:
		return entity.BudgetSnapshot{}, domainerror.NewCashFlowError(
			domainerror.ErrCodeUnknownCashFlowScenario,
			"unknown scenario type '"+string(scenarioType)+"'",
			domainerror.ErrUnknownCashFlowScenario,
		)
	}

	return clone, nil
}

// cloneSnapshot deep-copies a budget snapshot's slices.
func cloneSnapshot(s entity.BudgetSnapshot) entity.BudgetSnapshot {
	return entity.BudgetSnapshot{
		MonthlyIncome:     s.MonthlyIncome,
		RecurringExpenses: append([]entity.RecurringExpense(nil), s.RecurringExpenses...),
		Transactions:      append([]entity.HistoricalTransaction(nil), s.Transactions...),
		PlannedExpenses:   append([]entity.PlannedExpense(nil), s.PlannedExpenses...),
	}
}
