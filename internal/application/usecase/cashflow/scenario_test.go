package cashflow

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/finance-advisor/backend/internal/domain/entity"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

// scenarioSnapshot has no transaction history, so recurring changes flow
// straight into the projection instead of being absorbed by the variable
// spending residual.
func scenarioSnapshot() entity.BudgetSnapshot {
	return entity.BudgetSnapshot{
		MonthlyIncome: 5000,
		RecurringExpenses: []entity.RecurringExpense{
			{Name: "Rent", Amount: 1800, Frequency: entity.FrequencyMonthly},
			{Name: "Gym", Amount: 60, Frequency: entity.FrequencyMonthly},
		},
	}
}

func newScenarioUseCase() *RunScenarioUseCase {
	return NewRunScenarioUseCase(NewForecastUseCase(testClock()))
}

func TestRunScenario_IncomeChange(t *testing.T) {
	uc := newScenarioUseCase()

	output, err := uc.Execute(context.Background(), RunScenarioInput{
		Snapshot:       scenarioSnapshot(),
		ForecastMonths: 6,
		Type:           ScenarioIncomeChange,
		Params:         ScenarioParams{NewMonthlyIncome: 5600},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(output.NetCashFlowDelta.Change-600) > 0.001 {
		t.Errorf("expected net cash flow change of 600, got %.2f", output.NetCashFlowDelta.Change)
	}
	if output.NetCashFlowDelta.After != output.NetCashFlowDelta.Before+output.NetCashFlowDelta.Change {
		t.Error("delta fields are inconsistent")
	}
}

func TestRunScenario_ExpenseReduction(t *testing.T) {
	uc := newScenarioUseCase()

	output, err := uc.Execute(context.Background(), RunScenarioInput{
		Snapshot:       scenarioSnapshot(),
		ForecastMonths: 6,
		Type:           ScenarioExpenseReduction,
		Params:         ScenarioParams{MonthlyAmount: 200},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(output.NetCashFlowDelta.Change-200) > 0.001 {
		t.Errorf("expected net cash flow to improve by 200, got %.2f", output.NetCashFlowDelta.Change)
	}
	if output.SavingsRateDelta.Change <= 0 {
		t.Errorf("expected savings rate to improve, got %.4f", output.SavingsRateDelta.Change)
	}
}

func TestRunScenario_AddExpense(t *testing.T) {
	uc := newScenarioUseCase()

	output, err := uc.Execute(context.Background(), RunScenarioInput{
		Snapshot:       scenarioSnapshot(),
		ForecastMonths: 6,
		Type:           ScenarioAddExpense,
		Params:         ScenarioParams{MonthlyAmount: 450},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(output.NetCashFlowDelta.Change+450) > 0.001 {
		t.Errorf("expected net cash flow to drop by 450, got %.2f", output.NetCashFlowDelta.Change)
	}
}

func TestRunScenario_RemoveRecurring(t *testing.T) {
	uc := newScenarioUseCase()

	t.Run("existing expense removed", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), RunScenarioInput{
			Snapshot:       scenarioSnapshot(),
			ForecastMonths: 6,
			Type:           ScenarioRemoveRecurring,
			Params:         ScenarioParams{RecurringName: "Gym"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(output.NetCashFlowDelta.Change-60) > 0.001 {
			t.Errorf("expected net cash flow to improve by 60, got %.2f", output.NetCashFlowDelta.Change)
		}
	})

	t.Run("unknown expense rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), RunScenarioInput{
			Snapshot:       scenarioSnapshot(),
			ForecastMonths: 6,
			Type:           ScenarioRemoveRecurring,
			Params:         ScenarioParams{RecurringName: "Yacht Club"},
		})
		if !errors.Is(err, domainerror.ErrRecurringExpenseNotFound) {
			t.Errorf("expected ErrRecurringExpenseNotFound, got %v", err)
		}
	})
}

func TestRunScenario_EmergencyHitsOneMonth(t *testing.T) {
	uc := newScenarioUseCase()

	output, err := uc.Execute(context.Background(), RunScenarioInput{
		Snapshot:       scenarioSnapshot(),
		ForecastMonths: 6,
		Type:           ScenarioEmergency,
		Params: ScenarioParams{
			EmergencyAmount: 3000,
			EmergencyDate:   time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hit := 0
	for i, f := range output.Adjusted.Forecasts {
		base := output.Baseline.Forecasts[i]
		diff := f.ProjectedExpenses - base.ProjectedExpenses
		if diff > 0.001 {
			hit++
			if f.Month != "2025-06" {
				t.Errorf("emergency landed in %s, expected 2025-06", f.Month)
			}
			if math.Abs(diff-3000) > 0.001 {
				t.Errorf("emergency amount %.2f, expected 3000", diff)
			}
		}
	}
	if hit != 1 {
		t.Errorf("emergency should affect exactly one month, affected %d", hit)
	}
}

func TestRunScenario_UnknownTypeRejected(t *testing.T) {
	uc := newScenarioUseCase()

	_, err := uc.Execute(context.Background(), RunScenarioInput{
		Snapshot:       scenarioSnapshot(),
		ForecastMonths: 6,
		Type:           CashFlowScenarioType("windfall"),
	})
	if !errors.Is(err, domainerror.ErrUnknownCashFlowScenario) {
		t.Errorf("expected ErrUnknownCashFlowScenario, got %v", err)
	}
}

func TestRunScenario_InputSnapshotNotMutated(t *testing.T) {
	uc := newScenarioUseCase()
	snapshot := scenarioSnapshot()

	_, err := uc.Execute(context.Background(), RunScenarioInput{
		Snapshot:       snapshot,
		ForecastMonths: 6,
		Type:           ScenarioAddExpense,
		Params:         ScenarioParams{MonthlyAmount: 450},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(snapshot.RecurringExpenses) != 2 {
		t.Errorf("caller's snapshot gained expenses: %+v", snapshot.RecurringExpenses)
	}
}
