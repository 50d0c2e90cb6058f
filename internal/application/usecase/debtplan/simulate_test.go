package debtplan

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/finance-advisor/backend/internal/domain/entity"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

func sampleDebts() []entity.Debt {
	return []entity.Debt{
		{Name: "Visa", Balance: 5000, InterestRate: 22.0, MinimumPayment: 100},
		{Name: "Car Loan", Balance: 12000, InterestRate: 6.5, MinimumPayment: 250},
		{Name: "Store Card", Balance: 800, InterestRate: 26.0, MinimumPayment: 35},
	}
}

func TestSimulate_SingleCardGoldenPath(t *testing.T) {
	// One card at 24% APR (2% per month), $1000 balance, $100 per month.
	uc := NewSimulateUseCase()

	output, err := uc.Execute(context.Background(), SimulateInput{
		Debts: []entity.Debt{
			{Name: "Card", Balance: 1000, InterestRate: 24.0, MinimumPayment: 50},
		},
		MonthlyBudget: 100,
		Strategy:      entity.StrategyAvalanche,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	plan := output.Plan

	if plan.TotalMonths != 12 {
		t.Errorf("expected payoff in 12 months, got %d", plan.TotalMonths)
	}
	if math.Abs(plan.TotalInterestPaid-127.03) > 0.5 {
		t.Errorf("expected total interest near 127.03, got %.2f", plan.TotalInterestPaid)
	}
	if len(plan.PayoffOrder) != 1 || plan.PayoffOrder[0].DebtName != "Card" {
		t.Errorf("expected single payoff event for Card, got %+v", plan.PayoffOrder)
	}
	if plan.PayoffOrder[0].MonthPaidOff != 12 {
		t.Errorf("expected Card paid off at month 12, got %d", plan.PayoffOrder[0].MonthPaidOff)
	}
}

func TestSimulate_PaymentConservation(t *testing.T) {
	uc := NewSimulateUseCase()

	output, err := uc.Execute(context.Background(), SimulateInput{
		Debts:         sampleDebts(),
		MonthlyBudget: 600,
		Strategy:      entity.StrategyAvalanche,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	plan := output.Plan

	principal := 0.0
	for _, d := range sampleDebts() {
		principal += d.Balance
	}

	// Residuals under the payoff tolerance are forgiven, so allow a small
	// slack per debt on top of float drift.
	expected := principal + plan.TotalInterestPaid
	slack := 0.05 * float64(len(sampleDebts()))
	if math.Abs(plan.TotalPaid-expected) > slack+0.01 {
		t.Errorf("total paid %.2f does not reconcile with principal+interest %.2f", plan.TotalPaid, expected)
	}
}

func TestSimulate_AvalancheNeverBeatenBySnowball(t *testing.T) {
	uc := NewSimulateUseCase()
	ctx := context.Background()

	cases := []struct {
		name   string
		debts  []entity.Debt
		budget float64
	}{
		{"three mixed debts", sampleDebts(), 600},
		{"two debts close rates", []entity.Debt{
			{Name: "A", Balance: 3000, InterestRate: 15.0, MinimumPayment: 60},
			{Name: "B", Balance: 1500, InterestRate: 14.0, MinimumPayment: 30},
		}, 250},
		{"inverted balance and rate", []entity.Debt{
			{Name: "Big Cheap", Balance: 20000, InterestRate: 4.0, MinimumPayment: 300},
			{Name: "Small Dear", Balance: 900, InterestRate: 28.0, MinimumPayment: 40},
		}, 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			avalanche, err := uc.Execute(ctx, SimulateInput{Debts: tc.debts, MonthlyBudget: tc.budget, Strategy: entity.StrategyAvalanche})
			if err != nil {
				t.Fatalf("avalanche failed: %v", err)
			}
			snowball, err := uc.Execute(ctx, SimulateInput{Debts: tc.debts, MonthlyBudget: tc.budget, Strategy: entity.StrategySnowball})
			if err != nil {
				t.Fatalf("snowball failed: %v", err)
			}

			if avalanche.Plan.TotalInterestPaid > snowball.Plan.TotalInterestPaid+0.01 {
				t.Errorf("avalanche interest %.2f exceeds snowball interest %.2f",
					avalanche.Plan.TotalInterestPaid, snowball.Plan.TotalInterestPaid)
			}
		})
	}
}

func TestSimulate_ScheduleIsMonotonic(t *testing.T) {
	uc := NewSimulateUseCase()

	output, err := uc.Execute(context.Background(), SimulateInput{
		Debts:         sampleDebts(),
		MonthlyBudget: 500,
		Strategy:      entity.StrategyHybrid,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	schedule := output.Plan.Schedule

	if len(schedule) == 0 {
		t.Fatal("expected a non-empty schedule")
	}
	for i := 1; i < len(schedule); i++ {
		if schedule[i].Month <= schedule[i-1].Month {
			t.Errorf("schedule months not increasing at index %d: %d then %d",
				i, schedule[i-1].Month, schedule[i].Month)
		}
		if schedule[i].TotalRemainingBalance > schedule[i-1].TotalRemainingBalance+0.01 {
			t.Errorf("remaining balance increased at month %d: %.2f to %.2f",
				schedule[i].Month, schedule[i-1].TotalRemainingBalance, schedule[i].TotalRemainingBalance)
		}
		if schedule[i].CumulativeInterestPaid < schedule[i-1].CumulativeInterestPaid-0.01 {
			t.Errorf("cumulative interest decreased at month %d", schedule[i].Month)
		}
	}
	if last := schedule[len(schedule)-1]; last.Month != output.Plan.TotalMonths {
		t.Errorf("final snapshot month %d does not match total months %d", last.Month, output.Plan.TotalMonths)
	}
}

func TestSimulate_TerminatesOnPathologicalInput(t *testing.T) {
	// Minimum payment smaller than monthly interest. The balance grows
	// forever; the simulation must stop at the ceiling.
	uc := NewSimulateUseCase()

	output, err := uc.Execute(context.Background(), SimulateInput{
		Debts: []entity.Debt{
			{Name: "Runaway", Balance: 100000, InterestRate: 30.0, MinimumPayment: 100},
		},
		MonthlyBudget: 100,
		Strategy:      entity.StrategyAvalanche,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Plan.TotalMonths != maxSimulationMonths {
		t.Errorf("expected simulation to stop at %d months, got %d", maxSimulationMonths, output.Plan.TotalMonths)
	}
	if len(output.Plan.PayoffOrder) != 0 {
		t.Errorf("expected no payoff events, got %+v", output.Plan.PayoffOrder)
	}
}

func TestSimulate_InsufficientBudget(t *testing.T) {
	uc := NewSimulateUseCase()

	_, err := uc.Execute(context.Background(), SimulateInput{
		Debts:         sampleDebts(),
		MonthlyBudget: 200, // minimums total 385
		Strategy:      entity.StrategyAvalanche,
	})
	if err == nil {
		t.Fatal("expected an error for budget below minimums")
	}

	var insufficientErr *domainerror.InsufficientBudgetError
	if !errors.As(err, &insufficientErr) {
		t.Fatalf("expected InsufficientBudgetError, got %T: %v", err, err)
	}
	if insufficientErr.Budget != 200 {
		t.Errorf("expected budget 200 on error, got %.2f", insufficientErr.Budget)
	}
	if math.Abs(insufficientErr.MinimumRequired-385) > 0.001 {
		t.Errorf("expected minimum required 385, got %.2f", insufficientErr.MinimumRequired)
	}
	if !errors.Is(err, domainerror.ErrInsufficientBudget) {
		t.Error("expected error to unwrap to ErrInsufficientBudget")
	}
}

func TestSimulate_Validation(t *testing.T) {
	uc := NewSimulateUseCase()
	ctx := context.Background()

	cases := []struct {
		name     string
		input    SimulateInput
		sentinel error
	}{
		{
			name:     "no debts",
			input:    SimulateInput{MonthlyBudget: 100, Strategy: entity.StrategyAvalanche},
			sentinel: domainerror.ErrNoDebts,
		},
		{
			name: "negative balance",
			input: SimulateInput{
				Debts:         []entity.Debt{{Name: "Bad", Balance: -1, InterestRate: 10, MinimumPayment: 10}},
				MonthlyBudget: 100,
				Strategy:      entity.StrategyAvalanche,
			},
			sentinel: domainerror.ErrInvalidDebt,
		},
		{
			name: "zero budget",
			input: SimulateInput{
				Debts:    sampleDebts(),
				Strategy: entity.StrategyAvalanche,
			},
			sentinel: domainerror.ErrInvalidBudget,
		},
		{
			name: "unknown strategy",
			input: SimulateInput{
				Debts:         sampleDebts(),
				MonthlyBudget: 600,
				Strategy:      entity.PayoffStrategy("tsunami"),
			},
			sentinel: domainerror.ErrInvalidStrategy,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tc.input)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !errors.Is(err, tc.sentinel) {
				t.Errorf("expected error to wrap %v, got %v", tc.sentinel, err)
			}
		})
	}
}

func TestSimulate_ZeroRateDebt(t *testing.T) {
	uc := NewSimulateUseCase()

	output, err := uc.Execute(context.Background(), SimulateInput{
		Debts: []entity.Debt{
			{Name: "Family Loan", Balance: 1200, InterestRate: 0, MinimumPayment: 100},
		},
		MonthlyBudget: 100,
		Strategy:      entity.StrategySnowball,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Plan.TotalMonths != 12 {
		t.Errorf("expected 1200/100 = 12 months, got %d", output.Plan.TotalMonths)
	}
	if output.Plan.TotalInterestPaid != 0 {
		t.Errorf("expected zero interest, got %.2f", output.Plan.TotalInterestPaid)
	}
}

func TestSimulate_InputDebtsNotMutated(t *testing.T) {
	uc := NewSimulateUseCase()
	debts := sampleDebts()

	_, err := uc.Execute(context.Background(), SimulateInput{
		Debts:         debts,
		MonthlyBudget: 600,
		Strategy:      entity.StrategyAvalanche,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, d := range sampleDebts() {
		if debts[i] != d {
			t.Errorf("debt %d mutated: %+v", i, debts[i])
		}
	}
}

func TestHybridScore_OrdersByRateAndBalance(t *testing.T) {
	highRate := entity.Debt{Name: "High Rate", Balance: 8000, InterestRate: 29.0}
	smallBalance := entity.Debt{Name: "Small", Balance: 500, InterestRate: 5.0}
	bigCheap := entity.Debt{Name: "Big Cheap", Balance: 50000, InterestRate: 4.0}

	if hybridScore(smallBalance) <= hybridScore(bigCheap) {
		t.Error("expected a small balance to outrank a large cheap one")
	}
	if hybridScore(highRate) <= hybridScore(bigCheap) {
		t.Error("expected a high rate to outrank a large cheap balance")
	}
}
