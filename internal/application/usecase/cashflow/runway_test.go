package cashflow

import (
	"context"
	"errors"
	"testing"

	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

func TestRunway_WholeMonthsOfBurn(t *testing.T) {
	uc := NewRunwayUseCase()

	output, err := uc.Execute(context.Background(), RunwayInput{
		CurrentBalance:     12000,
		MonthlyIncome:      2000,
		AvgMonthlyExpenses: 3000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Unbounded {
		t.Fatal("expected a bounded runway")
	}
	if output.Months != 12 {
		t.Errorf("expected 12000/1000 = 12 months, got %d", output.Months)
	}
	if output.MonthlyBurn != 1000 {
		t.Errorf("expected burn of 1000, got %.2f", output.MonthlyBurn)
	}
}

func TestRunway_PartialMonthRoundsDown(t *testing.T) {
	uc := NewRunwayUseCase()

	output, err := uc.Execute(context.Background(), RunwayInput{
		CurrentBalance:     10000,
		MonthlyIncome:      0,
		AvgMonthlyExpenses: 3000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Months != 3 {
		t.Errorf("expected floor(10000/3000) = 3 months, got %d", output.Months)
	}
}

func TestRunway_IncomeCoversExpenses(t *testing.T) {
	uc := NewRunwayUseCase()

	output, err := uc.Execute(context.Background(), RunwayInput{
		CurrentBalance:     5000,
		MonthlyIncome:      4000,
		AvgMonthlyExpenses: 3500,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Unbounded {
		t.Error("expected an unbounded runway when income covers expenses")
	}
	if output.Months != 0 {
		t.Errorf("expected months 0 when unbounded, got %d", output.Months)
	}
}

func TestRunway_NegativeBalanceRejected(t *testing.T) {
	uc := NewRunwayUseCase()

	_, err := uc.Execute(context.Background(), RunwayInput{
		CurrentBalance:     -100,
		AvgMonthlyExpenses: 1000,
	})
	if !errors.Is(err, domainerror.ErrNegativeBalance) {
		t.Errorf("expected ErrNegativeBalance, got %v", err)
	}
}
