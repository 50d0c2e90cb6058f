package cashflow

import (
	"context"
	"math"

	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

// RunwayInput represents the input for a cash runway calculation.
type RunwayInput struct {
	CurrentBalance     float64
	MonthlyIncome      float64
	AvgMonthlyExpenses float64
}

// RunwayOutput represents the output of a cash runway calculation.
type RunwayOutput struct {
	Unbounded   bool // income covers expenses, the balance never depletes
	Months      int  // whole months of runway; 0 when Unbounded
	MonthlyBurn float64
}

// RunwayUseCase computes how many months the current balance covers a deficit.
type RunwayUseCase struct{}

// NewRunwayUseCase creates a new RunwayUseCase instance.
func NewRunwayUseCase() *RunwayUseCase {
	return &RunwayUseCase{}
}

// Execute performs the runway calculation.
func (uc *RunwayUseCase) Execute(ctx context.Context, input RunwayInput) (*RunwayOutput, error) {
	if input.CurrentBalance < 0 {
		return nil, domainerror.NewCashFlowError(
			domainerror.ErrCodeNegativeBalance,
			"current balance cannot be negative",
			domainerror.ErrNegativeBalance,
		)
	}

	burn := input.AvgMonthlyExpenses - input.MonthlyIncome
	if burn <= 0 {
		return &RunwayOutput{Unbounded: true}, nil
	}

	return &RunwayOutput{
		Months:      int(math.Floor(input.CurrentBalance / burn)),
		MonthlyBurn: burn,
	}, nil
}
