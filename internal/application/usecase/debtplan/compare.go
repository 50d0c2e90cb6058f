package debtplan

import (
	"context"

	"github.com/finance-advisor/backend/internal/domain/entity"
)

// CompareInput represents the input for a strategy comparison.
type CompareInput struct {
	Debts         []entity.Debt
	MonthlyBudget float64
}

// CompareOutput represents the output of a strategy comparison.
type CompareOutput struct {
	Results        []entity.StrategyComparison
	LowestInterest entity.PayoffStrategy
	FastestPayoff  entity.PayoffStrategy
	InterestSpread float64 // worst minus best total interest across strategies
	BestPlan       *entity.PayoffSchedule
}

// CompareStrategiesUseCase runs all three strategies over identical inputs.
type CompareStrategiesUseCase struct {
	simulate *SimulateUseCase
}

// NewCompareStrategiesUseCase creates a new CompareStrategiesUseCase instance.
func NewCompareStrategiesUseCase(simulate *SimulateUseCase) *CompareStrategiesUseCase {
	return &CompareStrategiesUseCase{simulate: simulate}
}

// Execute runs the comparison.
func (uc *CompareStrategiesUseCase) Execute(ctx context.Context, input CompareInput) (*CompareOutput, error) {
	strategies := []entity.PayoffStrategy{
		entity.StrategyAvalanche,
		entity.StrategySnowball,
		entity.StrategyHybrid,
	}

	output := &CompareOutput{}
	var bestInterest, worstInterest float64
	var fewestMonths int

	for i, strategy := range strategies {
		result, err := uc.simulate.Execute(ctx, SimulateInput{
			Debts:         input.Debts,
			MonthlyBudget: input.MonthlyBudget,
			Strategy:      strategy,
		})
		if err != nil {
			return nil, err
		}
		plan := result.Plan

		output.Results = append(output.Results, entity.StrategyComparison{
			Strategy:          strategy,
			TotalMonths:       plan.TotalMonths,
			TotalInterestPaid: plan.TotalInterestPaid,
		})

		if i == 0 || plan.TotalInterestPaid < bestInterest {
			bestInterest = plan.TotalInterestPaid
			output.LowestInterest = strategy
			output.BestPlan = plan
		}
		if plan.TotalInterestPaid > worstInterest {
			worstInterest = plan.TotalInterestPaid
		}
		if i == 0 || plan.TotalMonths < fewestMonths {
			fewestMonths = plan.TotalMonths
			output.FastestPayoff = strategy
		}
	}

	output.InterestSpread = worstInterest - bestInterest
	return output, nil
}
