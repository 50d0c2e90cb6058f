// Package debtplan contains debt payoff planning use cases.
package debtplan

import (
	"context"
	"sort"

	"github.com/finance-advisor/backend/internal/domain/entity"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

const (
	// maxSimulationMonths bounds every payoff simulation. Pathological inputs
	// (minimums smaller than monthly interest) would otherwise never terminate.
	maxSimulationMonths = 360

	// paidOffTolerance is the residual balance below which a debt counts as retired.
	paidOffTolerance = 0.01

	// scheduleSampleInterval controls the snapshot cadence of the payoff schedule.
	scheduleSampleInterval = 6

	// Hybrid strategy scoring weights. The score rewards high rates and small
	// balances at a fixed ratio; the values are part of the observable contract.
	hybridRateWeight    = 10.0
	hybridBalanceWeight = 10000.0
)

// SimulateInput represents the input for a payoff simulation.
type SimulateInput struct {
	Debts         []entity.Debt
	MonthlyBudget float64
	Strategy      entity.PayoffStrategy
}

// SimulateOutput represents the output of a payoff simulation.
type SimulateOutput struct {
	Plan *entity.PayoffSchedule
}

// SimulateUseCase amortizes a set of debts month by month under an allocation strategy.
type SimulateUseCase struct{}

// NewSimulateUseCase creates a new SimulateUseCase instance.
func NewSimulateUseCase() *SimulateUseCase {
	return &SimulateUseCase{}
}

// Execute performs the payoff simulation.
func (uc *SimulateUseCase) Execute(ctx context.Context, input SimulateInput) (*SimulateOutput, error) {
	if err := validateSimulateInput(input); err != nil {
		return nil, err
	}

	minimumTotal := 0.0
	for _, d := range input.Debts {
		minimumTotal += d.MinimumPayment
	}
	if input.MonthlyBudget < minimumTotal {
		return nil, &domainerror.InsufficientBudgetError{
			Budget:          input.MonthlyBudget,
			MinimumRequired: minimumTotal,
		}
	}

	plan := runSimulation(input.Debts, input.MonthlyBudget, input.Strategy)
	return &SimulateOutput{Plan: plan}, nil
}

// simulatedDebt is the mutable per-run copy of a debt.
type simulatedDebt struct {
	entity.Debt
	remaining float64
	paidOff   bool
}

// runSimulation executes the monthly amortization loop. The caller's debt
// slice is never mutated; all state lives on local copies.
func runSimulation(debts []entity.Debt, monthlyBudget float64, strategy entity.PayoffStrategy) *entity.PayoffSchedule {
	working := make([]*simulatedDebt, 0, len(debts))
	minimumTotal := 0.0
	for _, d := range debts {
		working = append(working, &simulatedDebt{Debt: d, remaining: d.Balance})
		minimumTotal += d.MinimumPayment
	}
	prioritize(working, strategy)

	plan := &entity.PayoffSchedule{Strategy: strategy}
	extraBudget := monthlyBudget - minimumTotal
	freedMinimums := 0.0
	totalInterest := 0.0
	totalPaid := 0.0
	month := 0

	for month < maxSimulationMonths && !allPaidOff(working) {
		month++

		// Accrue monthly interest on every open balance. Accrued interest is
		// counted toward the interest total when it lands on the balance, so
		// totalPaid reconciles to principal plus interest at the end.
		for _, d := range working {
			if d.remaining <= 0 {
				continue
			}
			interest := d.remaining * (d.InterestRate / 100) / 12
			d.remaining += interest
			totalInterest += interest
		}

		// Apply minimum payments, capped at the remaining balance. A retired
		// debt's minimum joins the freed pool for the rest of the run.
		for _, d := range working {
			if d.remaining <= 0 {
				continue
			}
			payment := d.MinimumPayment
			if payment > d.remaining {
				payment = d.remaining
			}
			d.remaining -= payment
			totalPaid += payment
			if d.remaining <= paidOffTolerance {
				retireDebt(d, month, plan, &freedMinimums)
			}
		}

		// Pour the extra budget plus freed minimums into debts in priority order.
		pool := extraBudget + freedMinimums
		for _, d := range working {
			if pool <= 0 {
				break
			}
			if d.remaining <= 0 {
				continue
			}
			payment := pool
			if payment > d.remaining {
				payment = d.remaining
			}
			d.remaining -= payment
			pool -= payment
			totalPaid += payment
			if d.remaining <= paidOffTolerance {
				retireDebt(d, month, plan, &freedMinimums)
			}
		}

		if month == 1 || month%scheduleSampleInterval == 0 || allPaidOff(working) {
			plan.Schedule = append(plan.Schedule, entity.ScheduleSnapshot{
				Month:                  month,
				TotalRemainingBalance:  totalRemaining(working),
				CumulativeInterestPaid: totalInterest,
			})
		}
	}

	// The final month is always present even when the loop hit the ceiling
	// mid-interval.
	if n := len(plan.Schedule); n == 0 || plan.Schedule[n-1].Month != month {
		plan.Schedule = append(plan.Schedule, entity.ScheduleSnapshot{
			Month:                  month,
			TotalRemainingBalance:  totalRemaining(working),
			CumulativeInterestPaid: totalInterest,
		})
	}

	plan.TotalMonths = month
	plan.TotalInterestPaid = totalInterest
	plan.TotalPaid = totalPaid
	return plan
}

// retireDebt zeroes a paid-off debt, records the payoff event, and frees its minimum.
func retireDebt(d *simulatedDebt, month int, plan *entity.PayoffSchedule, freedMinimums *float64) {
	if d.paidOff {
		return
	}
	d.remaining = 0
	d.paidOff = true
	*freedMinimums += d.MinimumPayment
	plan.PayoffOrder = append(plan.PayoffOrder, entity.PayoffEvent{
		DebtName:     d.Name,
		MonthPaidOff: month,
	})
}

// prioritize orders the working set by the strategy's payment priority.
// Sorts are stable so ties keep the caller's original order.
func prioritize(working []*simulatedDebt, strategy entity.PayoffStrategy) {
	switch strategy {
	case entity.StrategyAvalanche:
		sort.SliceStable(working, func(i, j int) bool {
			return working[i].InterestRate > working[j].InterestRate
		})
	case entity.StrategySnowball:
		sort.SliceStable(working, func(i, j int) bool {
			return working[i].Balance < working[j].Balance
		})
	case entity.StrategyHybrid:
		sort.SliceStable(working, func(i, j int) bool {
			return hybridScore(working[i].Debt) > hybridScore(working[j].Debt)
		})
	}
}

// hybridScore blends rate urgency and quick-win potential into one priority.
func hybridScore(d entity.Debt) float64 {
	score := d.InterestRate / hybridRateWeight
	if d.Balance > 0 {
		score += hybridBalanceWeight / d.Balance
	}
	return score
}

func allPaidOff(working []*simulatedDebt) bool {
	for _, d := range working {
		if d.remaining > 0 {
			return false
		}
	}
	return true
}

func totalRemaining(working []*simulatedDebt) float64 {
	total := 0.0
	for _, d := range working {
		total += d.remaining
	}
	return total
}

// validateSimulateInput checks structural preconditions shared by the debt use cases.
func validateSimulateInput(input SimulateInput) error {
	if len(input.Debts) == 0 {
		return domainerror.NewDebtPlanError(
			domainerror.ErrCodeNoDebts,
			"at least one debt is required",
			domainerror.ErrNoDebts,
		)
	}
	for _, d := range input.Debts {
		if d.Balance < 0 || d.InterestRate < 0 || d.MinimumPayment < 0 {
			return domainerror.NewDebtPlanError(
				domainerror.ErrCodeInvalidDebt,
				"debt balance, rate, and minimum payment must be non-negative",
				domainerror.ErrInvalidDebt,
			)
		}
	}
	if input.MonthlyBudget <= 0 {
		return domainerror.NewDebtPlanError(
			domainerror.ErrCodeInvalidBudget,
			"monthly budget must be greater than zero",
			domainerror.ErrInvalidBudget,
		)
	}
	if !isValidStrategy(input.Strategy) {
		return domainerror.NewDebtPlanError(
			domainerror.ErrCodeInvalidStrategy,
			"strategy must be 'avalanche', 'snowball', or 'hybrid'",
			domainerror.ErrInvalidStrategy,
		)
	}
	return nil
}

// isValidStrategy validates the payoff strategy.
func isValidStrategy(strategy entity.PayoffStrategy) bool {
	return strategy == entity.StrategyAvalanche ||
		strategy == entity.StrategySnowball ||
		strategy == entity.StrategyHybrid
}
