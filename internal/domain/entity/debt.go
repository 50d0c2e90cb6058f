// Package entity defines the core business entities for the domain layer.
package entity

// PayoffStrategy represents the allocation strategy for extra debt payments.
type PayoffStrategy string

const (
	StrategyAvalanche PayoffStrategy = "avalanche"
	StrategySnowball  PayoffStrategy = "snowball"
	StrategyHybrid    PayoffStrategy = "hybrid"
)

// Debt represents a single outstanding debt being simulated.
type Debt struct {
	Name           string
	Balance        float64 // current outstanding balance
	InterestRate   float64 // annual percentage rate, e.g. 24 for 24%
	MinimumPayment float64 // required monthly minimum
}

// ScheduleSnapshot is a sampled point of a payoff simulation.
type ScheduleSnapshot struct {
	Month                  int
	TotalRemainingBalance  float64
	CumulativeInterestPaid float64
}

// PayoffEvent records the month a single debt was fully retired.
type PayoffEvent struct {
	DebtName     string
	MonthPaidOff int
}

// PayoffSchedule is the result of a single debt payoff simulation run.
type PayoffSchedule struct {
	Strategy          PayoffStrategy
	TotalMonths       int
	TotalPaid         float64
	TotalInterestPaid float64
	Schedule          []ScheduleSnapshot
	PayoffOrder       []PayoffEvent
}

// StrategyComparison summarizes one strategy's outcome for side-by-side comparison.
type StrategyComparison struct {
	Strategy          PayoffStrategy
	TotalMonths       int
	TotalInterestPaid float64
}
