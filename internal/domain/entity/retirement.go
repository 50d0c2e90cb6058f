package entity

// RetirementProfile is the input snapshot for a retirement projection.
type RetirementProfile struct {
	CurrentAge             int
	RetirementAge          int
	LifeExpectancy         int
	CurrentSavings         float64
	MonthlyContribution    float64
	EmployerMatch          float64 // monthly employer match amount
	ExpectedReturn         float64 // nominal annual return, e.g. 7 for 7%
	InflationRate          float64 // annual inflation, e.g. 3 for 3%
	CurrentMonthlyExpenses float64
	RetirementExpenseRatio float64 // fraction of current expenses needed in retirement
	SocialSecurityMonthly  float64
	PensionMonthly         float64
	OtherIncomeMonthly     float64
}

// RetirementPhase labels which side of the retirement date a projected year is on.
type RetirementPhase string

const (
	PhaseAccumulation RetirementPhase = "accumulation"
	PhaseDistribution RetirementPhase = "distribution"
)

// YearProjection is one year of the retirement balance simulation.
type YearProjection struct {
	Age     int
	Balance float64
	Phase   RetirementPhase
}

// RetirementPlan is the full output of a retirement projection.
type RetirementPlan struct {
	YearsToRetirement     int
	ProjectedAtRetirement float64
	AmountNeeded          float64
	Gap                   float64 // AmountNeeded - ProjectedAtRetirement; negative when ahead
	OnTrack               bool
	MonthlyFundingGap     float64 // unfunded monthly need at retirement
	RunsOutAt             *int    // first age the balance reaches zero, nil if it never does
	YearByYear            []YearProjection
	Insights              []string
}
