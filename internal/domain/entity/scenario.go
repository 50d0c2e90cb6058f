package entity

// ScenarioType discriminates the what-if calculation branches.
type ScenarioType string

const (
	ScenarioBuyHouse    ScenarioType = "buy_house"
	ScenarioChangeJob   ScenarioType = "change_job"
	ScenarioHaveChild   ScenarioType = "have_child"
	ScenarioMax401k     ScenarioType = "max_401k"
	ScenarioMarketCrash ScenarioType = "market_crash"
	ScenarioRetireEarly ScenarioType = "retire_early"
)

// FinancialState is the shared current-state input every scenario branch reads.
type FinancialState struct {
	NetWorth          float64
	MonthlyIncome     float64
	MonthlyExpenses   float64
	InvestmentBalance float64
	CashBalance       float64
	MonthlyInvestment float64
	ExpectedReturn    float64 // annual percentage
	Age               int
}

// TimelinePoint is one sampled year of a scenario projection.
type TimelinePoint struct {
	Year  int
	Label string
	Value float64
}

// Tradeoff is a single pro/con line for a scenario. Pro is nil for neutral notes.
type Tradeoff struct {
	Pro  *bool
	Text string
}

// ScenarioResult is the uniform output shape of every scenario branch.
type ScenarioResult struct {
	Type           ScenarioType
	Title          string
	Summary        string
	Impact         map[string]float64
	Timeline       []TimelinePoint
	Tradeoffs      []Tradeoff
	Recommendation string
}
