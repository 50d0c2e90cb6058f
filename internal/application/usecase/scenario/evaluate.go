// Package scenario contains what-if scenario simulation use cases.
//
// Each scenario type is a self-contained calculation branch. The branches
// share the current-state input shape and the result shape, nothing else;
// their formulas are not algebraically equivalent and are kept separate.
package scenario

import (
	"context"

	"github.com/finance-advisor/backend/internal/domain/entity"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

// Params carries the union of per-branch scenario parameters. Each branch
// reads only its own fields.
type Params struct {
	// buy_house
	HousePrice      float64
	DownPaymentPct  float64
	MortgageRate    float64
	MortgageTermYrs int

	// change_job
	NewAnnualSalary float64
	OldMatchPct     float64
	NewMatchPct     float64

	// have_child
	SupportYears int

	// max_401k
	CurrentAnnual401k float64
	TaxBracket        float64 // marginal rate as a fraction, e.g. 0.24

	// market_crash
	CrashPct float64 // drop as a percentage, e.g. 30 for -30%

	// retire_early
	TargetRetirementAge int
}

// EvaluateInput represents the input for a scenario evaluation.
type EvaluateInput struct {
	Type   entity.ScenarioType
	Params Params
	State  entity.FinancialState
}

// EvaluateOutput represents the output of a scenario evaluation.
type EvaluateOutput struct {
	Result *entity.ScenarioResult
}

// EvaluateUseCase dispatches a what-if scenario to its calculation branch.
type EvaluateUseCase struct{}

// NewEvaluateUseCase creates a new EvaluateUseCase instance.
func NewEvaluateUseCase() *EvaluateUseCase {
	return &EvaluateUseCase{}
}

// Execute evaluates the scenario.
func (uc *EvaluateUseCase) Execute(ctx context.Context, input EvaluateInput) (*EvaluateOutput, error) {
	var (
		result *entity.ScenarioResult
		err    error
	)

	switch input.Type {
	case entity.ScenarioBuyHouse:
		result, err = evaluateBuyHouse(input.Params, input.State)
	case entity.ScenarioChangeJob:
		result, err = evaluateChangeJob(input.Params, input.State)
	case entity.ScenarioHaveChild:
		result, err = evaluateHaveChild(input.Params, input.State)
	case entity.ScenarioMax401k:
		result, err = evaluateMax401k(input.Params, input.State)
	case entity.ScenarioMarketCrash:
		result, err = evaluateMarketCrash(input.Params, input.State)
	case entity.ScenarioRetireEarly:
		result, err = evaluateRetireEarly(input.Params, input.State)
	default:
		return nil, domainerror.NewScenarioError(
			domainerror.ErrCodeUnknownScenarioType,
			"unknown scenario type '"+string(input.Type)+"'",
			domainerror.ErrUnknownScenarioType,
		)
	}
	if err != nil {
		return nil, err
	}

	result.Type = input.Type
	return &EvaluateOutput{Result: result}, nil
}

// pro and con build tradeoff entries; neutral notes pass nil.
func pro(text string) entity.Tradeoff {
	v := true
	return entity.Tradeoff{Pro: &v, Text: text}
}

func con(text string) entity.Tradeoff {
	v := false
	return entity.Tradeoff{Pro: &v, Text: text}
}

func note(text string) entity.Tradeoff {
	return entity.Tradeoff{Pro: nil, Text: text}
}

func missingParams(message string) error {
	return domainerror.NewScenarioError(
		domainerror.ErrCodeMissingScenarioParams,
		message,
		domainerror.ErrMissingScenarioParams,
	)
}

func invalidParams(message string) error {
	return domainerror.NewScenarioError(
		domainerror.ErrCodeInvalidScenarioParams,
		message,
		domainerror.ErrInvalidScenarioParams,
	)
}
