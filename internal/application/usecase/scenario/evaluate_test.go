package scenario

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/finance-advisor/backend/internal/domain/entity"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

func sampleState() entity.FinancialState {
	return entity.FinancialState{
		NetWorth:          250000,
		MonthlyIncome:     8000,
		MonthlyExpenses:   5000,
		InvestmentBalance: 150000,
		CashBalance:       60000,
		MonthlyInvestment: 1000,
		ExpectedReturn:    7.0,
		Age:               40,
	}
}

// sampleParamsFor returns minimal valid params for each scenario type.
func sampleParamsFor(scenarioType entity.ScenarioType) Params {
	switch scenarioType {
	case entity.ScenarioBuyHouse:
		return Params{HousePrice: 450000, DownPaymentPct: 20, MortgageRate: 6.5}
	case entity.ScenarioChangeJob:
		return Params{NewAnnualSalary: 110000, OldMatchPct: 3, NewMatchPct: 4}
	case entity.ScenarioHaveChild:
		return Params{SupportYears: 18}
	case entity.ScenarioMax401k:
		return Params{CurrentAnnual401k: 10000, TaxBracket: 0.24}
	case entity.ScenarioMarketCrash:
		return Params{CrashPct: 30}
	case entity.ScenarioRetireEarly:
		return Params{TargetRetirementAge: 55}
	}
	return Params{}
}

func TestEvaluate_AllTypesProduceCompleteResults(t *testing.T) {
	uc := NewEvaluateUseCase()
	ctx := context.Background()

	types := []entity.ScenarioType{
		entity.ScenarioBuyHouse,
		entity.ScenarioChangeJob,
		entity.ScenarioHaveChild,
		entity.ScenarioMax401k,
		entity.ScenarioMarketCrash,
		entity.ScenarioRetireEarly,
	}

	for _, scenarioType := range types {
		t.Run(string(scenarioType), func(t *testing.T) {
			output, err := uc.Execute(ctx, EvaluateInput{
				Type:   scenarioType,
				Params: sampleParamsFor(scenarioType),
				State:  sampleState(),
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			result := output.Result

			if result.Type != scenarioType {
				t.Errorf("result type %s, expected %s", result.Type, scenarioType)
			}
			if result.Title == "" {
				t.Error("expected a non-empty title")
			}
			if result.Summary == "" {
				t.Error("expected a non-empty summary")
			}
			if len(result.Impact) == 0 {
				t.Error("expected impact figures")
			}
			if len(result.Timeline) == 0 {
				t.Error("expected a timeline")
			}
			if len(result.Tradeoffs) == 0 {
				t.Error("expected tradeoffs")
			}
			if result.Recommendation == "" {
				t.Error("expected a recommendation")
			}
		})
	}
}

func TestEvaluate_UnknownType(t *testing.T) {
	uc := NewEvaluateUseCase()

	_, err := uc.Execute(context.Background(), EvaluateInput{
		Type:  entity.ScenarioType("win_lottery"),
		State: sampleState(),
	})
	if !errors.Is(err, domainerror.ErrUnknownScenarioType) {
		t.Errorf("expected ErrUnknownScenarioType, got %v", err)
	}
}

func TestEvaluate_BuyHouse(t *testing.T) {
	uc := NewEvaluateUseCase()
	ctx := context.Background()

	t.Run("figures reconcile", func(t *testing.T) {
		output, err := uc.Execute(ctx, EvaluateInput{
			Type:   entity.ScenarioBuyHouse,
			Params: Params{HousePrice: 400000, DownPaymentPct: 20, MortgageRate: 6.0, MortgageTermYrs: 30},
			State:  sampleState(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		impact := output.Result.Impact

		if impact["down_payment"] != 80000 {
			t.Errorf("down payment %.2f, expected 80000", impact["down_payment"])
		}
		if impact["closing_costs"] != 12000 {
			t.Errorf("closing costs %.2f, expected 3%% of price", impact["closing_costs"])
		}
		// 320000 at 0.5%/mo over 360 months is about 1918.56.
		if diff := impact["monthly_payment"] - 1918.56; diff < -1 || diff > 1 {
			t.Errorf("mortgage payment %.2f, expected about 1918.56", impact["monthly_payment"])
		}
		// 60000 cash - 80000 down - 12000 closing = -32000.
		if impact["liquidity_after"] != -32000 {
			t.Errorf("liquidity after %.2f, expected -32000", impact["liquidity_after"])
		}
	})

	t.Run("thin liquidity flagged", func(t *testing.T) {
		output, err := uc.Execute(ctx, EvaluateInput{
			Type:   entity.ScenarioBuyHouse,
			Params: Params{HousePrice: 400000, DownPaymentPct: 20, MortgageRate: 6.0},
			State:  sampleState(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		flagged := false
		for _, tr := range output.Result.Tradeoffs {
			if tr.Pro != nil && !*tr.Pro && strings.Contains(tr.Text, "liquidity") {
				flagged = true
			}
		}
		if !flagged {
			t.Error("expected a con about post-purchase liquidity")
		}
	})

	t.Run("mortgage balance amortizes to zero", func(t *testing.T) {
		output, err := uc.Execute(ctx, EvaluateInput{
			Type:   entity.ScenarioBuyHouse,
			Params: Params{HousePrice: 300000, DownPaymentPct: 50, MortgageRate: 5.0, MortgageTermYrs: 15},
			State:  sampleState(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		timeline := output.Result.Timeline
		final := timeline[len(timeline)-1]
		if final.Year != 15 {
			t.Errorf("final timeline year %d, expected 15", final.Year)
		}
		if final.Value > 1 {
			t.Errorf("mortgage balance at term end %.2f, expected about 0", final.Value)
		}
	})

	t.Run("missing price rejected", func(t *testing.T) {
		_, err := uc.Execute(ctx, EvaluateInput{
			Type:  entity.ScenarioBuyHouse,
			State: sampleState(),
		})
		if !errors.Is(err, domainerror.ErrMissingScenarioParams) {
			t.Errorf("expected ErrMissingScenarioParams, got %v", err)
		}
	})
}

func TestEvaluate_ChangeJob(t *testing.T) {
	uc := NewEvaluateUseCase()
	ctx := context.Background()

	t.Run("raise taxed at new salary bracket", func(t *testing.T) {
		// Current 96000/yr; new 120000 lands in the 24% bracket.
		output, err := uc.Execute(ctx, EvaluateInput{
			Type:   entity.ScenarioChangeJob,
			Params: Params{NewAnnualSalary: 120000},
			State:  sampleState(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		impact := output.Result.Impact

		if impact["salary_delta"] != 24000 {
			t.Errorf("salary delta %.2f, expected 24000", impact["salary_delta"])
		}
		if impact["tax_rate_applied"] != 0.24 {
			t.Errorf("tax rate %.2f, expected 0.24", impact["tax_rate_applied"])
		}
		want := 24000 * 0.76 / 12
		if diff := impact["net_monthly_delta"] - want; diff < -0.01 || diff > 0.01 {
			t.Errorf("net monthly delta %.2f, expected %.2f", impact["net_monthly_delta"], want)
		}
	})

	t.Run("pay cut with better match can still lose", func(t *testing.T) {
		output, err := uc.Execute(ctx, EvaluateInput{
			Type:   entity.ScenarioChangeJob,
			Params: Params{NewAnnualSalary: 80000, OldMatchPct: 3, NewMatchPct: 6},
			State:  sampleState(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if impact := output.Result.Impact; impact["salary_delta"] != -16000 {
			t.Errorf("salary delta %.2f, expected -16000", impact["salary_delta"])
		}
		if !strings.Contains(output.Result.Recommendation, "net loss") {
			t.Errorf("expected a net-loss recommendation, got %q", output.Result.Recommendation)
		}
	})
}

func TestEvaluate_Max401k(t *testing.T) {
	uc := NewEvaluateUseCase()
	ctx := context.Background()

	t.Run("tax savings at bracket", func(t *testing.T) {
		output, err := uc.Execute(ctx, EvaluateInput{
			Type:   entity.ScenarioMax401k,
			Params: Params{CurrentAnnual401k: 8000, TaxBracket: 0.24},
			State:  sampleState(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		impact := output.Result.Impact

		if impact["additional_annual"] != 15000 {
			t.Errorf("additional annual %.2f, expected 15000", impact["additional_annual"])
		}
		if impact["annual_tax_savings"] != 3600 {
			t.Errorf("tax savings %.2f, expected 15000 * 0.24", impact["annual_tax_savings"])
		}
		if impact["future_value_10y"] >= impact["future_value_20y"] ||
			impact["future_value_20y"] >= impact["future_value_30y"] {
			t.Error("future values must grow with the horizon")
		}
	})

	t.Run("already at the limit", func(t *testing.T) {
		output, err := uc.Execute(ctx, EvaluateInput{
			Type:   entity.ScenarioMax401k,
			Params: Params{CurrentAnnual401k: irsAnnual401kLimit},
			State:  sampleState(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(output.Result.Recommendation, "already at the IRS limit") {
			t.Errorf("expected at-limit recommendation, got %q", output.Result.Recommendation)
		}
	})

	t.Run("contribution above limit rejected", func(t *testing.T) {
		_, err := uc.Execute(ctx, EvaluateInput{
			Type:   entity.ScenarioMax401k,
			Params: Params{CurrentAnnual401k: irsAnnual401kLimit + 1},
			State:  sampleState(),
		})
		if !errors.Is(err, domainerror.ErrInvalidScenarioParams) {
			t.Errorf("expected ErrInvalidScenarioParams, got %v", err)
		}
	})
}

func TestEvaluate_MarketCrash(t *testing.T) {
	uc := NewEvaluateUseCase()
	ctx := context.Background()

	output, err := uc.Execute(ctx, EvaluateInput{
		Type:   entity.ScenarioMarketCrash,
		Params: Params{CrashPct: 30},
		State:  sampleState(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	impact := output.Result.Impact

	if impact["immediate_loss"] != 45000 {
		t.Errorf("immediate loss %.2f, expected 30%% of 150000", impact["immediate_loss"])
	}
	if impact["balance_after_crash"] != 105000 {
		t.Errorf("balance after crash %.2f, expected 105000", impact["balance_after_crash"])
	}
	if impact["recovery_years"] != 3 {
		t.Errorf("recovery years %.0f, expected ceil(30/10) = 3", impact["recovery_years"])
	}

	timeline := output.Result.Timeline
	if timeline[0].Year != 0 || timeline[0].Value != 105000 {
		t.Errorf("timeline must start at the crashed balance, got %+v", timeline[0])
	}
	if len(timeline) != crashProjectionYears+1 {
		t.Errorf("expected %d timeline points, got %d", crashProjectionYears+1, len(timeline))
	}
}

func TestRecoveryYearsFor_FloorOfTwo(t *testing.T) {
	cases := []struct {
		crashPct float64
		want     int
	}{
		{5, 2},
		{10, 2},
		{30, 3},
		{55, 6},
	}
	for _, tc := range cases {
		if got := recoveryYearsFor(tc.crashPct); got != tc.want {
			t.Errorf("recoveryYearsFor(%.0f) = %d, expected %d", tc.crashPct, got, tc.want)
		}
	}
}

func TestEvaluate_RetireEarly(t *testing.T) {
	uc := NewEvaluateUseCase()
	ctx := context.Background()

	t.Run("corpus targets from expenses", func(t *testing.T) {
		output, err := uc.Execute(ctx, EvaluateInput{
			Type:   entity.ScenarioRetireEarly,
			Params: Params{TargetRetirementAge: 55},
			State:  sampleState(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		impact := output.Result.Impact

		// 5000/mo expenses: 60000/0.04 and 60000/0.03.
		if impact["corpus_4pct_rule"] != 1500000 {
			t.Errorf("4%% corpus %.2f, expected 1500000", impact["corpus_4pct_rule"])
		}
		if impact["corpus_3pct_rule"] != 2000000 {
			t.Errorf("3%% corpus %.2f, expected 2000000", impact["corpus_3pct_rule"])
		}
		if impact["shortfall_4pct"] != impact["corpus_4pct_rule"]-impact["projected_at_target"] {
			t.Error("shortfall must equal target minus projection")
		}
	})

	t.Run("target age not after current age", func(t *testing.T) {
		_, err := uc.Execute(ctx, EvaluateInput{
			Type:   entity.ScenarioRetireEarly,
			Params: Params{TargetRetirementAge: 40},
			State:  sampleState(),
		})
		if !errors.Is(err, domainerror.ErrInvalidScenarioParams) {
			t.Errorf("expected ErrInvalidScenarioParams, got %v", err)
		}
	})
}

func TestEvaluate_HaveChild(t *testing.T) {
	uc := NewEvaluateUseCase()
	ctx := context.Background()

	output, err := uc.Execute(ctx, EvaluateInput{
		Type:   entity.ScenarioHaveChild,
		Params: Params{SupportYears: 18},
		State:  sampleState(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	impact := output.Result.Impact

	if impact["monthly_cost"] != monthlyChildcareCost+monthlyChildOtherCost {
		t.Errorf("monthly cost %.2f, expected %.2f", impact["monthly_cost"], monthlyChildcareCost+monthlyChildOtherCost)
	}
	want := firstYearChildCost + (monthlyChildcareCost+monthlyChildOtherCost)*12*17
	if impact["total_cost"] != want {
		t.Errorf("total cost %.2f, expected %.2f", impact["total_cost"], want)
	}
	// 250/mo at 6% for 18 years is about 96981.
	if fund := impact["college_fund_at_18"]; fund < 90000 || fund > 105000 {
		t.Errorf("college fund %.2f outside plausible range", fund)
	}

	t.Run("support years over thirty rejected", func(t *testing.T) {
		_, err := uc.Execute(ctx, EvaluateInput{
			Type:   entity.ScenarioHaveChild,
			Params: Params{SupportYears: 31},
			State:  sampleState(),
		})
		if !errors.Is(err, domainerror.ErrInvalidScenarioParams) {
			t.Errorf("expected ErrInvalidScenarioParams, got %v", err)
		}
	})
}
