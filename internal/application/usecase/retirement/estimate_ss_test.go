package retirement

import (
	"context"
	"errors"
	"math"
	"testing"

	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

func TestEstimateBenefit_BendPointTiers(t *testing.T) {
	uc := NewEstimateBenefitUseCase()
	ctx := context.Background()

	cases := []struct {
		name         string
		annualIncome float64
		want         float64
	}{
		{
			// 1000/mo sits entirely in the 90% tier.
			name:         "first tier only",
			annualIncome: 12000,
			want:         900,
		},
		{
			// 4000/mo: 1174*0.90 + (4000-1174)*0.32 = 1056.60 + 904.32.
			name:         "second tier",
			annualIncome: 48000,
			want:         1960.92,
		},
		{
			// 10000/mo: 1056.60 + (7078-1174)*0.32 + (10000-7078)*0.15.
			name:         "third tier",
			annualIncome: 120000,
			want:         1056.60 + 5904*0.32 + 2922*0.15,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			output, err := uc.Execute(ctx, EstimateBenefitInput{
				AnnualIncome: tc.annualIncome,
				ClaimAge:     ssFullRetirementAge,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(output.MonthlyBenefit-tc.want) > 0.01 {
				t.Errorf("benefit %.2f, expected %.2f", output.MonthlyBenefit, tc.want)
			}
			if output.ClaimAgeFactor != 1.0 {
				t.Errorf("claiming at full retirement age must have factor 1, got %.3f", output.ClaimAgeFactor)
			}
		})
	}
}

func TestEstimateBenefit_ClaimAgeFactors(t *testing.T) {
	uc := NewEstimateBenefitUseCase()
	ctx := context.Background()

	cases := []struct {
		claimAge   int
		wantFactor float64
	}{
		{62, 1 - 5*0.067},
		{65, 1 - 2*0.067},
		{67, 1.0},
		{68, 1.08},
		{70, 1.24},
	}

	for _, tc := range cases {
		output, err := uc.Execute(ctx, EstimateBenefitInput{
			AnnualIncome: 60000,
			ClaimAge:     tc.claimAge,
		})
		if err != nil {
			t.Fatalf("claim age %d: unexpected error: %v", tc.claimAge, err)
		}
		if math.Abs(output.ClaimAgeFactor-tc.wantFactor) > 0.0001 {
			t.Errorf("claim age %d factor %.4f, expected %.4f", tc.claimAge, output.ClaimAgeFactor, tc.wantFactor)
		}
	}
}

func TestEstimateBenefit_CapApplied(t *testing.T) {
	uc := NewEstimateBenefitUseCase()

	output, err := uc.Execute(context.Background(), EstimateBenefitInput{
		AnnualIncome: 2000000,
		ClaimAge:     70,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.MonthlyBenefit != ssMaxBenefit {
		t.Errorf("expected benefit capped at %.0f, got %.2f", ssMaxBenefit, output.MonthlyBenefit)
	}
}

func TestEstimateBenefit_Validation(t *testing.T) {
	uc := NewEstimateBenefitUseCase()
	ctx := context.Background()

	t.Run("non-positive income", func(t *testing.T) {
		_, err := uc.Execute(ctx, EstimateBenefitInput{AnnualIncome: 0, ClaimAge: 67})
		if !errors.Is(err, domainerror.ErrInvalidBenefitIncome) {
			t.Errorf("expected ErrInvalidBenefitIncome, got %v", err)
		}
	})

	t.Run("claim age out of range", func(t *testing.T) {
		for _, age := range []int{61, 71} {
			_, err := uc.Execute(ctx, EstimateBenefitInput{AnnualIncome: 50000, ClaimAge: age})
			if !errors.Is(err, domainerror.ErrInvalidClaimAge) {
				t.Errorf("claim age %d: expected ErrInvalidClaimAge, got %v", age, err)
			}
		}
	})
}

func TestEstimateBenefit_ReplacementRateDeclinesWithIncome(t *testing.T) {
	uc := NewEstimateBenefitUseCase()
	ctx := context.Background()

	low, err := uc.Execute(ctx, EstimateBenefitInput{AnnualIncome: 30000, ClaimAge: 67})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	high, err := uc.Execute(ctx, EstimateBenefitInput{AnnualIncome: 200000, ClaimAge: 67})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if low.ReplacementRate <= high.ReplacementRate {
		t.Errorf("replacement rate should be progressive: low %.3f, high %.3f",
			low.ReplacementRate, high.ReplacementRate)
	}
}
