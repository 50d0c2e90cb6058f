package retirement

import (
	"context"

	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

// Social Security bend-point approximation. Monthly income is replaced in
// tiers, then scaled by a claiming-age factor relative to full retirement age.
const (
	ssFirstBendPoint  = 1174.0
	ssSecondBendPoint = 7078.0

	ssFirstTierRate  = 0.90
	ssSecondTierRate = 0.32
	ssThirdTierRate  = 0.15

	ssFullRetirementAge = 67
	ssMinClaimAge       = 62
	ssMaxClaimAge       = 70

	// Claiming early reduces the benefit ~6.7%/yr; delaying adds 8%/yr.
	ssEarlyClaimPenaltyPerYear = 0.067
	ssDelayCreditPerYear       = 0.08

	// Benefits are capped relative to the income they replace.
	ssMaxBenefit = 4873.0
)

// EstimateBenefitInput represents the input for a Social Security estimate.
type EstimateBenefitInput struct {
	AnnualIncome float64
	ClaimAge     int
}

// EstimateBenefitOutput represents the output of a Social Security estimate.
type EstimateBenefitOutput struct {
	MonthlyBenefit  float64
	ReplacementRate float64 // benefit as a fraction of pre-retirement monthly income
	ClaimAgeFactor  float64
}

// EstimateBenefitUseCase approximates a Social Security benefit from income
// and claiming age. It is a planning heuristic, not an earnings-record estimate.
type EstimateBenefitUseCase struct{}

// NewEstimateBenefitUseCase creates a new EstimateBenefitUseCase instance.
func NewEstimateBenefitUseCase() *EstimateBenefitUseCase {
	return &EstimateBenefitUseCase{}
}

// Execute performs the estimate.
func (uc *EstimateBenefitUseCase) Execute(ctx context.Context, input EstimateBenefitInput) (*EstimateBenefitOutput, error) {
	if input.AnnualIncome <= 0 {
		return nil, domainerror.NewRetirementError(
			domainerror.ErrCodeInvalidBenefitIncome,
			"annual income must be positive",
			domainerror.ErrInvalidBenefitIncome,
		)
	}
	if input.ClaimAge < ssMinClaimAge || input.ClaimAge > ssMaxClaimAge {
		return nil, domainerror.NewRetirementError(
			domainerror.ErrCodeInvalidClaimAge,
			"claiming age must be between 62 and 70",
			domainerror.ErrInvalidClaimAge,
		)
	}

	monthlyIncome := input.AnnualIncome / 12

	benefit := 0.0
	switch {
	case monthlyIncome <= ssFirstBendPoint:
		benefit = monthlyIncome * ssFirstTierRate
	case monthlyIncome <= ssSecondBendPoint:
		benefit = ssFirstBendPoint*ssFirstTierRate +
			(monthlyIncome-ssFirstBendPoint)*ssSecondTierRate
	default:
		benefit = ssFirstBendPoint*ssFirstTierRate +
			(ssSecondBendPoint-ssFirstBendPoint)*ssSecondTierRate +
			(monthlyIncome-ssSecondBendPoint)*ssThirdTierRate
	}

	factor := 1.0
	if input.ClaimAge < ssFullRetirementAge {
		factor -= float64(ssFullRetirementAge-input.ClaimAge) * ssEarlyClaimPenaltyPerYear
	} else if input.ClaimAge > ssFullRetirementAge {
		factor += float64(input.ClaimAge-ssFullRetirementAge) * ssDelayCreditPerYear
	}

	benefit *= factor
	if benefit > ssMaxBenefit {
		benefit = ssMaxBenefit
	}

	return &EstimateBenefitOutput{
		MonthlyBenefit:  benefit,
		ReplacementRate: benefit / monthlyIncome,
		ClaimAgeFactor:  factor,
	}, nil
}
