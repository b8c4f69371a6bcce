package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"loan-calculator/domain"
)

type TenureRecommendationService struct {
	maxRangeYears int
}

func NewTenureRecommendationService() *TenureRecommendationService {
	return &TenureRecommendationService{maxRangeYears: MaxTenureRangeYears}
}

// RecommendTenure evaluates every tenure in the range and ranks them by the
// requested preference, dropping those whose EMI exceeds the monthly maximum.
func (s *TenureRecommendationService) RecommendTenure(
	ctx context.Context,
	input domain.TenureRecommendationInput,
) (domain.TenureRecommendationResult, error) {
	if err := validateStruct(input); err != nil {
		return domain.TenureRecommendationResult{}, err
	}
	if input.MaxTenureYears-input.MinTenureYears > s.maxRangeYears {
		return domain.TenureRecommendationResult{}, fmt.Errorf(
			"%w: tenure range exceeds %d years", ErrInvalidInput, s.maxRangeYears,
		)
	}

	recommendations := []domain.TenureRecommendation{}
	for years := input.MinTenureYears; years <= input.MaxTenureYears; years++ {
		emi, err := ComputeEmi(input.Principal, input.AnnualRatePercent, years)
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Int("tenure_years", years).Msg("skipping tenure")
			continue
		}
		if emi > input.MaxMonthlyPayment {
			continue
		}
		recommendations = append(recommendations, domain.TenureRecommendation{
			TenureYears:   years,
			Emi:           emi,
			TotalInterest: emi*float64(years*12) - input.Principal,
		})
	}

	if len(recommendations) == 0 {
		return domain.TenureRecommendationResult{}, fmt.Errorf(
			"%w: no tenure between %d and %d years keeps the EMI under %.2f",
			ErrUnaffordablePayment, input.MinTenureYears, input.MaxTenureYears, input.MaxMonthlyPayment,
		)
	}

	s.score(recommendations, input)

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	for i := range recommendations {
		recommendations[i].Emi = RoundTo2Decimals(recommendations[i].Emi)
		recommendations[i].TotalInterest = RoundTo2Decimals(recommendations[i].TotalInterest)
		recommendations[i].Reason = generateReason(input.Preference)
	}

	return domain.TenureRecommendationResult{
		RecommendedTenureYears: recommendations[0].TenureYears,
		Recommendations:        recommendations,
	}, nil
}

// score normalizes interest, EMI and tenure to 0-10 across the candidates and
// weights them by preference.
func (s *TenureRecommendationService) score(
	recs []domain.TenureRecommendation,
	input domain.TenureRecommendationInput,
) {
	minInterest, maxInterest := math.Inf(1), math.Inf(-1)
	minEmi, maxEmi := math.Inf(1), math.Inf(-1)
	minYears, maxYears := recs[0].TenureYears, recs[len(recs)-1].TenureYears
	for _, r := range recs {
		minInterest = math.Min(minInterest, r.TotalInterest)
		maxInterest = math.Max(maxInterest, r.TotalInterest)
		minEmi = math.Min(minEmi, r.Emi)
		maxEmi = math.Max(maxEmi, r.Emi)
	}

	for i := range recs {
		interestScore := normalizedScore(recs[i].TotalInterest, minInterest, maxInterest)
		paymentScore := normalizedScore(recs[i].Emi, minEmi, maxEmi)
		tenureScore := normalizedScore(float64(recs[i].TenureYears), float64(minYears), float64(maxYears))

		var score float64
		switch input.Preference {
		case domain.PreferenceMinimizeInterest:
			score = 0.6*interestScore + 0.2*paymentScore + 0.2*tenureScore
		case domain.PreferenceMinimizePayment:
			score = 0.2*interestScore + 0.6*paymentScore + 0.2*tenureScore
		default:
			score = 0.4*interestScore + 0.4*paymentScore + 0.2*tenureScore
		}
		recs[i].Score = RoundTo2Decimals(score)
	}
}

// normalizedScore maps lo to 10 and hi to 0.
func normalizedScore(value, lo, hi float64) float64 {
	if hi <= lo {
		return 10
	}
	return 10 * (1 - (value-lo)/(hi-lo))
}

func generateReason(preference string) string {
	switch preference {
	case domain.PreferenceMinimizeInterest:
		return "Tenure optimized to minimize total interest cost"
	case domain.PreferenceMinimizePayment:
		return "Tenure optimized to minimize the monthly installment"
	case domain.PreferenceBalanced:
		return "Balance between monthly installment and total cost"
	}
	return "Recommendation based on the given parameters"
}
