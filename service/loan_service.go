package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"loan-calculator/domain"
	"loan-calculator/repository"
)

type LoanService struct {
	cache    repository.CacheRepository
	cacheTTL time.Duration
}

// NewLoanService creates a LoanService. A nil cache disables memoization.
func NewLoanService(cache repository.CacheRepository, cacheTTL time.Duration) *LoanService {
	return &LoanService{cache: cache, cacheTTL: cacheTTL}
}

// Calculate validates input and returns the EMI, the full schedule and, when an
// extra payment is given, what it saves against paying only the EMI.
func (s *LoanService) Calculate(
	ctx context.Context,
	input domain.LoanInput,
) (domain.LoanResult, error) {
	logger := zerolog.Ctx(ctx)

	if err := validateStruct(input); err != nil {
		return domain.LoanResult{}, err
	}

	key := cacheKey(input)
	if cached, ok := s.lookup(ctx, key); ok {
		logger.Debug().Str("key", key).Msg("loan result served from cache")
		return cached, nil
	}

	terms, plan := input.Terms(), input.Plan()

	emi, err := ComputeEmi(terms.Principal, terms.AnnualRatePercent, terms.TenureYears)
	if err != nil {
		return domain.LoanResult{}, err
	}

	schedule, err := GenerateSchedule(
		terms.Principal, terms.AnnualRatePercent, terms.TenureYears,
		emi, plan.ExtraMonthlyPayment,
	)
	if err != nil {
		return domain.LoanResult{}, err
	}

	result := domain.LoanResult{
		Emi:      emi,
		Schedule: schedule,
	}

	if plan.ExtraMonthlyPayment > 0 {
		// The baseline pays the exact EMI, so it always amortizes.
		baseline, err := GenerateSchedule(
			terms.Principal, terms.AnnualRatePercent, terms.TenureYears, emi, 0,
		)
		if err != nil {
			return domain.LoanResult{}, err
		}
		result.Savings = &domain.Savings{
			InterestSaved: baseline.TotalInterest - schedule.TotalInterest,
			MonthsSaved:   baseline.ActualTenureMonths - schedule.ActualTenureMonths,
		}
	}

	s.store(ctx, key, result)

	logger.Info().
		Float64("emi", emi).
		Int("months", schedule.ActualTenureMonths).
		Float64("total_interest", schedule.TotalInterest).
		Msg("loan calculated")

	return result, nil
}

func (s *LoanService) lookup(ctx context.Context, key string) (domain.LoanResult, bool) {
	if s.cache == nil {
		return domain.LoanResult{}, false
	}
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("cache lookup failed")
		return domain.LoanResult{}, false
	}
	if !ok {
		return domain.LoanResult{}, false
	}

	var result domain.LoanResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		return domain.LoanResult{}, false
	}
	return result, true
}

// store is best effort: a failure is only logged.
func (s *LoanService) store(ctx context.Context, key string, result domain.LoanResult) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to encode loan result for cache")
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("failed to cache loan result")
	}
}

func cacheKey(input domain.LoanInput) string {
	parts := []string{
		"loan",
		strconv.FormatFloat(input.Principal, 'g', -1, 64),
		strconv.FormatFloat(input.AnnualRatePercent, 'g', -1, 64),
		strconv.Itoa(input.TenureYears),
		strconv.FormatFloat(input.ExtraMonthlyPayment, 'g', -1, 64),
	}
	return strings.Join(parts, ":")
}
