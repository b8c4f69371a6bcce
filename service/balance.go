package service

import (
	"fmt"
	"math"
)

// RemainingBalance is the closed form balance left after month payments of
// the standard EMI schedule, with no extra payments.
func RemainingBalance(principal, annualRatePercent float64, tenureYears, month int) (float64, error) {
	if err := validateTerms(principal, annualRatePercent, tenureYears); err != nil {
		return 0, err
	}
	n := tenureYears * 12
	if month < 0 || month > n {
		return 0, fmt.Errorf("%w: month must be between 0 and %d, got %d", ErrInvalidInput, n, month)
	}

	monthlyRate := annualRatePercent / 100 / 12
	if monthlyRate == 0 {
		return principal * float64(n-month) / float64(n), nil
	}

	total := math.Pow(1+monthlyRate, float64(n))
	elapsed := math.Pow(1+monthlyRate, float64(month))
	return math.Max(0, principal*(total-elapsed)/(total-1)), nil
}
