package service

import (
	"fmt"
	"math"
)

// ComputeEmi returns the fixed monthly installment that repays principal over
// tenureYears at annualRatePercent. A zero rate degrades to straight-line
// division.
func ComputeEmi(principal, annualRatePercent float64, tenureYears int) (float64, error) {
	if err := validateTerms(principal, annualRatePercent, tenureYears); err != nil {
		return 0, err
	}

	monthlyRate := annualRatePercent / 100 / 12
	n := tenureYears * 12

	if monthlyRate == 0 {
		return principal / float64(n), nil
	}

	growth := math.Pow(1+monthlyRate, float64(n))
	return principal * monthlyRate * growth / (growth - 1), nil
}

func validateTerms(principal, annualRatePercent float64, tenureYears int) error {
	if !(principal > 0) || principal > MaxPrincipal {
		return fmt.Errorf("%w: principal must be in (0, %.0f], got %v", ErrInvalidInput, MaxPrincipal, principal)
	}
	if !(annualRatePercent >= 0) || annualRatePercent > MaxAnnualRatePercent {
		return fmt.Errorf("%w: annual rate must be in [0, %.0f], got %v", ErrInvalidInput, MaxAnnualRatePercent, annualRatePercent)
	}
	if tenureYears < MinTenureYears || tenureYears > MaxTenureYears {
		return fmt.Errorf("%w: tenure must be between %d and %d years, got %d", ErrInvalidInput, MinTenureYears, MaxTenureYears, tenureYears)
	}
	if growth := math.Pow(1+annualRatePercent/100/12, float64(tenureYears*12)); growth > maxCompoundGrowth {
		return fmt.Errorf("%w: %v%% over %d years compounds beyond %.0e and cannot be amortized reliably",
			ErrInvalidInput, annualRatePercent, tenureYears, maxCompoundGrowth)
	}
	return nil
}
