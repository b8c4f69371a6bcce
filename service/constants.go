package service

const (
	MaxPrincipal         = 1_000_000_000.0
	MaxAnnualRatePercent = 100.0
	MinTenureYears       = 1
	MaxTenureYears       = 50 // 600 installments

	// MaxScheduleMonths bounds the scheduler loop for payments that barely
	// cover interest.
	MaxScheduleMonths = 1200

	// balanceTolerance is relative to the principal. Residuals under it are
	// floating point noise and get folded into the last payment.
	balanceTolerance = 1e-9

	// maxCompoundGrowth caps (1+r)^n. Beyond it the principal share of the
	// early installments is lost to float64 rounding.
	maxCompoundGrowth = 1e12

	// emiMatchTolerance is how close an emi must be to the terms' own EMI for
	// the nominal final month to settle the remaining balance.
	emiMatchTolerance = 1e-9

	MaxTenureRangeYears = 30
)
