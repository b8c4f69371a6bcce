package service

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-calculator/domain"
)

func mustEmi(t *testing.T, principal, rate float64, years int) float64 {
	t.Helper()
	emi, err := ComputeEmi(principal, rate, years)
	require.NoError(t, err)
	return emi
}

func assertScheduleInvariants(t *testing.T, principal float64, summary domain.AmortizationSummary) {
	t.Helper()
	require.NotEmpty(t, summary.Records)
	assert.Equal(t, len(summary.Records), summary.ActualTenureMonths)

	previous := principal
	interest := 0.0
	for i, r := range summary.Records {
		assert.Equal(t, i+1, r.MonthIndex)
		assert.GreaterOrEqual(t, r.PrincipalPaid, 0.0)
		assert.GreaterOrEqual(t, r.InterestPaid, 0.0)
		assert.GreaterOrEqual(t, r.RemainingBalance, 0.0)
		assert.LessOrEqual(t, r.RemainingBalance, previous, "balance grew in month %d", r.MonthIndex)
		previous = r.RemainingBalance
		interest += r.InterestPaid
	}

	last := summary.Records[len(summary.Records)-1]
	assert.Equal(t, 0.0, last.RemainingBalance)
	assert.InEpsilon(t, principal, summary.TotalPrincipal(), 1e-6)
	// float sums drift from the decimal totals in proportion to their size
	delta := math.Max(1e-6, 1e-12*summary.TotalPaid*float64(len(summary.Records)))
	assert.InDelta(t, interest, summary.TotalInterest, delta)
	assert.InDelta(t, principal+summary.TotalInterest, summary.TotalPaid, delta)
}

func TestGenerateSchedule_NominalTenure(t *testing.T) {
	emi := mustEmi(t, 50000, 5, 10)

	summary, err := GenerateSchedule(50000, 5, 10, emi, 0)
	require.NoError(t, err)

	assert.Equal(t, 120, summary.ActualTenureMonths)
	assert.Equal(t, 120, summary.NominalTenureMonths)
	assert.InDelta(t, 13639.31, summary.TotalInterest, 0.01)
	assertScheduleInvariants(t, 50000, summary)

	first := summary.Records[0]
	assert.InDelta(t, 208.33, first.InterestPaid, 0.005)
	assert.InDelta(t, emi-first.InterestPaid, first.PrincipalPaid, 1e-9)
}

func TestGenerateSchedule_ExtraPaymentAccelerates(t *testing.T) {
	emi := mustEmi(t, 50000, 5, 10)

	base, err := GenerateSchedule(50000, 5, 10, emi, 0)
	require.NoError(t, err)
	fast, err := GenerateSchedule(50000, 5, 10, emi, 200)
	require.NoError(t, err)

	assert.Less(t, fast.ActualTenureMonths, 120)
	assert.Equal(t, 81, fast.ActualTenureMonths)
	assert.Less(t, fast.TotalInterest, base.TotalInterest)
	assert.InDelta(t, 8987.80, fast.TotalInterest, 0.01)
	assertScheduleInvariants(t, 50000, fast)
}

func TestGenerateSchedule_MonotonicInExtraPayment(t *testing.T) {
	emi := mustEmi(t, 250000, 7.5, 25)

	previous := math.MaxInt
	for _, extra := range []float64{0, 10, 50, 100, 500, 1000, 5000, 250000} {
		summary, err := GenerateSchedule(250000, 7.5, 25, emi, extra)
		require.NoError(t, err)
		assert.LessOrEqual(t, summary.ActualTenureMonths, previous, "extra %v", extra)
		assert.LessOrEqual(t, summary.ActualTenureMonths, 25*12)
		assertScheduleInvariants(t, 250000, summary)
		previous = summary.ActualTenureMonths
	}
	assert.Equal(t, 1, previous)
}

func TestGenerateSchedule_ZeroRate(t *testing.T) {
	emi := mustEmi(t, 10000, 0, 5)

	summary, err := GenerateSchedule(10000, 0, 5, emi, 0)
	require.NoError(t, err)

	assert.Equal(t, 60, summary.ActualTenureMonths)
	assert.Equal(t, 0.0, summary.TotalInterest)
	assertScheduleInvariants(t, 10000, summary)
}

func TestGenerateSchedule_PaymentNeverOvershoots(t *testing.T) {
	summary, err := GenerateSchedule(1000, 12, 1, 400, 0)
	require.NoError(t, err)

	require.Equal(t, 3, summary.ActualTenureMonths)
	last := summary.Records[2]
	assert.Less(t, last.PrincipalPaid, 400.0)
	assertScheduleInvariants(t, 1000, summary)
}

func TestGenerateSchedule_RoundedDownEmiAddsTailMonth(t *testing.T) {
	emi := math.Floor(mustEmi(t, 10000, 5, 10)*100) / 100

	summary, err := GenerateSchedule(10000, 5, 10, emi, 0)
	require.NoError(t, err)

	assert.Equal(t, 121, summary.ActualTenureMonths)
	assertScheduleInvariants(t, 10000, summary)
}

func TestGenerateSchedule_HighRateLongTenureEndsOnTerm(t *testing.T) {
	tests := []struct {
		rate  float64
		years int
	}{
		{rate: 100, years: 10},
		{rate: 100, years: 20},
		{rate: 100, years: 28},
		{rate: 75, years: 35},
		{rate: 60, years: 40},
		{rate: 50, years: 50},
		{rate: 40, years: 50},
		{rate: 30, years: 50},
		{rate: 20, years: 30},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v%% over %d years", tt.rate, tt.years), func(t *testing.T) {
			for _, principal := range []float64{1000, 250000, MaxPrincipal} {
				emi := mustEmi(t, principal, tt.rate, tt.years)

				summary, err := GenerateSchedule(principal, tt.rate, tt.years, emi, 0)
				require.NoError(t, err)

				assert.Equal(t, summary.NominalTenureMonths, summary.ActualTenureMonths, "principal %v", principal)
				assertScheduleInvariants(t, principal, summary)
			}
		})
	}
}

func TestGenerateSchedule_RejectsRunawayCompounding(t *testing.T) {
	_, err := GenerateSchedule(100000, 100, MaxTenureYears, 8333.34, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = GenerateSchedule(100000, 100, 30, 8333.34, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGenerateSchedule_Unaffordable(t *testing.T) {
	// 100000 at 12% accrues 1000 of interest in the first month.
	_, err := GenerateSchedule(100000, 12, 10, 900, 50)
	assert.ErrorIs(t, err, ErrUnaffordablePayment)

	_, err = GenerateSchedule(100000, 12, 10, 1000, 0)
	assert.ErrorIs(t, err, ErrUnaffordablePayment)
}

func TestGenerateSchedule_IterationCap(t *testing.T) {
	// Barely above the first month's interest: amortizes, but far too slowly.
	_, err := GenerateSchedule(100000, 12, 10, 1000.01, 0)
	assert.ErrorIs(t, err, ErrUnaffordablePayment)
}

func TestGenerateSchedule_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		emi   float64
		extra float64
		years int
	}{
		{name: "zero emi", emi: 0, extra: 0, years: 10},
		{name: "nan emi", emi: math.NaN(), extra: 0, years: 10},
		{name: "infinite emi", emi: math.Inf(1), extra: 0, years: 10},
		{name: "negative extra", emi: 100, extra: -1, years: 10},
		{name: "zero tenure", emi: 100, extra: 0, years: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSchedule(10000, 5, tt.years, tt.emi, tt.extra)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
