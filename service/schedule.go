package service

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"loan-calculator/domain"
)

// GenerateSchedule simulates the loan month by month until the balance is
// retired. emi is normally the result of ComputeEmi for the same terms; any
// positive amount is accepted as long as emi+extra keeps covering interest.
// When emi is at least the terms' own EMI, the nominal final month settles
// whatever balance float rounding left behind.
func GenerateSchedule(
	principal float64,
	annualRatePercent float64,
	tenureYears int,
	emi float64,
	extraMonthlyPayment float64,
) (domain.AmortizationSummary, error) {
	if err := validateTerms(principal, annualRatePercent, tenureYears); err != nil {
		return domain.AmortizationSummary{}, err
	}
	if !(emi > 0) || math.IsInf(emi, 0) {
		return domain.AmortizationSummary{}, fmt.Errorf("%w: emi must be a positive amount, got %v", ErrInvalidInput, emi)
	}
	if !(extraMonthlyPayment >= 0) || math.IsInf(extraMonthlyPayment, 0) {
		return domain.AmortizationSummary{}, fmt.Errorf("%w: extra payment must be non-negative, got %v", ErrInvalidInput, extraMonthlyPayment)
	}

	terms := domain.LoanTerms{
		Principal:         principal,
		AnnualRatePercent: annualRatePercent,
		TenureYears:       tenureYears,
	}
	monthlyRate := terms.MonthlyRate()
	tolerance := principal * balanceTolerance
	nominalMonths := terms.TenureMonths()

	// validateTerms already passed, so ComputeEmi cannot fail here.
	termsEmi, _ := ComputeEmi(principal, annualRatePercent, tenureYears)
	settlesOnTerm := emi >= termsEmi*(1-emiMatchTolerance)

	balance := principal
	totalInterest := decimal.Zero
	totalPaid := decimal.Zero
	records := make([]domain.AmortizationRecord, 0, nominalMonths)

	for month := 1; balance > 0; month++ {
		if month > MaxScheduleMonths {
			return domain.AmortizationSummary{}, fmt.Errorf(
				"%w: balance of %.2f still outstanding after %d months",
				ErrUnaffordablePayment, balance, MaxScheduleMonths,
			)
		}

		interest := balance * monthlyRate
		principalPayment := emi - interest + extraMonthlyPayment
		if principalPayment <= 0 {
			return domain.AmortizationSummary{}, fmt.Errorf(
				"%w: month %d interest is %.2f but the payment is %.2f",
				ErrUnaffordablePayment, month, interest, emi+extraMonthlyPayment,
			)
		}
		if principalPayment > balance || (settlesOnTerm && month >= nominalMonths) {
			principalPayment = balance
		}

		balance -= principalPayment
		if balance < tolerance {
			principalPayment += balance
			balance = 0
		}

		totalInterest = totalInterest.Add(decimal.NewFromFloat(interest))
		totalPaid = totalPaid.Add(decimal.NewFromFloat(interest)).Add(decimal.NewFromFloat(principalPayment))

		records = append(records, domain.AmortizationRecord{
			MonthIndex:       month,
			PrincipalPaid:    principalPayment,
			InterestPaid:     interest,
			RemainingBalance: balance,
		})
	}

	return domain.AmortizationSummary{
		Records:             records,
		TotalInterest:       totalInterest.InexactFloat64(),
		TotalPaid:           totalPaid.InexactFloat64(),
		ActualTenureMonths:  len(records),
		NominalTenureMonths: nominalMonths,
	}, nil
}
