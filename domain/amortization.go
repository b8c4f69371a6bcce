package domain

// AmortizationRecord is one month of a schedule. Records are ordered by
// MonthIndex starting at 1.
type AmortizationRecord struct {
	MonthIndex       int     `json:"monthIndex"`
	PrincipalPaid    float64 `json:"principalPaid"`
	InterestPaid     float64 `json:"interestPaid"`
	RemainingBalance float64 `json:"remainingBalance"`
}

type AmortizationSummary struct {
	Records             []AmortizationRecord `json:"records"`
	TotalInterest       float64              `json:"totalInterest"`
	TotalPaid           float64              `json:"totalPaid"`
	ActualTenureMonths  int                  `json:"actualTenureMonths"`
	NominalTenureMonths int                  `json:"nominalTenureMonths"`
}

// TotalPrincipal sums the principal portion of every record.
func (s AmortizationSummary) TotalPrincipal() float64 {
	total := 0.0
	for _, r := range s.Records {
		total += r.PrincipalPaid
	}
	return total
}
