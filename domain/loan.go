package domain

// LoanTerms are the contractual inputs shared by the EMI calculator and the
// scheduler.
type LoanTerms struct {
	Principal         float64
	AnnualRatePercent float64
	TenureYears       int
}

// TenureMonths is the nominal number of installments.
func (t LoanTerms) TenureMonths() int {
	return t.TenureYears * 12
}

// MonthlyRate is the fractional rate applied each month.
func (t LoanTerms) MonthlyRate() float64 {
	return t.AnnualRatePercent / 100 / 12
}

type PaymentPlan struct {
	ExtraMonthlyPayment float64
}

type LoanInput struct {
	Principal           float64 `json:"principal" validate:"gt=0,lte=1000000000"`
	AnnualRatePercent   float64 `json:"annualRatePercent" validate:"gte=0,lte=100"`
	TenureYears         int     `json:"tenureYears" validate:"gte=1,lte=50"`
	ExtraMonthlyPayment float64 `json:"extraMonthlyPayment" validate:"gte=0"`
}

func (in LoanInput) Terms() LoanTerms {
	return LoanTerms{
		Principal:         in.Principal,
		AnnualRatePercent: in.AnnualRatePercent,
		TenureYears:       in.TenureYears,
	}
}

func (in LoanInput) Plan() PaymentPlan {
	return PaymentPlan{ExtraMonthlyPayment: in.ExtraMonthlyPayment}
}

type Savings struct {
	InterestSaved float64 `json:"interestSaved"`
	MonthsSaved   int     `json:"monthsSaved"`
}

type LoanResult struct {
	Emi      float64             `json:"emi"`
	Schedule AmortizationSummary `json:"schedule"`
	Savings  *Savings            `json:"savings,omitempty"`
}
