package domain

const (
	PreferenceMinimizeInterest = "minimize_interest"
	PreferenceMinimizePayment  = "minimize_payment"
	PreferenceBalanced         = "balanced"
)

type TenureRecommendationInput struct {
	Principal         float64 `json:"principal" validate:"gt=0,lte=1000000000"`
	AnnualRatePercent float64 `json:"annualRatePercent" validate:"gte=0,lte=100"`
	MinTenureYears    int     `json:"minTenureYears" validate:"gte=1,lte=50"`
	MaxTenureYears    int     `json:"maxTenureYears" validate:"gte=1,lte=50,gtefield=MinTenureYears"`
	MaxMonthlyPayment float64 `json:"maxMonthlyPayment" validate:"gt=0"`
	Preference        string  `json:"preference" validate:"oneof=minimize_interest minimize_payment balanced"`
}

type TenureRecommendation struct {
	TenureYears   int     `json:"tenureYears"`
	Emi           float64 `json:"emi"`
	TotalInterest float64 `json:"totalInterest"`
	Score         float64 `json:"score"`
	Reason        string  `json:"reason"`
}

type TenureRecommendationResult struct {
	RecommendedTenureYears int                    `json:"recommendedTenureYears"`
	Recommendations        []TenureRecommendation `json:"recommendations"`
}
