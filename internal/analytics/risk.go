package analytics

import "github.com/shopspring/decimal"

// RiskLevel classifies the overall financial health of a user.
type RiskLevel string

const (
	// RiskLow means at least 20% of income is saved.
	RiskLow RiskLevel = "low"
	// RiskMedium means at least 10%, but less than 20% of income is saved.
	RiskMedium RiskLevel = "medium"
	// RiskHigh means less than 10% of income is saved.
	RiskHigh RiskLevel = "high"
)

var (
	riskLowThreshold    = decimal.NewFromInt(20)
	riskMediumThreshold = decimal.NewFromInt(10)
)

// SavingsRate returns the percentage of income that is not spent. Without
// income the rate is zero.
func SavingsRate(totals Totals) decimal.Decimal {
	return PercentageOf(totals.Balance, totals.Income)
}

// RiskFromSavingsRate classifies the savings rate. A user without income
// is classified as high risk.
func RiskFromSavingsRate(rate decimal.Decimal) RiskLevel {
	switch {
	case rate.GreaterThanOrEqual(riskLowThreshold):
		return RiskLow
	case rate.GreaterThanOrEqual(riskMediumThreshold):
		return RiskMedium
	default:
		return RiskHigh
	}
}
