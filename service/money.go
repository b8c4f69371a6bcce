package service

import "github.com/shopspring/decimal"

// RoundTo2Decimals rounds an amount to cents, half away from zero.
func RoundTo2Decimals(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}
