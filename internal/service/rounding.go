package service

import "github.com/shopspring/decimal"

// roundRating rounds an average rating to one decimal, half away from zero.
func roundRating(avg float64) float64 {
	v, _ := decimal.NewFromFloat(avg).Round(1).Float64()
	return v
}

// percentRate returns round(num/den*100) clamped to [0,100], or 0 when den is
// not positive.
func percentRate(num, den int64) int64 {
	if den <= 0 || num <= 0 {
		return 0
	}
	rate := decimal.NewFromInt(num).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(den)).Round(0).IntPart()
	if rate > 100 {
		return 100
	}
	return rate
}
