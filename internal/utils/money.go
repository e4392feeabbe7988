// internal/utils/money.go
package utils

import (
	"github.com/shopspring/decimal"
)

// RoundCents rounds a monetary amount to 2 decimal places using decimal
// arithmetic so repeated summing cannot drift below cent precision.
func RoundCents(amount float64) float64 {
	v, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return v
}

// FormatAmount renders a monetary amount with exactly 2 decimal places.
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

// LineTotal computes quantity * unitPrice * (1 - discount) rounded to
// cents. The discount is a fraction in [0, 1).
func LineTotal(quantity int, unitPrice, discount float64) float64 {
	total := decimal.NewFromFloat(unitPrice).
		Mul(decimal.NewFromInt(int64(quantity))).
		Mul(decimal.NewFromInt(1).Sub(decimal.NewFromFloat(discount)))
	v, _ := total.Round(2).Float64()
	return v
}
