package ledger

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundCents rounds half away from zero to two decimal places. NaN and
// infinities round to 0.
func RoundCents(v float64) float64 {
	if !finite(v) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// addCents treats a non-finite operand as 0.
func addCents(a, b float64) float64 {
	return cents(a).Add(cents(b)).Round(2).InexactFloat64()
}

func cents(v float64) decimal.Decimal {
	if !finite(v) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validPositive(v float64) bool {
	return finite(v) && v > 0
}
