package ledger

import (
	"math"

	"github.com/shopspring/decimal"
)

// Commission tiers are marginal: each rate applies only to the slice of
// cumulative gross inside its band.
var (
	tierOneCap  = decimal.NewFromInt(7500)
	tierTwoCap  = decimal.NewFromInt(20000)
	tierOneRate = decimal.NewFromFloat(0.5)
	tierTwoRate = decimal.NewFromFloat(0.4)
	topRate     = decimal.NewFromFloat(0.3)
)

// Commission maps cumulative gross sales to the platform commission, in cents.
// It is always evaluated against the whole gross and never accumulated.
func Commission(gross float64) float64 {
	if !finite(gross) || gross <= 0 {
		return 0
	}
	g := decimal.NewFromFloat(gross)

	var fee decimal.Decimal
	switch {
	case g.LessThanOrEqual(tierOneCap):
		fee = g.Mul(tierOneRate)
	case g.LessThanOrEqual(tierTwoCap):
		fee = tierOneCap.Mul(tierOneRate).Add(g.Sub(tierOneCap).Mul(tierTwoRate))
	default:
		fee = tierOneCap.Mul(tierOneRate).
			Add(tierTwoCap.Sub(tierOneCap).Mul(tierTwoRate)).
			Add(g.Sub(tierTwoCap).Mul(topRate))
	}
	return fee.Round(2).InexactFloat64()
}

// MarginalRate is the commission rate applied to the next dollar of gross.
// NaN is treated as no sales and +Inf as beyond the last cap.
func MarginalRate(gross float64) float64 {
	switch {
	case math.IsNaN(gross) || math.IsInf(gross, -1):
		return tierOneRate.InexactFloat64()
	case math.IsInf(gross, 1):
		return topRate.InexactFloat64()
	}
	g := decimal.NewFromFloat(gross)
	switch {
	case g.LessThan(tierOneCap):
		return tierOneRate.InexactFloat64()
	case g.LessThan(tierTwoCap):
		return tierTwoRate.InexactFloat64()
	default:
		return topRate.InexactFloat64()
	}
}
