package ledger

import "github.com/shopspring/decimal"

// PoundsPerItem is the flat per-item weight used for carrier quotes.
const PoundsPerItem = 5

type OrderTotals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// Totals prices a basket. Tax applies to subtotal plus delivery and every
// figure is rounded to cents.
func Totals(prices []float64, deliveryFee, taxRate float64) OrderTotals {
	sub := decimal.Zero
	for _, p := range prices {
		sub = sub.Add(decimal.NewFromFloat(p))
	}
	sub = sub.Round(2)
	fee := decimal.NewFromFloat(deliveryFee).Round(2)
	tax := sub.Add(fee).Mul(decimal.NewFromFloat(taxRate)).Round(2)
	return OrderTotals{
		Subtotal:    sub.InexactFloat64(),
		DeliveryFee: fee.InexactFloat64(),
		Tax:         tax.InexactFloat64(),
		Total:       sub.Add(fee).Add(tax).InexactFloat64(),
	}
}

// ShippingWeight is the declared parcel weight for n items, never below one
// pound.
func ShippingWeight(items int) float64 {
	if w := float64(items * PoundsPerItem); w > 1 {
		return w
	}
	return 1
}
