package ledger

import (
	"math"
	"time"

	"kept_house/internal/domain/entities"
)

// ResolvePrice returns the sale price of an approved item at now.
//
// Estate-sale pricing wins once the estate date is reached. Otherwise a fixed
// price, then the rounded midpoint of the estimate range, then whichever bound
// is set, else 0.
func ResolvePrice(item entities.ApprovedItem, job entities.Job, now time.Time) float64 {
	if job.EstateSaleDate != nil && !now.Before(*job.EstateSaleDate) &&
		item.EstateSalePrice != nil && finite(*item.EstateSalePrice) {
		return *item.EstateSalePrice
	}
	if item.Price != nil && finite(*item.Price) {
		return *item.Price
	}
	low, high := isSet(item.PriceLow), isSet(item.PriceHigh)
	switch {
	case low && high:
		return math.Round((item.PriceLow + item.PriceHigh) / 2)
	case high:
		return item.PriceHigh
	case low:
		return item.PriceLow
	}
	return 0
}

// isSet treats zero and non-finite estimates as missing.
func isSet(v float64) bool {
	return finite(v) && v != 0
}
