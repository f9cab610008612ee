package interfaces

import (
	"context"
	"kept_house/internal/domain/entities"
)

type ShipmentRequest struct {
	Destination entities.Address
	Packages    int
	WeightLbs   float64
}

type ShippingQuote struct {
	Amount   float64
	Currency string
	Service  string
}

// IShippingQuoter returns a rate for delivering a set of items.
type IShippingQuoter interface {
	Quote(ctx context.Context, req ShipmentRequest) (ShippingQuote, error)
}
