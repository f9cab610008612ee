package request

import (
	"strings"

	"kept_house/internal/domain/entities"
	"kept_house/internal/usecase"
)

type AddToCartRequest struct {
	ListingID string `json:"listing_id" binding:"required"`
}

type AddressRequest struct {
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country"`
}

type DeliveryRequest struct {
	Type    string          `json:"type" binding:"required,oneof=pickup shipping"`
	Address *AddressRequest `json:"address"`
}

func (r DeliveryRequest) ToDelivery() usecase.Delivery {
	d := usecase.Delivery{Type: entities.DeliveryType(r.Type)}
	if a := r.Address; a != nil {
		country := strings.TrimSpace(a.Country)
		if country == "" {
			country = "US"
		}
		d.Address = &entities.Address{
			Line1:      strings.TrimSpace(a.Line1),
			Line2:      strings.TrimSpace(a.Line2),
			City:       strings.TrimSpace(a.City),
			State:      strings.TrimSpace(a.State),
			PostalCode: strings.TrimSpace(a.PostalCode),
			Country:    country,
		}
	}
	return d
}

type CheckoutRequest struct {
	Delivery   DeliveryRequest `json:"delivery" binding:"required"`
	BuyerName  string          `json:"buyer_name"`
	BuyerEmail string          `json:"buyer_email" binding:"omitempty,email"`
}

func (r CheckoutRequest) ToInput() usecase.CheckoutInput {
	return usecase.CheckoutInput{
		Delivery:   r.Delivery.ToDelivery(),
		BuyerName:  strings.TrimSpace(r.BuyerName),
		BuyerEmail: strings.TrimSpace(r.BuyerEmail),
	}
}

type FulfillmentRequest struct {
	Status string `json:"status" binding:"required"`
}

type RefundRequest struct {
	Reason string `json:"reason" binding:"required"`
}
