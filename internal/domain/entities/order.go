package entities

import (
	"strings"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
	PaymentStatusCanceled PaymentStatus = "canceled"
)

type FulfillmentStatus string

const (
	FulfillmentPending    FulfillmentStatus = "pending"
	FulfillmentProcessing FulfillmentStatus = "processing"
	FulfillmentReady      FulfillmentStatus = "ready"
	FulfillmentShipped    FulfillmentStatus = "shipped"
	FulfillmentDelivered  FulfillmentStatus = "delivered"
	FulfillmentPickedUp   FulfillmentStatus = "picked_up"
)

func (s FulfillmentStatus) Valid() bool {
	switch s {
	case FulfillmentPending, FulfillmentProcessing, FulfillmentReady, FulfillmentShipped, FulfillmentDelivered, FulfillmentPickedUp:
		return true
	}
	return false
}

type DeliveryType string

const (
	DeliveryPickup   DeliveryType = "pickup"
	DeliveryShipping DeliveryType = "shipping"
)

type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// OrderItem is an immutable snapshot of a listing at checkout time.
type OrderItem struct {
	ListingID      string  `json:"listing_id"`
	ItemDocumentID string  `json:"item_document_id"`
	JobID          string  `json:"job_id"`
	ItemNumber     int     `json:"item_number"`
	PhotoIndices   []int   `json:"photo_indices"`
	Title          string  `json:"title"`
	PhotoURL       string  `json:"photo_url,omitempty"`
	UnitPrice      float64 `json:"unit_price"`
	Quantity       int     `json:"quantity"`
}

// Order is a buyer purchase.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (user_id-index): user_id
type Order struct {
	ID                 string            `json:"id"`
	UserID             string            `json:"user_id"`
	BuyerName          string            `json:"buyer_name,omitempty"`
	BuyerEmail         string            `json:"buyer_email,omitempty"`
	Items              []OrderItem       `json:"items"`
	Subtotal           float64           `json:"subtotal"`
	DeliveryFee        float64           `json:"delivery_fee"`
	Tax                float64           `json:"tax"`
	Total              float64           `json:"total"`
	DeliveryType       DeliveryType      `json:"delivery_type"`
	ShippingAddress    *Address          `json:"shipping_address,omitempty"`
	PaymentStatus      PaymentStatus     `json:"payment_status"`
	FulfillmentStatus  FulfillmentStatus `json:"fulfillment_status"`
	ProviderCheckoutID string            `json:"provider_checkout_id,omitempty"`
	CheckoutURL        string            `json:"checkout_url,omitempty"`
	ProviderPaymentRef string            `json:"provider_payment_ref,omitempty"`
	PaidAt             *time.Time        `json:"paid_at,omitempty"`
	RefundedAt         *time.Time        `json:"refunded_at,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// ShortRef is the human-facing order reference used in ledger labels.
func (o Order) ShortRef() string {
	id := o.ID
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	return strings.ToUpper(id)
}
