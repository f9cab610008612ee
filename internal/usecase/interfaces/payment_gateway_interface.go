package interfaces

import "context"

// Provider-side payment states we act on.
const (
	ProviderStatusApproved  = "approved"
	ProviderStatusRejected  = "rejected"
	ProviderStatusCancelled = "cancelled"
	ProviderStatusRefunded  = "refunded"
)

type CheckoutLine struct {
	ID         string
	Title      string
	PictureURL string
	Quantity   int
	UnitPrice  float64
}

// CheckoutRequest asks the provider for a hosted checkout. ExternalReference
// comes back on the payment and routes the confirmation (order:<id> or
// deposit:<jobID>).
type CheckoutRequest struct {
	ExternalReference string
	Lines             []CheckoutLine
	PayerEmail        string
	Metadata          map[string]any
}

type CheckoutSession struct {
	ID  string
	URL string
}

// PaymentConfirmation is the provider's authoritative view of a payment.
type PaymentConfirmation struct {
	PaymentID         string
	Status            string
	ExternalReference string
	Amount            float64
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
type IPaymentGateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (CheckoutSession, error)
	GetPayment(ctx context.Context, paymentID string) (PaymentConfirmation, error)
}
