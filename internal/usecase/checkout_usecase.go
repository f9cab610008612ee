package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kept_house/internal/domain/entities"
	"kept_house/internal/domain/ledger"
	"kept_house/internal/infrastructure/logger"
	"kept_house/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInvalidDelivery     = errors.New("invalid delivery option")
	ErrShippingUnavailable = errors.New("shipping quotes are not available")
	ErrInvalidFulfillment  = errors.New("invalid fulfillment status")
	ErrListingUnavailable  = errors.New("listing is no longer available")
	ErrInvalidBuyer        = errors.New("buyer id is required")
)

// UnavailableError names the cart lines that can no longer be sold.
type UnavailableError struct {
	ListingIDs []string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%v: %s", ErrListingUnavailable, strings.Join(e.ListingIDs, ", "))
}

func (e *UnavailableError) Unwrap() error { return ErrListingUnavailable }

type Delivery struct {
	Type    entities.DeliveryType
	Address *entities.Address
}

type CheckoutInput struct {
	Delivery   Delivery
	BuyerName  string
	BuyerEmail string
}

type CartView struct {
	UserID      string             `json:"user_id"`
	Items       []entities.Listing `json:"items"`
	Unavailable []string           `json:"unavailable,omitempty"`
	Subtotal    float64            `json:"subtotal"`
}

type Quote struct {
	ledger.OrderTotals
	Items           []entities.Listing    `json:"items"`
	DeliveryType    entities.DeliveryType `json:"delivery_type"`
	ShippingService string                `json:"shipping_service,omitempty"`
}

// ICheckoutUseCase covers the buyer cart, pricing and order placement.
type ICheckoutUseCase interface {
	AddToCart(ctx context.Context, userID, listingID string) (CartView, error)
	RemoveFromCart(ctx context.Context, userID, listingID string) (CartView, error)
	GetCart(ctx context.Context, userID string) (CartView, error)
	ClearCart(ctx context.Context, userID string) error
	Quote(ctx context.Context, userID string, d Delivery) (Quote, error)
	Checkout(ctx context.Context, userID string, in CheckoutInput) (entities.Order, error)
	GetOrder(ctx context.Context, userID, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, userID string) ([]entities.Order, error)
	UpdateFulfillment(ctx context.Context, orderID string, status entities.FulfillmentStatus) (entities.Order, error)
}

// IListingResolver projects a single listing from uncached state.
type IListingResolver interface {
	Resolve(ctx context.Context, listingID string) (entities.Listing, entities.ItemDocument, entities.Job, error)
}

type CheckoutUseCase struct {
	carts    interfaces.ICartRepository
	orders   interfaces.IOrderRepository
	listings IListingResolver
	shipping interfaces.IShippingQuoter
	gateway  interfaces.IPaymentGateway
	taxRate  float64
	now      clock
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	carts interfaces.ICartRepository,
	orders interfaces.IOrderRepository,
	listings IListingResolver,
	shipping interfaces.IShippingQuoter,
	gateway interfaces.IPaymentGateway,
	taxRate float64,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		carts:    carts,
		orders:   orders,
		listings: listings,
		shipping: shipping,
		gateway:  gateway,
		taxRate:  taxRate,
		now:      utcNow,
	}
}

func (u *CheckoutUseCase) AddToCart(ctx context.Context, userID, listingID string) (CartView, error) {
	if strings.TrimSpace(userID) == "" {
		return CartView{}, ErrInvalidBuyer
	}
	if _, _, _, err := u.listings.Resolve(ctx, listingID); err != nil {
		return CartView{}, err
	}
	cart, err := u.carts.Get(ctx, userID)
	if err != nil {
		return CartView{}, err
	}
	if !cart.Has(listingID) {
		cart.UserID = userID
		cart.Lines = append(cart.Lines, entities.CartLine{ListingID: listingID, AddedAt: u.now()})
		cart.UpdatedAt = u.now()
		if err := u.carts.Save(ctx, cart); err != nil {
			return CartView{}, err
		}
	}
	return u.view(ctx, cart)
}

func (u *CheckoutUseCase) RemoveFromCart(ctx context.Context, userID, listingID string) (CartView, error) {
	if strings.TrimSpace(userID) == "" {
		return CartView{}, ErrInvalidBuyer
	}
	cart, err := u.carts.Get(ctx, userID)
	if err != nil {
		return CartView{}, err
	}
	if cart.Has(listingID) {
		kept := cart.Lines[:0]
		for _, l := range cart.Lines {
			if l.ListingID != listingID {
				kept = append(kept, l)
			}
		}
		cart.Lines = kept
		cart.UpdatedAt = u.now()
		if err := u.carts.Save(ctx, cart); err != nil {
			return CartView{}, err
		}
	}
	return u.view(ctx, cart)
}

func (u *CheckoutUseCase) GetCart(ctx context.Context, userID string) (CartView, error) {
	if strings.TrimSpace(userID) == "" {
		return CartView{}, ErrInvalidBuyer
	}
	cart, err := u.carts.Get(ctx, userID)
	if err != nil {
		return CartView{}, err
	}
	return u.view(ctx, cart)
}

func (u *CheckoutUseCase) ClearCart(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidBuyer
	}
	return u.carts.Delete(ctx, userID)
}

// view resolves every cart line against current state. Lines that no longer
// project to a listing are reported, not dropped, so the buyer sees why.
func (u *CheckoutUseCase) view(ctx context.Context, cart entities.Cart) (CartView, error) {
	items, unavailable, err := u.resolveLines(ctx, cart)
	if err != nil {
		return CartView{}, err
	}
	prices := make([]float64, 0, len(items))
	for _, l := range items {
		prices = append(prices, l.Price)
	}
	return CartView{
		UserID:      cart.UserID,
		Items:       items,
		Unavailable: unavailable,
		Subtotal:    ledger.Totals(prices, 0, 0).Subtotal,
	}, nil
}

func (u *CheckoutUseCase) resolveLines(ctx context.Context, cart entities.Cart) ([]entities.Listing, []string, error) {
	items := make([]entities.Listing, 0, len(cart.Lines))
	var unavailable []string
	for _, line := range cart.Lines {
		l, _, _, err := u.listings.Resolve(ctx, line.ListingID)
		if errors.Is(err, ErrListingNotFound) {
			unavailable = append(unavailable, line.ListingID)
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		items = append(items, l)
	}
	return items, unavailable, nil
}

// Quote prices the cart for a delivery option. Any unavailable line fails the
// quote.
func (u *CheckoutUseCase) Quote(ctx context.Context, userID string, d Delivery) (Quote, error) {
	if strings.TrimSpace(userID) == "" {
		return Quote{}, ErrInvalidBuyer
	}
	cart, err := u.carts.Get(ctx, userID)
	if err != nil {
		return Quote{}, err
	}
	if len(cart.Lines) == 0 {
		return Quote{}, ErrEmptyCart
	}
	items, unavailable, err := u.resolveLines(ctx, cart)
	if err != nil {
		return Quote{}, err
	}
	if len(unavailable) > 0 {
		return Quote{}, &UnavailableError{ListingIDs: unavailable}
	}

	var fee float64
	var service string
	switch d.Type {
	case entities.DeliveryPickup, "":
		d.Type = entities.DeliveryPickup
	case entities.DeliveryShipping:
		if d.Address == nil || strings.TrimSpace(d.Address.PostalCode) == "" {
			return Quote{}, ErrInvalidDelivery
		}
		if u.shipping == nil {
			return Quote{}, ErrShippingUnavailable
		}
		q, err := u.shipping.Quote(ctx, interfaces.ShipmentRequest{
			Destination: *d.Address,
			Packages:    len(items),
			WeightLbs:   ledger.ShippingWeight(len(items)),
		})
		if err != nil {
			logger.Component(ctx, "checkout", "usecase").WithError(err).Warn("shipping quote failed")
			return Quote{}, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
		}
		fee, service = q.Amount, q.Service
	default:
		return Quote{}, ErrInvalidDelivery
	}

	prices := make([]float64, 0, len(items))
	for _, l := range items {
		prices = append(prices, l.Price)
	}
	return Quote{
		OrderTotals:     ledger.Totals(prices, fee, u.taxRate),
		Items:           items,
		DeliveryType:    d.Type,
		ShippingService: service,
	}, nil
}

// Checkout snapshots the quoted cart into a pending order and opens a hosted
// checkout for it. Nothing is marked sold here; that happens when the payment
// is confirmed.
func (u *CheckoutUseCase) Checkout(ctx context.Context, userID string, in CheckoutInput) (entities.Order, error) {
	if u.gateway == nil {
		return entities.Order{}, ErrGatewayNotConfigured
	}
	q, err := u.Quote(ctx, userID, in.Delivery)
	if err != nil {
		return entities.Order{}, err
	}

	now := u.now()
	order := entities.Order{
		ID:                uuid.NewString(),
		UserID:            userID,
		BuyerName:         strings.TrimSpace(in.BuyerName),
		BuyerEmail:        strings.TrimSpace(in.BuyerEmail),
		Items:             make([]entities.OrderItem, 0, len(q.Items)),
		Subtotal:          q.Subtotal,
		DeliveryFee:       q.DeliveryFee,
		Tax:               q.Tax,
		Total:             q.Total,
		DeliveryType:      q.DeliveryType,
		PaymentStatus:     entities.PaymentStatusPending,
		FulfillmentStatus: entities.FulfillmentPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if q.DeliveryType == entities.DeliveryShipping {
		order.ShippingAddress = in.Delivery.Address
	}
	lines := make([]interfaces.CheckoutLine, 0, len(q.Items)+2)
	for _, l := range q.Items {
		photo := ""
		if len(l.Photos) > 0 {
			photo = l.Photos[0]
		}
		order.Items = append(order.Items, entities.OrderItem{
			ListingID:      l.ID,
			ItemDocumentID: l.ItemDocumentID,
			JobID:          l.JobID,
			ItemNumber:     l.ItemNumber,
			PhotoIndices:   l.PhotoIndices,
			Title:          l.Title,
			PhotoURL:       photo,
			UnitPrice:      l.Price,
			Quantity:       1,
		})
		lines = append(lines, interfaces.CheckoutLine{ID: l.ID, Title: l.Title, PictureURL: photo, Quantity: 1, UnitPrice: l.Price})
	}
	if q.DeliveryFee > 0 {
		lines = append(lines, interfaces.CheckoutLine{ID: "delivery", Title: "Delivery", Quantity: 1, UnitPrice: q.DeliveryFee})
	}
	if q.Tax > 0 {
		lines = append(lines, interfaces.CheckoutLine{ID: "tax", Title: "Sales tax", Quantity: 1, UnitPrice: q.Tax})
	}

	order, err = u.orders.Create(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}
	log := logger.Component(ctx, "checkout", "usecase").WithFields(logger.Fields{
		logger.FieldOrderID: order.ID, "total": order.Total, "items": len(order.Items),
	})

	session, err := u.gateway.CreateCheckout(ctx, interfaces.CheckoutRequest{
		ExternalReference: OrderReference(order.ID),
		Lines:             lines,
		PayerEmail:        order.BuyerEmail,
		Metadata:          map[string]any{"order_id": order.ID, "user_id": userID},
	})
	if err != nil {
		log.WithError(err).Error("checkout session failed")
		order.PaymentStatus = entities.PaymentStatusFailed
		order.UpdatedAt = u.now()
		if _, uerr := u.orders.Update(ctx, order, entities.PaymentStatusPending); uerr != nil {
			log.WithError(uerr).Warn("could not mark order failed")
		}
		return entities.Order{}, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	order.ProviderCheckoutID = session.ID
	order.CheckoutURL = session.URL
	order.UpdatedAt = u.now()
	order, err = u.orders.Update(ctx, order, entities.PaymentStatusPending)
	if err != nil {
		return entities.Order{}, err
	}
	log.Info("checkout opened")
	return order, nil
}

func (u *CheckoutUseCase) GetOrder(ctx context.Context, userID, orderID string) (entities.Order, error) {
	o, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if userID != "" && o.UserID != userID {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *CheckoutUseCase) ListOrders(ctx context.Context, userID string) ([]entities.Order, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidBuyer
	}
	return u.orders.ListByUserID(ctx, userID)
}

// UpdateFulfillment is an agent operation on paid orders.
func (u *CheckoutUseCase) UpdateFulfillment(ctx context.Context, orderID string, status entities.FulfillmentStatus) (entities.Order, error) {
	if !status.Valid() {
		return entities.Order{}, ErrInvalidFulfillment
	}
	o, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.PaymentStatus != entities.PaymentStatusPaid {
		return entities.Order{}, &ledger.StateError{Err: ErrOrderNotPaid, Current: string(o.PaymentStatus)}
	}
	o.FulfillmentStatus = status
	o.UpdatedAt = u.now()
	return u.orders.Update(ctx, o, entities.PaymentStatusPaid)
}

func (u *CheckoutUseCase) loadOrder(ctx context.Context, id string) (entities.Order, error) {
	if strings.TrimSpace(id) == "" {
		return entities.Order{}, ErrInvalidID
	}
	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}
