package usecase

import (
	"context"
	"errors"
	"testing"

	"kept_house/internal/domain/entities"
	"kept_house/internal/domain/ledger"
	"kept_house/internal/usecase/interfaces"
	mock_interfaces "kept_house/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type checkoutMocks struct {
	carts    *mock_interfaces.MockICartRepository
	orders   *mock_interfaces.MockIOrderRepository
	docs     *mock_interfaces.MockIItemDocumentRepository
	jobs     *mock_interfaces.MockIJobRepository
	shipping *mock_interfaces.MockIShippingQuoter
	gateway  *mock_interfaces.MockIPaymentGateway
}

func newCheckout(t *testing.T) (*CheckoutUseCase, checkoutMocks) {
	ctrl := gomock.NewController(t)
	m := checkoutMocks{
		carts:    mock_interfaces.NewMockICartRepository(ctrl),
		orders:   mock_interfaces.NewMockIOrderRepository(ctrl),
		docs:     mock_interfaces.NewMockIItemDocumentRepository(ctrl),
		jobs:     mock_interfaces.NewMockIJobRepository(ctrl),
		shipping: mock_interfaces.NewMockIShippingQuoter(ctrl),
		gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	market := NewMarketplaceUseCase(m.docs, m.jobs, nil)
	market.now = fixedClock
	uc := NewCheckoutUseCase(m.carts, m.orders, market, m.shipping, m.gateway, 0.078)
	uc.now = fixedClock

	m.docs.EXPECT().GetByID(gomock.Any(), "doc-1").Return(approvedDocument("doc-1", "job-1"), nil).AnyTimes()
	m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(activeJob("job-1"), nil).AnyTimes()
	return uc, m
}

func cartOf(userID string, ids ...string) entities.Cart {
	c := entities.Cart{UserID: userID}
	for _, id := range ids {
		c.Lines = append(c.Lines, entities.CartLine{ListingID: id, AddedAt: fixedNow})
	}
	return c
}

func TestCheckoutUseCase_AddToCart(t *testing.T) {
	t.Run("unknown listing", func(t *testing.T) {
		uc, m := newCheckout(t)
		m.docs.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.ItemDocument{}, nil)

		_, err := uc.AddToCart(context.Background(), "buyer-1", "nope_1")
		if !errors.Is(err, ErrListingNotFound) {
			t.Fatalf("expected ErrListingNotFound, got %v", err)
		}
	})

	t.Run("adding twice keeps one line", func(t *testing.T) {
		uc, m := newCheckout(t)
		m.carts.EXPECT().Get(gomock.Any(), "buyer-1").Return(cartOf("buyer-1", "doc-1_1"), nil)

		view, err := uc.AddToCart(context.Background(), "buyer-1", "doc-1_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(view.Items) != 1 || view.Subtotal != 120 {
			t.Fatalf("unexpected cart: %+v", view)
		}
	})
}

func TestCheckoutUseCase_Quote(t *testing.T) {
	t.Run("pickup taxes the subtotal", func(t *testing.T) {
		uc, m := newCheckout(t)
		m.carts.EXPECT().Get(gomock.Any(), "buyer-1").Return(cartOf("buyer-1", "doc-1_1", "doc-1_3"), nil)

		q, err := uc.Quote(context.Background(), "buyer-1", Delivery{Type: entities.DeliveryPickup})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := ledger.OrderTotals{Subtotal: 180, Tax: 14.04, Total: 194.04}
		if q.OrderTotals != want {
			t.Fatalf("expected %+v, got %+v", want, q.OrderTotals)
		}
	})

	t.Run("shipping adds carrier fee before tax", func(t *testing.T) {
		uc, m := newCheckout(t)
		m.carts.EXPECT().Get(gomock.Any(), "buyer-1").Return(cartOf("buyer-1", "doc-1_1", "doc-1_3"), nil)
		m.shipping.EXPECT().Quote(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req interfaces.ShipmentRequest) (interfaces.ShippingQuote, error) {
			if req.WeightLbs != 10 || req.Packages != 2 {
				t.Fatalf("unexpected shipment: %+v", req)
			}
			return interfaces.ShippingQuote{Amount: 25.5, Currency: "USD", Service: "FEDEX_GROUND"}, nil
		})

		q, err := uc.Quote(context.Background(), "buyer-1", Delivery{
			Type:    entities.DeliveryShipping,
			Address: &entities.Address{Line1: "1 Main", City: "Austin", State: "TX", PostalCode: "78701", Country: "US"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.DeliveryFee != 25.5 || q.Tax != 16.03 || q.Total != 221.53 {
			t.Fatalf("unexpected totals: %+v", q.OrderTotals)
		}
	})

	t.Run("shipping without address", func(t *testing.T) {
		uc, m := newCheckout(t)
		m.carts.EXPECT().Get(gomock.Any(), "buyer-1").Return(cartOf("buyer-1", "doc-1_1"), nil)

		_, err := uc.Quote(context.Background(), "buyer-1", Delivery{Type: entities.DeliveryShipping})
		if !errors.Is(err, ErrInvalidDelivery) {
			t.Fatalf("expected ErrInvalidDelivery, got %v", err)
		}
	})

	t.Run("unavailable line fails the quote", func(t *testing.T) {
		uc, m := newCheckout(t)
		m.carts.EXPECT().Get(gomock.Any(), "buyer-1").Return(cartOf("buyer-1", "doc-1_1", "doc-1_9"), nil)

		_, err := uc.Quote(context.Background(), "buyer-1", Delivery{})
		var ue *UnavailableError
		if !errors.As(err, &ue) || len(ue.ListingIDs) != 1 || ue.ListingIDs[0] != "doc-1_9" {
			t.Fatalf("expected unavailable doc-1_9, got %v", err)
		}
		if !errors.Is(err, ErrListingUnavailable) {
			t.Fatalf("expected ErrListingUnavailable, got %v", err)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		uc, m := newCheckout(t)
		m.carts.EXPECT().Get(gomock.Any(), "buyer-1").Return(entities.Cart{UserID: "buyer-1"}, nil)

		_, err := uc.Quote(context.Background(), "buyer-1", Delivery{})
		if !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
	})
}

func TestCheckoutUseCase_Checkout(t *testing.T) {
	t.Run("creates pending order and hosted checkout", func(t *testing.T) {
		uc, m := newCheckout(t)
		m.carts.EXPECT().Get(gomock.Any(), "buyer-1").Return(cartOf("buyer-1", "doc-1_1"), nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			if o.PaymentStatus != entities.PaymentStatusPending || len(o.Items) != 1 || o.Items[0].UnitPrice != 120 {
				t.Fatalf("unexpected order: %+v", o)
			}
			if o.Items[0].ItemDocumentID != "doc-1" || len(o.Items[0].PhotoIndices) != 2 {
				t.Fatalf("order item lacks sale snapshot: %+v", o.Items[0])
			}
			return o, nil
		})
		var ref string
		m.gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSession, error) {
			ref = req.ExternalReference
			return interfaces.CheckoutSession{ID: "pref-1", URL: "https://pay.example/pref-1"}, nil
		})
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any(), entities.PaymentStatusPending).DoAndReturn(func(_ context.Context, o entities.Order, _ entities.PaymentStatus) (entities.Order, error) {
			return o, nil
		})

		order, err := uc.Checkout(context.Background(), "buyer-1", CheckoutInput{Delivery: Delivery{Type: entities.DeliveryPickup}, BuyerEmail: "b@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.CheckoutURL != "https://pay.example/pref-1" || ref != "order:"+order.ID {
			t.Fatalf("unexpected order %+v ref %q", order, ref)
		}
	})

	t.Run("provider failure marks order failed", func(t *testing.T) {
		uc, m := newCheckout(t)
		m.carts.EXPECT().Get(gomock.Any(), "buyer-1").Return(cartOf("buyer-1", "doc-1_1"), nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil })
		m.gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(interfaces.CheckoutSession{}, errors.New("503"))
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any(), entities.PaymentStatusPending).DoAndReturn(func(_ context.Context, o entities.Order, _ entities.PaymentStatus) (entities.Order, error) {
			if o.PaymentStatus != entities.PaymentStatusFailed {
				t.Fatalf("expected failed order, got %s", o.PaymentStatus)
			}
			return o, nil
		})

		_, err := uc.Checkout(context.Background(), "buyer-1", CheckoutInput{})
		if !errors.Is(err, ErrUpstreamUnavailable) {
			t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
		}
	})
}

func TestCheckoutUseCase_UpdateFulfillment(t *testing.T) {
	t.Run("unpaid order", func(t *testing.T) {
		uc, m := newCheckout(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", PaymentStatus: entities.PaymentStatusPending}, nil)

		_, err := uc.UpdateFulfillment(context.Background(), "ord-1", entities.FulfillmentShipped)
		if !errors.Is(err, ErrOrderNotPaid) {
			t.Fatalf("expected ErrOrderNotPaid, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc, _ := newCheckout(t)
		_, err := uc.UpdateFulfillment(context.Background(), "ord-1", "lost")
		if !errors.Is(err, ErrInvalidFulfillment) {
			t.Fatalf("expected ErrInvalidFulfillment, got %v", err)
		}
	})
}

func TestCheckoutUseCase_GetOrder_OtherBuyer(t *testing.T) {
	uc, m := newCheckout(t)
	m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", UserID: "buyer-2"}, nil)

	_, err := uc.GetOrder(context.Background(), "buyer-1", "ord-1")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
