package handlers

import (
	"net/http"
	"testing"

	"kept_house/internal/adapter/http/handlers/mocks"
	"kept_house/internal/adapter/http/middleware"
	"kept_house/internal/domain/entities"
	"kept_house/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCheckoutRouter(t *testing.T, buyer string) (*gin.Engine, *mocks.MockICheckoutUseCase, *mocks.MockISettlementUseCase) {
	ctrl := gomock.NewController(t)
	checkout := mocks.NewMockICheckoutUseCase(ctrl)
	settlement := mocks.NewMockISettlementUseCase(ctrl)
	h := NewCheckoutHandler(checkout, settlement)

	r := newTestRouter()
	if buyer != "" {
		r.Use(asActor(buyer, middleware.RoleBuyer))
	}
	r.GET("/v1/cart", h.GetCart)
	r.POST("/v1/cart/items", h.AddToCart)
	r.DELETE("/v1/cart/items/:listingID", h.RemoveFromCart)
	r.DELETE("/v1/cart", h.ClearCart)
	r.POST("/v1/checkout/quote", h.Quote)
	r.POST("/v1/checkout", h.Checkout)
	r.GET("/v1/orders", h.ListOrders)
	r.GET("/v1/orders/:orderID", h.GetOrder)
	r.PATCH("/v1/orders/:orderID/fulfillment", h.UpdateFulfillment)
	r.POST("/v1/orders/:orderID/refund", h.RefundOrder)
	return r, checkout, settlement
}

func TestCheckoutHandler_Cart(t *testing.T) {
	t.Run("requires a buyer", func(t *testing.T) {
		r, _, _ := newCheckoutRouter(t, "")
		w := doJSON(r, http.MethodGet, "/v1/cart", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("add sold listing", func(t *testing.T) {
		r, checkout, _ := newCheckoutRouter(t, "buyer-1")
		checkout.EXPECT().AddToCart(gomock.Any(), "buyer-1", "doc-1_1").Return(usecase.CartView{}, usecase.ErrListingNotFound)

		w := doJSON(r, http.MethodPost, "/v1/cart/items", `{"listing_id":"doc-1_1"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("add", func(t *testing.T) {
		r, checkout, _ := newCheckoutRouter(t, "buyer-1")
		checkout.EXPECT().AddToCart(gomock.Any(), "buyer-1", "doc-1_1").
			Return(usecase.CartView{UserID: "buyer-1", Items: []entities.Listing{{ID: "doc-1_1", Price: 40}}, Subtotal: 40}, nil)

		w := doJSON(r, http.MethodPost, "/v1/cart/items", `{"listing_id":" doc-1_1 "}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("remove", func(t *testing.T) {
		r, checkout, _ := newCheckoutRouter(t, "buyer-1")
		checkout.EXPECT().RemoveFromCart(gomock.Any(), "buyer-1", "doc-1_1").Return(usecase.CartView{UserID: "buyer-1"}, nil)

		w := doJSON(r, http.MethodDelete, "/v1/cart/items/doc-1_1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("clear", func(t *testing.T) {
		r, checkout, _ := newCheckoutRouter(t, "buyer-1")
		checkout.EXPECT().ClearCart(gomock.Any(), "buyer-1").Return(nil)

		w := doJSON(r, http.MethodDelete, "/v1/cart", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_Quote(t *testing.T) {
	t.Run("unknown delivery type", func(t *testing.T) {
		r, _, _ := newCheckoutRouter(t, "buyer-1")
		w := doJSON(r, http.MethodPost, "/v1/checkout/quote", `{"type":"drone"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("shipping unavailable", func(t *testing.T) {
		r, checkout, _ := newCheckoutRouter(t, "buyer-1")
		checkout.EXPECT().Quote(gomock.Any(), "buyer-1", gomock.Any()).Return(usecase.Quote{}, usecase.ErrShippingUnavailable)

		body := `{"type":"shipping","address":{"line1":"1 Main","city":"Austin","state":"TX","postal_code":"78701"}}`
		w := doJSON(r, http.MethodPost, "/v1/checkout/quote", body)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("pickup", func(t *testing.T) {
		r, checkout, _ := newCheckoutRouter(t, "buyer-1")
		checkout.EXPECT().Quote(gomock.Any(), "buyer-1", usecase.Delivery{Type: entities.DeliveryPickup}).
			Return(usecase.Quote{DeliveryType: entities.DeliveryPickup}, nil)

		w := doJSON(r, http.MethodPost, "/v1/checkout/quote", `{"type":"pickup"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_Checkout(t *testing.T) {
	t.Run("stale cart lists unavailable listings", func(t *testing.T) {
		r, checkout, _ := newCheckoutRouter(t, "buyer-1")
		checkout.EXPECT().Checkout(gomock.Any(), "buyer-1", gomock.Any()).
			Return(entities.Order{}, &usecase.UnavailableError{ListingIDs: []string{"doc-1_2"}})

		w := doJSON(r, http.MethodPost, "/v1/checkout", `{"delivery":{"type":"pickup"}}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		body := decodeError(t, w)
		ids, _ := body.Details["listing_ids"].([]any)
		if len(ids) != 1 || ids[0] != "doc-1_2" {
			t.Fatalf("expected listing_ids detail, got %v", body.Details)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		r, checkout, _ := newCheckoutRouter(t, "buyer-1")
		checkout.EXPECT().Checkout(gomock.Any(), "buyer-1", gomock.Any()).Return(entities.Order{}, usecase.ErrEmptyCart)

		w := doJSON(r, http.MethodPost, "/v1/checkout", `{"delivery":{"type":"pickup"}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		r, checkout, _ := newCheckoutRouter(t, "buyer-1")
		checkout.EXPECT().Checkout(gomock.Any(), "buyer-1", usecase.CheckoutInput{
			Delivery:   usecase.Delivery{Type: entities.DeliveryPickup},
			BuyerName:  "Sam",
			BuyerEmail: "sam@example.com",
		}).Return(entities.Order{ID: "ord-1", UserID: "buyer-1", PaymentStatus: entities.PaymentStatusPending}, nil)

		w := doJSON(r, http.MethodPost, "/v1/checkout", `{"delivery":{"type":"pickup"},"buyer_name":"Sam","buyer_email":"sam@example.com"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
	})
}

func TestCheckoutHandler_Orders(t *testing.T) {
	t.Run("foreign order", func(t *testing.T) {
		r, checkout, _ := newCheckoutRouter(t, "buyer-1")
		checkout.EXPECT().GetOrder(gomock.Any(), "buyer-1", "ord-2").Return(entities.Order{}, usecase.ErrOrderNotFound)

		w := doJSON(r, http.MethodGet, "/v1/orders/ord-2", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		r, checkout, _ := newCheckoutRouter(t, "buyer-1")
		checkout.EXPECT().ListOrders(gomock.Any(), "buyer-1").Return([]entities.Order{{ID: "ord-1"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/orders", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("fulfillment", func(t *testing.T) {
		r, checkout, _ := newCheckoutRouter(t, "agent-1")
		checkout.EXPECT().UpdateFulfillment(gomock.Any(), "ord-1", entities.FulfillmentShipped).
			Return(entities.Order{ID: "ord-1", FulfillmentStatus: entities.FulfillmentShipped}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/orders/ord-1/fulfillment", `{"status":"shipped"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("refund unpaid order", func(t *testing.T) {
		r, _, settlement := newCheckoutRouter(t, "agent-1")
		settlement.EXPECT().RefundOrder(gomock.Any(), "ord-1", "damaged").Return(entities.Order{}, usecase.ErrOrderNotPaid)

		w := doJSON(r, http.MethodPost, "/v1/orders/ord-1/refund", `{"reason":"damaged"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("refund", func(t *testing.T) {
		r, _, settlement := newCheckoutRouter(t, "agent-1")
		settlement.EXPECT().RefundOrder(gomock.Any(), "ord-1", "damaged").
			Return(entities.Order{ID: "ord-1", PaymentStatus: entities.PaymentStatusRefunded}, nil)

		w := doJSON(r, http.MethodPost, "/v1/orders/ord-1/refund", `{"reason":"damaged"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
