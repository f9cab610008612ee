package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"kept_house/internal/adapter/http/handlers/mocks"
	"kept_house/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newWebhookRouter(t *testing.T, verify SignatureVerifier) (*gin.Engine, *mocks.MockISettlementUseCase) {
	ctrl := gomock.NewController(t)
	settlement := mocks.NewMockISettlementUseCase(ctrl)
	h := NewWebhookHandler(settlement, verify)

	r := newTestRouter()
	r.POST("/v1/webhooks/mercadopago", h.MercadoPagoNotification)
	return r, settlement
}

func TestWebhookHandler_MercadoPagoNotification(t *testing.T) {
	t.Run("non payment topic is acknowledged", func(t *testing.T) {
		r, _ := newWebhookRouter(t, nil)
		w := doJSON(r, http.MethodPost, "/v1/webhooks/mercadopago", `{"type":"merchant_order","data":{"id":"1"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing payment id", func(t *testing.T) {
		r, _ := newWebhookRouter(t, nil)
		w := doJSON(r, http.MethodPost, "/v1/webhooks/mercadopago", `{"type":"payment"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad signature", func(t *testing.T) {
		verify := func(header, requestID, dataID string) error {
			if header != "ts=1,v1=bad" || requestID != "req-1" || dataID != "123" {
				t.Fatalf("unexpected verify args %q %q %q", header, requestID, dataID)
			}
			return errors.New("mismatch")
		}
		r, _ := newWebhookRouter(t, verify)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago", bytes.NewBufferString(`{"type":"payment","data":{"id":"123"}}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-signature", "ts=1,v1=bad")
		req.Header.Set("x-request-id", "req-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("query string delivery", func(t *testing.T) {
		r, settlement := newWebhookRouter(t, nil)
		settlement.EXPECT().HandlePaymentNotification(gomock.Any(), "789").
			Return(usecase.SettlementResult{Action: usecase.ActionSettled, Reference: "order:ord-1", PaymentID: "789"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/webhooks/mercadopago?topic=payment&id=789", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("provider unreachable asks for redelivery", func(t *testing.T) {
		r, settlement := newWebhookRouter(t, nil)
		settlement.EXPECT().HandlePaymentNotification(gomock.Any(), "456").
			Return(usecase.SettlementResult{}, fmt.Errorf("%w: timeout", usecase.ErrUpstreamUnavailable))

		w := doJSON(r, http.MethodPost, "/v1/webhooks/mercadopago", `{"type":"payment","data":{"id":456}}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("duplicate delivery", func(t *testing.T) {
		r, settlement := newWebhookRouter(t, nil)
		settlement.EXPECT().HandlePaymentNotification(gomock.Any(), "123").
			Return(usecase.SettlementResult{Action: usecase.ActionDuplicate, PaymentID: "123"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/webhooks/mercadopago", `{"type":"payment","action":"payment.updated","data":{"id":"123"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
