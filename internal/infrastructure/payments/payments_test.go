package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"kept_house/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(secret, manifest string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	const secret = "s3cret"
	valid := "ts=1704908010,v1=" + sign(secret, "id:123456;request-id:req-1;ts:1704908010;")

	tests := []struct {
		name      string
		secret    string
		header    string
		requestID string
		dataID    string
		wantErr   bool
	}{
		{name: "valid", secret: secret, header: valid, requestID: "req-1", dataID: "123456"},
		{name: "verification disabled", secret: "", header: "garbage"},
		{name: "wrong data id", secret: secret, header: valid, requestID: "req-1", dataID: "999", wantErr: true},
		{name: "missing v1", secret: secret, header: "ts=1704908010", requestID: "req-1", dataID: "123456", wantErr: true},
		{name: "empty header", secret: secret, header: "", wantErr: true},
		{
			name:   "no request id",
			secret: secret,
			header: "ts=1,v1=" + sign(secret, "id:abc;ts:1;"),
			dataID: "ABC",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyWebhookSignature(tt.secret, tt.header, tt.requestID, tt.dataID)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSignature)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMockGateway_ApprovesKnownCheckout(t *testing.T) {
	g, err := NewMercadoPagoGateway(Options{Mock: true})
	require.NoError(t, err)

	session, err := g.CreateCheckout(context.Background(), interfaces.CheckoutRequest{
		ExternalReference: "order:o-1",
		Lines: []interfaces.CheckoutLine{
			{ID: "doc_1", Title: "Lamp", Quantity: 1, UnitPrice: 19.99},
			{ID: "tax", Title: "Tax", Quantity: 1, UnitPrice: 1.56},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session.URL)

	conf, err := g.GetPayment(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, interfaces.ProviderStatusApproved, conf.Status)
	assert.Equal(t, "order:o-1", conf.ExternalReference)
	assert.Equal(t, 21.55, conf.Amount)

	unknown, err := g.GetPayment(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, interfaces.ProviderStatusRejected, unknown.Status)
}

func TestNewMercadoPagoGateway_RequiresToken(t *testing.T) {
	_, err := NewMercadoPagoGateway(Options{})
	assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
}
