package shipping

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"kept_house/internal/domain/entities"
	appconfig "kept_house/internal/infrastructure/config"
	"kept_house/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fedexServer(t *testing.T, tokenCalls *int32, rates string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/token":
			atomic.AddInt32(tokenCalls, 1)
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"tok","expires_in":3600}`))
		case "/rate/v1/rates/quotes":
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			var body rateRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "98101", body.RequestedShipment.Recipient.Address.PostalCode)
			assert.Len(t, body.RequestedShipment.RequestedPackageLineItems, 2)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(rates))
		default:
			http.NotFound(w, r)
		}
	}))
}

func testConfig(url string) appconfig.ShippingConfig {
	return appconfig.ShippingConfig{
		BaseURL:       url,
		ClientID:      "id",
		ClientSecret:  "secret",
		AccountNumber: "123",
		Origin:        appconfig.OriginConfig{PostalCode: "97201", State: "OR", Country: "US"},
		Timeout:       2 * time.Second,
		FlatRate:      25,
	}
}

func shipment() interfaces.ShipmentRequest {
	return interfaces.ShipmentRequest{
		Destination: entities.Address{PostalCode: "98101", State: "WA", Country: "US"},
		Packages:    2,
		WeightLbs:   10,
	}
}

func TestFedExQuoter_PicksCheapestAndCachesToken(t *testing.T) {
	var tokenCalls int32
	rates := `{"output":{"rateReplyDetails":[
		{"serviceType":"FEDEX_2_DAY","ratedShipmentDetails":[{"totalNetCharge":41.2,"currency":"USD"}]},
		{"serviceType":"FEDEX_GROUND","ratedShipmentDetails":[{"totalNetCharge":18.75,"currency":"USD"}]}]}}`
	srv := fedexServer(t, &tokenCalls, rates, http.StatusOK)
	defer srv.Close()

	q := NewFedExQuoter(testConfig(srv.URL))
	for i := 0; i < 2; i++ {
		got, err := q.Quote(context.Background(), shipment())
		require.NoError(t, err)
		assert.Equal(t, 18.75, got.Amount)
		assert.Equal(t, "FEDEX_GROUND", got.Service)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenCalls))
}

func TestFedExQuoter_NoRates(t *testing.T) {
	var tokenCalls int32
	srv := fedexServer(t, &tokenCalls, `{"output":{"rateReplyDetails":[]}}`, http.StatusOK)
	defer srv.Close()

	_, err := NewFedExQuoter(testConfig(srv.URL)).Quote(context.Background(), shipment())
	assert.ErrorIs(t, err, ErrNoRates)
}

func TestFedExQuoter_RejectsMissingPostalCode(t *testing.T) {
	req := shipment()
	req.Destination.PostalCode = ""
	_, err := NewFedExQuoter(testConfig("http://unused")).Quote(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidQuote)
}

func TestFallbackQuoter_UsesFlatRateOnFailure(t *testing.T) {
	var tokenCalls int32
	srv := fedexServer(t, &tokenCalls, `{"errors":[{"code":"BAD","message":"nope"}]}`, http.StatusBadRequest)
	defer srv.Close()

	q := New(testConfig(srv.URL))
	got, err := q.Quote(context.Background(), shipment())
	require.NoError(t, err)
	assert.Equal(t, 50.0, got.Amount)
	assert.Equal(t, FlatRateService, got.Service)
}

func TestNew_WithoutCredentialsIsFlatRate(t *testing.T) {
	cfg := testConfig("")
	cfg.ClientID = ""
	q := New(cfg)
	_, ok := q.(FlatRateQuoter)
	assert.True(t, ok)
}
