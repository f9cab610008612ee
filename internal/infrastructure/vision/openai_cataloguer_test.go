package vision

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	appconfig "kept_house/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completion(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []any{map[string]any{"message": map[string]any{"content": content}}},
	})
	return string(b)
}

func TestSuggest_ParsesModelJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completion("```json\n{\"title\":\"Oak Dresser\",\"description\":\"Six drawers\",\"category\":\"furniture\",\"price_low\":80,\"price_high\":150}\n```")))
	}))
	defer srv.Close()

	c := NewOpenAICataloguer(appconfig.VisionConfig{BaseURL: srv.URL, APIKey: "key", Model: "test-model", Timeout: time.Second})
	got, err := c.Suggest(context.Background(), []string{"https://img/1.jpg", "https://img/2.jpg"})

	require.NoError(t, err)
	assert.Equal(t, "Oak Dresser", got.Title)
	assert.Equal(t, "Furniture", got.Category)
	assert.Equal(t, 80.0, got.PriceLow)
	assert.Equal(t, 150.0, got.PriceHigh)
}

func TestSuggest_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completion(`{"title":"Lamp","category":"Unknown","price_low":5,"price_high":2}`)))
	}))
	defer srv.Close()

	c := NewOpenAICataloguer(appconfig.VisionConfig{BaseURL: srv.URL, APIKey: "key", Timeout: 5 * time.Second})
	got, err := c.Suggest(context.Background(), []string{"https://img/1.jpg"})

	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, "Misc", got.Category)
	assert.Equal(t, 5.0, got.PriceHigh)
}

func TestSuggest_Errors(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		_, err := NewOpenAICataloguer(appconfig.VisionConfig{}).Suggest(context.Background(), []string{"u"})
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
	t.Run("no photos", func(t *testing.T) {
		_, err := NewOpenAICataloguer(appconfig.VisionConfig{APIKey: "k"}).Suggest(context.Background(), nil)
		assert.ErrorIs(t, err, ErrNoPhotos)
	})
	t.Run("client error is not retried", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"bad image"}}`))
		}))
		defer srv.Close()

		_, err := NewOpenAICataloguer(appconfig.VisionConfig{BaseURL: srv.URL, APIKey: "k"}).Suggest(context.Background(), []string{"u"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad image")
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})
}
