package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"kept_house/internal/domain/ledger"
	"kept_house/internal/domain/marketplace"
	"kept_house/internal/usecase"
	"kept_house/internal/usecase/interfaces"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "job not found", err: usecase.ErrJobNotFound, status: http.StatusNotFound, code: "JOB_NOT_FOUND"},
		{name: "wrapped not found", err: fmt.Errorf("load: %w", usecase.ErrOrderNotFound), status: http.StatusNotFound, code: "ORDER_NOT_FOUND"},
		{name: "bad listing id", err: marketplace.ErrInvalidListingID, status: http.StatusNotFound, code: "LISTING_NOT_FOUND"},
		{name: "invalid amount", err: ledger.ErrInvalidAmount, status: http.StatusBadRequest, code: "INVALID_REQUEST"},
		{name: "missing query", err: marketplace.ErrMissingQuery, status: http.StatusBadRequest, code: "INVALID_REQUEST"},
		{name: "duplicate bid", err: usecase.ErrDuplicateBid, status: http.StatusConflict, code: "CONFLICT"},
		{name: "no matching items", err: ledger.ErrNoMatchingItems, status: http.StatusConflict, code: "CONFLICT"},
		{name: "busy", err: usecase.ErrBusy, status: http.StatusConflict, code: "BUSY"},
		{name: "version conflict", err: interfaces.ErrConcurrentUpdate, status: http.StatusConflict, code: "BUSY"},
		{name: "shipping", err: usecase.ErrShippingUnavailable, status: http.StatusServiceUnavailable, code: "SHIPPING_UNAVAILABLE"},
		{name: "gateway", err: usecase.ErrGatewayNotConfigured, status: http.StatusServiceUnavailable, code: "PAYMENTS_UNAVAILABLE"},
		{name: "upstream", err: fmt.Errorf("%w: timeout", usecase.ErrUpstreamUnavailable), status: http.StatusBadGateway, code: "UPSTREAM_UNAVAILABLE"},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.err)
			if got.HTTPStatus != tt.status || got.Code != tt.code {
				t.Fatalf("expected %d %s, got %d %s", tt.status, tt.code, got.HTTPStatus, got.Code)
			}
		})
	}
}

func TestMapError_StateErrorCarriesCurrentStatus(t *testing.T) {
	err := fmt.Errorf("accept: %w", &ledger.StateError{Err: ledger.ErrBidNotSubmitted, Current: "rejected"})

	got := mapError(err)
	if got.HTTPStatus != http.StatusConflict || got.Code != "INVALID_STATE" {
		t.Fatalf("expected 409 INVALID_STATE, got %d %s", got.HTTPStatus, got.Code)
	}
	if got.Details["current_status"] != "rejected" {
		t.Fatalf("expected current_status detail, got %v", got.Details)
	}
}

func TestMapError_UnavailableListsListings(t *testing.T) {
	got := mapError(&usecase.UnavailableError{ListingIDs: []string{"doc-1_2"}})
	if got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409, got %d", got.HTTPStatus)
	}
	ids, ok := got.Details["listing_ids"].([]string)
	if !ok || len(ids) != 1 || ids[0] != "doc-1_2" {
		t.Fatalf("expected listing_ids detail, got %v", got.Details)
	}
}
