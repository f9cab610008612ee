package request

import (
	"encoding/json"
	"testing"

	"kept_house/internal/domain/entities"
)

func TestPaymentNotification_ResolvePaymentID(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		dataID  string
		queryID string
		want    string
	}{
		{name: "string id", body: `{"type":"payment","data":{"id":"123"}}`, want: "123"},
		{name: "numeric id", body: `{"type":"payment","data":{"id":456}}`, want: "456"},
		{name: "query data.id", body: `{}`, dataID: " 789 ", want: "789"},
		{name: "legacy id", body: `{}`, queryID: "42", want: "42"},
		{name: "blank string falls through", body: `{"data":{"id":"  "}}`, queryID: "7", want: "7"},
		{name: "nothing", body: `{}`, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n PaymentNotification
			if err := json.Unmarshal([]byte(tt.body), &n); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := n.ResolvePaymentID(tt.dataID, tt.queryID); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPaymentNotification_IsPayment(t *testing.T) {
	if !(PaymentNotification{Type: "payment"}).IsPayment("") {
		t.Fatalf("expected payment type to be accepted")
	}
	if (PaymentNotification{Type: "merchant_order"}).IsPayment("") {
		t.Fatalf("expected merchant_order to be ignored")
	}
	if !(PaymentNotification{}).IsPayment("payment") {
		t.Fatalf("expected query topic to be used")
	}
}

func TestDeliveryRequest_DefaultsCountry(t *testing.T) {
	d := DeliveryRequest{
		Type:    "shipping",
		Address: &AddressRequest{Line1: " 1 Main St ", City: "Portland", State: "OR", PostalCode: "97201"},
	}.ToDelivery()

	if d.Type != entities.DeliveryShipping {
		t.Fatalf("unexpected type %q", d.Type)
	}
	if d.Address == nil || d.Address.Country != "US" || d.Address.Line1 != "1 Main St" {
		t.Fatalf("unexpected address: %+v", d.Address)
	}

	pickup := DeliveryRequest{Type: "pickup"}.ToDelivery()
	if pickup.Address != nil {
		t.Fatalf("pickup should carry no address")
	}
}

func TestApproveRequest_ToEntities(t *testing.T) {
	price := 40.0
	items := ApproveRequest{Items: []ApprovedItemRequest{
		{PhotoIndices: []int{0, 1}, Title: "Chair", Category: "furniture", Price: &price},
	}}.ToEntities()

	if len(items) != 1 || items[0].Price == nil || *items[0].Price != 40 {
		t.Fatalf("unexpected items: %+v", items)
	}
	if items[0].ItemNumber != 0 {
		t.Fatalf("item numbers are assigned on approval, got %d", items[0].ItemNumber)
	}
}
