package request

import (
	"encoding/json"
	"strings"
)

// PaymentNotification is the Mercado Pago webhook body. Older IPN deliveries
// carry the id only in the query string, so ResolvePaymentID takes both.
type PaymentNotification struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID json.RawMessage `json:"id"`
	} `json:"data"`
}

// IsPayment reports whether the notification is about a payment. Empty types
// are accepted because some deliveries omit them.
func (n PaymentNotification) IsPayment(queryTopic string) bool {
	t := strings.TrimSpace(n.Type)
	if t == "" {
		t = strings.TrimSpace(queryTopic)
	}
	return t == "" || t == "payment"
}

// ResolvePaymentID prefers data.id from the body (string or number), then the
// data.id and id query parameters.
func (n PaymentNotification) ResolvePaymentID(queryDataID, queryID string) string {
	if raw := strings.TrimSpace(string(n.Data.ID)); raw != "" && raw != "null" {
		var s string
		if err := json.Unmarshal(n.Data.ID, &s); err == nil {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		} else {
			return raw
		}
	}
	if v := strings.TrimSpace(queryDataID); v != "" {
		return v
	}
	return strings.TrimSpace(queryID)
}
