package entities

import "time"

type EventType string

const (
	EventItemSold       EventType = "item.sold"
	EventBidAccepted    EventType = "bid.accepted"
	EventFinanceUpdated EventType = "finance.updated"
	EventOrderPaid      EventType = "order.paid"
	EventDepositPaid    EventType = "deposit.paid"
)

// DomainEvent is emitted after a ledger mutation commits. Delivery is best effort.
type DomainEvent struct {
	Type       EventType      `json:"type"`
	JobID      string         `json:"job_id,omitempty"`
	EntityID   string         `json:"entity_id"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}
