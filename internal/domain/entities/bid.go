package entities

import "time"

// BidType is the independent work track a bid applies to.
// An empty BidType marks a legacy bid that collides with both tracks.
type BidType string

const (
	BidTypeDonation BidType = "donation"
	BidTypeHauling  BidType = "hauling"
)

type BidStatus string

const (
	BidStatusSubmitted BidStatus = "submitted"
	BidStatusAccepted  BidStatus = "accepted"
	BidStatusRejected  BidStatus = "rejected"
)

// Bid is a vendor's offer to haul or pick up donations for a job.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (job_id-index): job_id
//   - GSI (vendor_id-index): vendor_id
type Bid struct {
	ID            string     `json:"id"`
	JobID         string     `json:"job_id"`
	VendorID      string     `json:"vendor_id"`
	BidType       BidType    `json:"bid_type,omitempty"`
	Amount        float64    `json:"amount"`
	Notes         string     `json:"notes,omitempty"`
	Status        BidStatus  `json:"status"`
	AcceptedAt    *time.Time `json:"accepted_at,omitempty"`
	RejectedAt    *time.Time `json:"rejected_at,omitempty"`
	WorkCompleted bool       `json:"work_completed"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	IsPaid        bool       `json:"is_paid"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	PaidAmount    float64    `json:"paid_amount,omitempty"`
	Version       int64      `json:"version"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
