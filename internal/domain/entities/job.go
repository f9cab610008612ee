package entities

import "time"

// JobStatus is the lifecycle of an estate-sale engagement.
type JobStatus string

const (
	JobStatusAwaitingDeposit JobStatus = "awaiting_deposit"
	JobStatusActive          JobStatus = "active"
	JobStatusCompleted       JobStatus = "completed"
	JobStatusCancelled       JobStatus = "cancelled"
)

// JobStage is an informational workflow marker. It never drives finance.
type JobStage string

const (
	JobStageWalkthrough      JobStage = "walkthrough"
	JobStageStaging          JobStage = "staging"
	JobStageOnlineSale       JobStage = "online_sale"
	JobStageEstateSale       JobStage = "estate_sale"
	JobStageDonations        JobStage = "donations"
	JobStageHauling          JobStage = "hauling"
	JobStagePayoutProcessing JobStage = "payout_processing"
	JobStageClosing          JobStage = "closing"
)

var jobStages = map[JobStage]struct{}{
	JobStageWalkthrough:      {},
	JobStageStaging:          {},
	JobStageOnlineSale:       {},
	JobStageEstateSale:       {},
	JobStageDonations:        {},
	JobStageHauling:          {},
	JobStagePayoutProcessing: {},
	JobStageClosing:          {},
}

func (s JobStage) Valid() bool {
	_, ok := jobStages[s]
	return ok
}

// LedgerEntry is one line of the job's append-only finance trail.
// Expenses and refunds carry a negative amount. Ref is the idempotency
// marker of the external event that produced the entry, when there is one.
type LedgerEntry struct {
	Label  string    `json:"label"`
	Amount float64   `json:"amount"`
	At     time.Time `json:"at"`
	Ref    string    `json:"ref,omitempty"`
}

// JobFinance holds the aggregates derived from Daily.
// Fees is always commission(Gross) and Net is always recomputed; neither is
// ever written independently.
type JobFinance struct {
	Gross       float64       `json:"gross"`
	Fees        float64       `json:"fees"`
	HaulingCost float64       `json:"hauling_cost"`
	Net         float64       `json:"net"`
	Daily       []LedgerEntry `json:"daily"`
}

// HasRef reports whether an entry produced by the given event was already posted.
func (f JobFinance) HasRef(ref string) bool {
	if ref == "" {
		return false
	}
	for _, e := range f.Daily {
		if e.Ref == ref {
			return true
		}
	}
	return false
}

// SaleWindow configures marketplace visibility.
//
// OnlineSaleActive is a pointer because an unset flag means "active":
// only an explicit false hides the job.
type SaleWindow struct {
	OnlineSaleActive    *bool      `json:"is_online_sale_active,omitempty"`
	OnlineSaleStartDate *time.Time `json:"online_sale_start_date,omitempty"`
	OnlineSaleEndDate   *time.Time `json:"online_sale_end_date,omitempty"`
	EstateSaleDate      *time.Time `json:"estate_sale_date,omitempty"`
}

func (w SaleWindow) IsOnlineSaleActive() bool {
	return w.OnlineSaleActive == nil || *w.OnlineSaleActive
}

// Job is an estate-sale engagement persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (status-index): status
//
// Version guards every read-modify-write (optimistic locking).
type Job struct {
	ID              string     `json:"id"`
	ClientName      string     `json:"client_name"`
	ClientEmail     string     `json:"client_email,omitempty"`
	PropertyAddress string     `json:"property_address"`
	Status          JobStatus  `json:"status"`
	Stage           JobStage   `json:"stage"`
	ServiceFee      float64    `json:"service_fee"`
	DepositAmount   float64    `json:"deposit_amount"`
	DepositPaidAt   *time.Time `json:"deposit_paid_at,omitempty"`
	DepositRef      string     `json:"deposit_ref,omitempty"`
	SaleWindow
	Finance   JobFinance `json:"finance"`
	Version   int64      `json:"version"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
