package entities

import "time"

// SalePhase is the pricing/visibility phase reported by the sale-window gate.
type SalePhase string

const (
	SalePhaseOnline       SalePhase = "online"
	SalePhaseEstate       SalePhase = "estate"
	SalePhaseBeforeOnline SalePhase = "before_online"
	SalePhaseBetween      SalePhase = "between"
)

// Listing is the marketplace projection of one available ApprovedItem.
// It is never stored.
type Listing struct {
	ID             string    `json:"id"`
	ItemDocumentID string    `json:"item_document_id"`
	JobID          string    `json:"job_id"`
	ItemNumber     int       `json:"item_number"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Price          float64   `json:"price"`
	Phase          SalePhase `json:"phase"`
	Photos         []string  `json:"photos"`
	PhotoIndices   []int     `json:"photo_indices"`
	CreatedAt      time.Time `json:"created_at"`
}
