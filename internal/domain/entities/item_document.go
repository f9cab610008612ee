package entities

import (
	"strings"
	"time"
)

// ItemStatus is the cataloguing lifecycle of an ItemDocument.
type ItemStatus string

const (
	ItemStatusDraft       ItemStatus = "draft"
	ItemStatusNeedsReview ItemStatus = "needs_review"
	ItemStatusApproved    ItemStatus = "approved"
	ItemStatusSold        ItemStatus = "sold"
)

// Disposition is the fate of an ApprovedItem.
//
// Only donated and hauled are stored facts. Sold is always derived from
// ItemDocument.SoldPhotoIndices.
type Disposition string

const (
	DispositionAvailable Disposition = "available"
	DispositionSold      Disposition = "sold"
	DispositionDonated   Disposition = "donated"
	DispositionHauled    Disposition = "hauled"
)

// Categories accepted from cataloguing. Anything else is stored as Misc.
var Categories = []string{
	"Furniture", "Tools", "Jewelry", "Art", "Electronics", "Outdoor",
	"Appliances", "Kitchen", "Collectibles", "Books/Media", "Clothing", "Misc",
}

const CategoryMisc = "Misc"

// NormalizeCategory maps a free-form category onto Categories (case-insensitive).
func NormalizeCategory(c string) string {
	for _, known := range Categories {
		if strings.EqualFold(known, strings.TrimSpace(c)) {
			return known
		}
	}
	return CategoryMisc
}

// Suggestion is a cataloguing proposal for one photo group.
type Suggestion struct {
	PhotoIndices []int   `json:"photo_indices"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	PriceLow     float64 `json:"price_low"`
	PriceHigh    float64 `json:"price_high"`
}

// ApprovedItem is an agent-confirmed sellable unit built from one photo group.
type ApprovedItem struct {
	ItemNumber      int         `json:"item_number"`
	PhotoIndices    []int       `json:"photo_indices"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Category        string      `json:"category"`
	Price           *float64    `json:"price,omitempty"`
	PriceLow        float64     `json:"price_low"`
	PriceHigh       float64     `json:"price_high"`
	EstateSalePrice *float64    `json:"estate_sale_price,omitempty"`
	Disposition     Disposition `json:"disposition,omitempty"`
	DispositionAt   *time.Time  `json:"disposition_at,omitempty"`
	DispositionBy   string      `json:"disposition_by,omitempty"`
}

type ReopenEvent struct {
	Reason string    `json:"reason"`
	By     string    `json:"by"`
	At     time.Time `json:"at"`
}

// ItemDocument is one catalogue unit uploaded for a job.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (job_id-index): job_id
//   - GSI (status-index): status
//
// A photo index belongs to at most one ApprovedItem.
type ItemDocument struct {
	ID                  string         `json:"id"`
	JobID               string         `json:"job_id"`
	Title               string         `json:"title,omitempty"`
	Photos              []string       `json:"photos"`
	Status              ItemStatus     `json:"status"`
	Suggestions         []Suggestion   `json:"suggestions,omitempty"`
	ApprovedItems       []ApprovedItem `json:"approved_items"`
	SoldPhotoIndices    []int          `json:"sold_photo_indices,omitempty"`
	DonatedPhotoIndices []int          `json:"donated_photo_indices,omitempty"`
	HauledPhotoIndices  []int          `json:"hauled_photo_indices,omitempty"`
	SoldAt              *time.Time     `json:"sold_at,omitempty"`
	ReopenHistory       []ReopenEvent  `json:"reopen_history,omitempty"`
	Version             int64          `json:"version"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// FindItem returns the approved item with the given number.
func (d ItemDocument) FindItem(itemNumber int) (ApprovedItem, bool) {
	for _, it := range d.ApprovedItems {
		if it.ItemNumber == itemNumber {
			return it, true
		}
	}
	return ApprovedItem{}, false
}
