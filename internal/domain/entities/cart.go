package entities

import "time"

type CartLine struct {
	ListingID string    `json:"listing_id"`
	AddedAt   time.Time `json:"added_at"`
}

// Cart is keyed by buyer id; listings are unique within a cart.
type Cart struct {
	UserID    string     `json:"user_id"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (c Cart) Has(listingID string) bool {
	for _, l := range c.Lines {
		if l.ListingID == listingID {
			return true
		}
	}
	return false
}
