package ledger

import (
	"sort"
	"strings"
	"time"

	"kept_house/internal/domain/entities"
)

// AddPhotos appends uploaded photos and sends the document back to review.
func AddPhotos(doc *entities.ItemDocument, urls []string, now time.Time) {
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			doc.Photos = append(doc.Photos, u)
		}
	}
	if len(doc.Photos) > 0 {
		doc.Status = entities.ItemStatusNeedsReview
	}
	doc.UpdatedAt = now.UTC()
}

// Approve turns photo groups into approved items.
//
// From needs_review the new items are appended to the existing ones; from
// draft they replace them. Item numbers continue from the highest existing
// number.
func Approve(doc *entities.ItemDocument, groups []entities.ApprovedItem, now time.Time) ([]entities.ApprovedItem, error) {
	if len(groups) == 0 {
		return nil, ErrEmptyApproval
	}
	var base []entities.ApprovedItem
	switch doc.Status {
	case entities.ItemStatusNeedsReview:
		base = doc.ApprovedItems
	case entities.ItemStatusDraft:
	default:
		return nil, stateErr(ErrInvalidItemTransition, doc.Status)
	}

	taken := make(map[int]struct{})
	next := 1
	for _, it := range base {
		for _, idx := range it.PhotoIndices {
			taken[idx] = struct{}{}
		}
		if it.ItemNumber >= next {
			next = it.ItemNumber + 1
		}
	}

	created := make([]entities.ApprovedItem, 0, len(groups))
	for _, g := range groups {
		indices, err := normalizeGroup(g.PhotoIndices, len(doc.Photos), taken)
		if err != nil {
			return nil, err
		}
		created = append(created, entities.ApprovedItem{
			ItemNumber:      next,
			PhotoIndices:    indices,
			Title:           strings.TrimSpace(g.Title),
			Description:     strings.TrimSpace(g.Description),
			Category:        entities.NormalizeCategory(g.Category),
			Price:           g.Price,
			PriceLow:        g.PriceLow,
			PriceHigh:       g.PriceHigh,
			EstateSalePrice: g.EstateSalePrice,
		})
		next++
	}

	items := make([]entities.ApprovedItem, 0, len(base)+len(created))
	items = append(items, base...)
	doc.ApprovedItems = append(items, created...)
	doc.Status = entities.ItemStatusApproved
	doc.UpdatedAt = now.UTC()
	return created, nil
}

func normalizeGroup(indices []int, photos int, taken map[int]struct{}) ([]int, error) {
	if len(indices) == 0 {
		return nil, ErrEmptyPhotoGroup
	}
	seen := make(map[int]struct{}, len(indices))
	out := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= photos {
			return nil, ErrPhotoIndexOutOfRange
		}
		if _, dup := seen[idx]; dup {
			continue
		}
		if _, ok := taken[idx]; ok {
			return nil, ErrPhotoIndexTaken
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
	}
	for _, idx := range out {
		taken[idx] = struct{}{}
	}
	sort.Ints(out)
	return out, nil
}

// Reopen sends an approved document back to review and records why.
func Reopen(doc *entities.ItemDocument, reason, actor string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrReopenReasonRequired
	}
	if doc.Status != entities.ItemStatusApproved && doc.Status != entities.ItemStatusSold {
		return stateErr(ErrInvalidItemTransition, doc.Status)
	}
	at := now.UTC()
	doc.ReopenHistory = append(doc.ReopenHistory, entities.ReopenEvent{Reason: reason, By: actor, At: at})
	doc.Status = entities.ItemStatusNeedsReview
	doc.UpdatedAt = at
	return nil
}

// UpdatePricing sets agent-controlled prices on one approved item. Nil leaves
// a price unchanged.
func UpdatePricing(doc *entities.ItemDocument, itemNumber int, price, estateSalePrice *float64, now time.Time) (entities.ApprovedItem, error) {
	for _, p := range []*float64{price, estateSalePrice} {
		if p != nil && (!finite(*p) || *p < 0) {
			return entities.ApprovedItem{}, ErrInvalidAmount
		}
	}
	for i, it := range doc.ApprovedItems {
		if it.ItemNumber != itemNumber {
			continue
		}
		if price != nil {
			v := RoundCents(*price)
			it.Price = &v
		}
		if estateSalePrice != nil {
			v := RoundCents(*estateSalePrice)
			it.EstateSalePrice = &v
		}
		doc.ApprovedItems[i] = it
		doc.UpdatedAt = now.UTC()
		return it, nil
	}
	return entities.ApprovedItem{}, ErrItemNotFound
}
