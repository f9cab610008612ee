package ledger

import (
	"sort"
	"time"

	"kept_house/internal/domain/entities"
)

// EffectiveDisposition derives an approved item's disposition at read time.
// Stored non-available values win; otherwise the item is sold when any of its
// photos is in the document's sold set.
func EffectiveDisposition(item entities.ApprovedItem, doc entities.ItemDocument) entities.Disposition {
	if item.Disposition != "" && item.Disposition != entities.DispositionAvailable {
		return item.Disposition
	}
	if intersects(doc.SoldPhotoIndices, item.PhotoIndices) {
		return entities.DispositionSold
	}
	return entities.DispositionAvailable
}

func IsAvailable(item entities.ApprovedItem, doc entities.ItemDocument) bool {
	return EffectiveDisposition(item, doc) == entities.DispositionAvailable
}

// CheckSellable rejects a sale attempt on an item that is no longer available.
func CheckSellable(item entities.ApprovedItem, doc entities.ItemDocument) error {
	if d := EffectiveDisposition(item, doc); d != entities.DispositionAvailable {
		return stateErr(ErrItemUnavailable, d)
	}
	return nil
}

// MarkSold unions indices into the sold set and stamps SoldAt the first time
// anything is sold. It returns the indices that were not already sold.
func MarkSold(doc *entities.ItemDocument, indices []int, now time.Time) ([]int, error) {
	for _, idx := range indices {
		if idx < 0 || idx >= len(doc.Photos) {
			return nil, ErrPhotoIndexOutOfRange
		}
	}
	var added []int
	doc.SoldPhotoIndices, added = union(doc.SoldPhotoIndices, indices)
	if doc.SoldAt == nil && len(doc.SoldPhotoIndices) > 0 {
		at := now.UTC()
		doc.SoldAt = &at
	}
	if doc.Status == entities.ItemStatusApproved && AllApprovedSold(*doc) {
		doc.Status = entities.ItemStatusSold
	}
	return added, nil
}

// MarkDisposed records donated or hauled on the available approved items whose
// numbers are listed. Items already sold or disposed are skipped. Zero updates
// is reported as ErrNoMatchingItems and leaves doc untouched.
func MarkDisposed(doc *entities.ItemDocument, itemNumbers []int, d entities.Disposition, actor string, now time.Time) (int, error) {
	if d != entities.DispositionDonated && d != entities.DispositionHauled {
		return 0, ErrInvalidDisposition
	}
	wanted := make(map[int]struct{}, len(itemNumbers))
	for _, n := range itemNumbers {
		wanted[n] = struct{}{}
	}

	at := now.UTC()
	items := make([]entities.ApprovedItem, len(doc.ApprovedItems))
	copy(items, doc.ApprovedItems)
	var touched []int
	updated := 0
	for i, it := range items {
		if _, ok := wanted[it.ItemNumber]; !ok || !IsAvailable(it, *doc) {
			continue
		}
		it.Disposition = d
		it.DispositionAt = &at
		it.DispositionBy = actor
		items[i] = it
		touched = append(touched, it.PhotoIndices...)
		updated++
	}
	if updated == 0 {
		return 0, ErrNoMatchingItems
	}

	doc.ApprovedItems = items
	if d == entities.DispositionDonated {
		doc.DonatedPhotoIndices, _ = union(doc.DonatedPhotoIndices, touched)
	} else {
		doc.HauledPhotoIndices, _ = union(doc.HauledPhotoIndices, touched)
	}
	return updated, nil
}

// AllApprovedSold reports whether the document has approved items and every
// one of them is sold.
func AllApprovedSold(doc entities.ItemDocument) bool {
	if len(doc.ApprovedItems) == 0 {
		return false
	}
	for _, it := range doc.ApprovedItems {
		if EffectiveDisposition(it, doc) != entities.DispositionSold {
			return false
		}
	}
	return true
}

type DispositionSummary struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Sold      int `json:"sold"`
	Donated   int `json:"donated"`
	Hauled    int `json:"hauled"`
}

func (s *DispositionSummary) Add(d entities.Disposition) {
	s.Total++
	switch d {
	case entities.DispositionSold:
		s.Sold++
	case entities.DispositionDonated:
		s.Donated++
	case entities.DispositionHauled:
		s.Hauled++
	default:
		s.Available++
	}
}

// union returns the sorted set a ∪ b and the members of b that were new.
func union(a, b []int) ([]int, []int) {
	set := make(map[int]struct{}, len(a)+len(b))
	for _, v := range a {
		set[v] = struct{}{}
	}
	var added []int
	for _, v := range b {
		if _, ok := set[v]; ok {
			continue
		}
		set[v] = struct{}{}
		added = append(added, v)
	}
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out, added
}

func intersects(a, b []int) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[int]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	for _, v := range b {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}
