package marketplace

import (
	"errors"
	"sort"
	"strings"

	"kept_house/internal/domain/entities"
)

const (
	DefaultLimit = 24
	MaxLimit     = 48
	RelatedLimit = 12
)

type SortOrder string

const (
	SortNewest    SortOrder = "new"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
)

var ErrMissingQuery = errors.New("search query is required")

type Filter struct {
	Query    string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Sort     SortOrder
	Page     int
	Limit    int
}

type Page struct {
	Items      []entities.Listing `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}

func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// Browse filters, sorts and paginates listings.
func Browse(all []entities.Listing, f Filter) Page {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	category := strings.TrimSpace(f.Category)

	out := make([]entities.Listing, 0, len(all))
	for _, l := range all {
		if category != "" && !strings.EqualFold(l.Category, category) {
			continue
		}
		if f.MinPrice != nil && l.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && l.Price > *f.MaxPrice {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(l.Title), q) && !strings.Contains(strings.ToLower(l.Description), q) {
			continue
		}
		out = append(out, l)
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	default:
		sortNewest(out)
	}
	return paginate(out, f.Page, f.Limit)
}

// Related returns up to RelatedLimit other listings, same category first.
func Related(all []entities.Listing, target entities.Listing) []entities.Listing {
	var same, other []entities.Listing
	for _, l := range all {
		if l.ID == target.ID {
			continue
		}
		if target.Category != "" && strings.EqualFold(l.Category, target.Category) {
			same = append(same, l)
		} else {
			other = append(other, l)
		}
	}
	sortNewest(same)
	sortNewest(other)
	out := append(same, other...)
	if len(out) > RelatedLimit {
		out = out[:RelatedLimit]
	}
	return out
}

// Search ranks listings by relevance to query.
//
// Title scoring takes the best of exact (100), prefix (50) and contains (25);
// a description hit adds 10. Listings scoring zero are dropped.
func Search(all []entities.Listing, query string, page, limit int) (Page, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Page{}, ErrMissingQuery
	}

	type scored struct {
		l     entities.Listing
		score int
	}
	hits := make([]scored, 0)
	for _, l := range all {
		if s := Relevance(l, q); s > 0 {
			hits = append(hits, scored{l: l, score: s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].l.CreatedAt.After(hits[j].l.CreatedAt)
	})

	out := make([]entities.Listing, len(hits))
	for i, h := range hits {
		out[i] = h.l
	}
	return paginate(out, page, limit), nil
}

// Relevance scores one listing against a lower-cased query.
func Relevance(l entities.Listing, q string) int {
	title := strings.ToLower(l.Title)
	score := 0
	switch {
	case title == q:
		score = 100
	case strings.HasPrefix(title, q):
		score = 50
	case strings.Contains(title, q):
		score = 25
	}
	if strings.Contains(strings.ToLower(l.Description), q) {
		score += 10
	}
	return score
}

func sortNewest(ls []entities.Listing) {
	sort.SliceStable(ls, func(i, j int) bool {
		if !ls[i].CreatedAt.Equal(ls[j].CreatedAt) {
			return ls[i].CreatedAt.After(ls[j].CreatedAt)
		}
		if ls[i].ItemDocumentID != ls[j].ItemDocumentID {
			return ls[i].ItemDocumentID < ls[j].ItemDocumentID
		}
		return ls[i].ItemNumber < ls[j].ItemNumber
	})
}

func paginate(ls []entities.Listing, page, limit int) Page {
	page, limit = normalizePaging(page, limit)
	total := len(ls)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	pages := (total + limit - 1) / limit
	return Page{
		Items:      ls[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: pages,
	}
}
