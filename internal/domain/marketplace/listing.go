// Package marketplace projects approved items into buyer-facing listings and
// implements browse, related and search over them. It performs no I/O.
package marketplace

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"kept_house/internal/domain/entities"
	"kept_house/internal/domain/ledger"
)

var ErrInvalidListingID = errors.New("invalid listing id")

// ListingID joins an item document id and an item number.
func ListingID(docID string, itemNumber int) string {
	return docID + "_" + strconv.Itoa(itemNumber)
}

// ParseListingID splits on the last underscore so document ids may contain one.
func ParseListingID(id string) (docID string, itemNumber int, err error) {
	i := strings.LastIndex(id, "_")
	if i <= 0 || i == len(id)-1 {
		return "", 0, ErrInvalidListingID
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil || n <= 0 {
		return "", 0, ErrInvalidListingID
	}
	return id[:i], n, nil
}

// Project expands a document into the listings a buyer may see at now.
// Hidden jobs, unapproved documents and unavailable items yield nothing.
func Project(doc entities.ItemDocument, job entities.Job, now time.Time) []entities.Listing {
	if doc.Status != entities.ItemStatusApproved {
		return nil
	}
	status := ledger.SaleWindowStatus(job.SaleWindow, now)
	if !status.Visible {
		return nil
	}
	out := make([]entities.Listing, 0, len(doc.ApprovedItems))
	for _, it := range doc.ApprovedItems {
		if !ledger.IsAvailable(it, doc) {
			continue
		}
		out = append(out, toListing(doc, it, job, status.Phase, now))
	}
	return out
}

// ProjectOne resolves a single listing, reporting false for anything a buyer
// must not see.
func ProjectOne(doc entities.ItemDocument, itemNumber int, job entities.Job, now time.Time) (entities.Listing, bool) {
	for _, l := range Project(doc, job, now) {
		if l.ItemNumber == itemNumber {
			return l, true
		}
	}
	return entities.Listing{}, false
}

func toListing(doc entities.ItemDocument, it entities.ApprovedItem, job entities.Job, phase entities.SalePhase, now time.Time) entities.Listing {
	photos := make([]string, 0, len(it.PhotoIndices))
	for _, idx := range it.PhotoIndices {
		if idx >= 0 && idx < len(doc.Photos) {
			photos = append(photos, doc.Photos[idx])
		}
	}
	title := it.Title
	if title == "" {
		title = doc.Title
	}
	return entities.Listing{
		ID:             ListingID(doc.ID, it.ItemNumber),
		ItemDocumentID: doc.ID,
		JobID:          doc.JobID,
		ItemNumber:     it.ItemNumber,
		Title:          title,
		Description:    it.Description,
		Category:       it.Category,
		Price:          ledger.ResolvePrice(it, job, now),
		Phase:          phase,
		Photos:         photos,
		PhotoIndices:   append([]int(nil), it.PhotoIndices...),
		CreatedAt:      doc.CreatedAt,
	}
}
