package response

import (
	"kept_house/internal/domain/entities"
	"kept_house/internal/domain/ledger"
)

// ItemDocumentResponse reports each approved item with its effective
// disposition, so clients never derive "sold" themselves.
type ItemDocumentResponse struct {
	entities.ItemDocument
	ApprovedItems []entities.ApprovedItem `json:"approved_items"`
}

func FromItemDocument(d entities.ItemDocument) ItemDocumentResponse {
	items := make([]entities.ApprovedItem, 0, len(d.ApprovedItems))
	for _, it := range d.ApprovedItems {
		it.Disposition = ledger.EffectiveDisposition(it, d)
		items = append(items, it)
	}
	return ItemDocumentResponse{ItemDocument: d, ApprovedItems: items}
}

func FromItemDocuments(docs []entities.ItemDocument) []ItemDocumentResponse {
	out := make([]ItemDocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, FromItemDocument(d))
	}
	return out
}

type DispositionResponse struct {
	Document  ItemDocumentResponse `json:"document"`
	Updated   int                  `json:"updated"`
	NewlySold []int                `json:"newly_sold,omitempty"`
}
