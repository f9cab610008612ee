package request

import "kept_house/internal/domain/entities"

type CreateItemDocumentRequest struct {
	JobID  string   `json:"job_id" binding:"required"`
	Title  string   `json:"title"`
	Photos []string `json:"photos"`
}

type AddPhotosRequest struct {
	Photos []string `json:"photos" binding:"required,min=1"`
}

// AnalyzeRequest groups photo indices per item. Without groups every photo
// not yet approved is analyzed on its own.
type AnalyzeRequest struct {
	Groups [][]int `json:"groups"`
}

type ApprovedItemRequest struct {
	PhotoIndices    []int    `json:"photo_indices"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Price           *float64 `json:"price"`
	PriceLow        float64  `json:"price_low"`
	PriceHigh       float64  `json:"price_high"`
	EstateSalePrice *float64 `json:"estate_sale_price"`
}

type ApproveRequest struct {
	Items []ApprovedItemRequest `json:"items"`
}

func (r ApproveRequest) ToEntities() []entities.ApprovedItem {
	out := make([]entities.ApprovedItem, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, entities.ApprovedItem{
			PhotoIndices:    it.PhotoIndices,
			Title:           it.Title,
			Description:     it.Description,
			Category:        it.Category,
			Price:           it.Price,
			PriceLow:        it.PriceLow,
			PriceHigh:       it.PriceHigh,
			EstateSalePrice: it.EstateSalePrice,
		})
	}
	return out
}

type ReopenRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type PricingRequest struct {
	Price           *float64 `json:"price"`
	EstateSalePrice *float64 `json:"estate_sale_price"`
}

type MarkSoldRequest struct {
	PhotoIndices []int `json:"photo_indices" binding:"required,min=1"`
}

type DisposeRequest struct {
	ItemNumbers []int `json:"item_numbers" binding:"required,min=1"`
}
