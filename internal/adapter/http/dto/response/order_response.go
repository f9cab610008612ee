package response

import "kept_house/internal/domain/entities"

type OrderResponse struct {
	entities.Order
	ShortRef string `json:"short_ref"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{Order: o, ShortRef: o.ShortRef()}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
