package interfaces

import (
	"context"
	"kept_house/internal/domain/entities"
)

// ICartRepository stores one cart per buyer. Get returns an empty cart when
// the buyer has none.
type ICartRepository interface {
	Get(ctx context.Context, userID string) (entities.Cart, error)
	Save(ctx context.Context, c entities.Cart) error
	Delete(ctx context.Context, userID string) error
}
