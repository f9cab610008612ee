package interfaces

import (
	"context"
	"kept_house/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Update is conditioned on the stored payment status still being expected,
// which is what makes settlement at-most-once. A mismatch returns
// ErrConcurrentUpdate.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Order, error)
	Update(ctx context.Context, o entities.Order, expected entities.PaymentStatus) (entities.Order, error)
}
