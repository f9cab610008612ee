package interfaces

import (
	"context"
	"kept_house/internal/domain/entities"
)

type IVendorRepository interface {
	Create(ctx context.Context, v entities.Vendor) (entities.Vendor, error)
	GetByID(ctx context.Context, id string) (entities.Vendor, error)
	List(ctx context.Context) ([]entities.Vendor, error)
}
