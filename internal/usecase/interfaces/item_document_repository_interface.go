package interfaces

import (
	"context"
	"kept_house/internal/domain/entities"
)

// IItemDocumentRepository abstracts DynamoDB persistence for ItemDocument.
// Update follows the same version contract as IJobRepository.
type IItemDocumentRepository interface {
	Create(ctx context.Context, d entities.ItemDocument) (entities.ItemDocument, error)
	GetByID(ctx context.Context, id string) (entities.ItemDocument, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.ItemDocument, error)
	ListByStatus(ctx context.Context, status entities.ItemStatus) ([]entities.ItemDocument, error)
	Update(ctx context.Context, d entities.ItemDocument) (entities.ItemDocument, error)
}
