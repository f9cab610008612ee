package interfaces

import (
	"context"
	"kept_house/internal/domain/entities"
	"kept_house/internal/domain/ledger"
)

// IBidRepository abstracts DynamoDB persistence for Bid.
//
// ApplyAcceptance writes the accepted bid and every rejection in a single
// transaction; each write is conditioned on the bid still being submitted.
type IBidRepository interface {
	Create(ctx context.Context, b entities.Bid) (entities.Bid, error)
	GetByID(ctx context.Context, id string) (entities.Bid, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Bid, error)
	ListByVendorID(ctx context.Context, vendorID string) ([]entities.Bid, error)
	Update(ctx context.Context, b entities.Bid) (entities.Bid, error)
	ApplyAcceptance(ctx context.Context, plan ledger.AcceptancePlan) error
}
