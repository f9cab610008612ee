package usecase

import (
	"context"

	"kept_house/internal/domain/entities"
	"kept_house/internal/domain/marketplace"
	"kept_house/internal/infrastructure/logger"
	"kept_house/internal/usecase/interfaces"
)

// IMarketplaceUseCase is the buyer-facing read side. Listings are projected
// on every call from approved documents; nothing is stored.
type IMarketplaceUseCase interface {
	List(ctx context.Context, f marketplace.Filter) (marketplace.Page, error)
	Get(ctx context.Context, listingID string) (entities.Listing, error)
	Related(ctx context.Context, listingID string) ([]entities.Listing, error)
	Search(ctx context.Context, query string, page, limit int) (marketplace.Page, error)
}

type MarketplaceUseCase struct {
	docs  interfaces.IItemDocumentRepository
	jobs  interfaces.IJobRepository
	cache interfaces.IActiveJobCache
	now   clock
}

var (
	_ IMarketplaceUseCase = (*MarketplaceUseCase)(nil)
	_ IListingResolver    = (*MarketplaceUseCase)(nil)
)

// NewMarketplaceUseCase wires the projection. cache serves job lookups on the
// browse paths; a nil cache reads the repository directly.
func NewMarketplaceUseCase(docs interfaces.IItemDocumentRepository, jobs interfaces.IJobRepository, cache interfaces.IActiveJobCache) *MarketplaceUseCase {
	return &MarketplaceUseCase{docs: docs, jobs: jobs, cache: cache, now: utcNow}
}

func (u *MarketplaceUseCase) List(ctx context.Context, f marketplace.Filter) (marketplace.Page, error) {
	all, err := u.listings(ctx)
	if err != nil {
		return marketplace.Page{}, err
	}
	return marketplace.Browse(all, f), nil
}

func (u *MarketplaceUseCase) Get(ctx context.Context, listingID string) (entities.Listing, error) {
	l, _, _, err := u.resolve(ctx, listingID, u.cachedJob)
	return l, err
}

func (u *MarketplaceUseCase) Related(ctx context.Context, listingID string) ([]entities.Listing, error) {
	target, err := u.Get(ctx, listingID)
	if err != nil {
		return nil, err
	}
	all, err := u.listings(ctx)
	if err != nil {
		return nil, err
	}
	return marketplace.Related(all, target), nil
}

func (u *MarketplaceUseCase) Search(ctx context.Context, query string, page, limit int) (marketplace.Page, error) {
	all, err := u.listings(ctx)
	if err != nil {
		return marketplace.Page{}, err
	}
	return marketplace.Search(all, query, page, limit)
}

// Resolve projects one listing from uncached state. Checkout uses it so a sale
// is never validated against a stale sale window.
func (u *MarketplaceUseCase) Resolve(ctx context.Context, listingID string) (entities.Listing, entities.ItemDocument, entities.Job, error) {
	return u.resolve(ctx, listingID, u.freshJob)
}

type jobLookup func(ctx context.Context, jobID string) (entities.Job, error)

func (u *MarketplaceUseCase) resolve(ctx context.Context, listingID string, job jobLookup) (entities.Listing, entities.ItemDocument, entities.Job, error) {
	docID, n, err := marketplace.ParseListingID(listingID)
	if err != nil {
		return entities.Listing{}, entities.ItemDocument{}, entities.Job{}, ErrListingNotFound
	}
	doc, err := u.docs.GetByID(ctx, docID)
	if err != nil {
		return entities.Listing{}, entities.ItemDocument{}, entities.Job{}, err
	}
	if doc.ID == "" {
		return entities.Listing{}, entities.ItemDocument{}, entities.Job{}, ErrListingNotFound
	}
	j, err := job(ctx, doc.JobID)
	if err != nil {
		return entities.Listing{}, entities.ItemDocument{}, entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Listing{}, entities.ItemDocument{}, entities.Job{}, ErrListingNotFound
	}
	l, ok := marketplace.ProjectOne(doc, n, j, u.now())
	if !ok {
		return entities.Listing{}, doc, j, ErrListingNotFound
	}
	return l, doc, j, nil
}

func (u *MarketplaceUseCase) listings(ctx context.Context) ([]entities.Listing, error) {
	docs, err := u.docs.ListByStatus(ctx, entities.ItemStatusApproved)
	if err != nil {
		return nil, err
	}
	now := u.now()
	var all []entities.Listing
	for _, doc := range docs {
		job, err := u.cachedJob(ctx, doc.JobID)
		if err != nil {
			logger.Component(ctx, "marketplace", "usecase").WithError(err).WithField(logger.FieldJobID, doc.JobID).Warn("job lookup failed; skipping document")
			continue
		}
		if job.ID == "" {
			continue
		}
		all = append(all, marketplace.Project(doc, job, now)...)
	}
	return all, nil
}

func (u *MarketplaceUseCase) cachedJob(ctx context.Context, jobID string) (entities.Job, error) {
	if u.cache == nil {
		return u.freshJob(ctx, jobID)
	}
	return u.cache.Get(ctx, jobID)
}

func (u *MarketplaceUseCase) freshJob(ctx context.Context, jobID string) (entities.Job, error) {
	return u.jobs.GetByID(ctx, jobID)
}
