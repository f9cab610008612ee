package usecase

import (
	"context"
	"errors"
	"strings"

	"kept_house/internal/domain/entities"
	"kept_house/internal/domain/ledger"
	"kept_house/internal/infrastructure/logger"
	"kept_house/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrNoPhotos = errors.New("at least one photo is required")

// IItemUseCase drives the cataloguing lifecycle of item documents.
type IItemUseCase interface {
	Create(ctx context.Context, jobID, title string, photos []string) (entities.ItemDocument, error)
	GetByID(ctx context.Context, id string) (entities.ItemDocument, error)
	ListByJob(ctx context.Context, jobID string) ([]entities.ItemDocument, error)
	AddPhotos(ctx context.Context, id string, urls []string) (entities.ItemDocument, error)
	Analyze(ctx context.Context, id string, groups [][]int) (entities.ItemDocument, error)
	Approve(ctx context.Context, id string, items []entities.ApprovedItem) (entities.ItemDocument, error)
	Reopen(ctx context.Context, id, reason, actor string) (entities.ItemDocument, error)
	UpdatePricing(ctx context.Context, id string, itemNumber int, price, estateSalePrice *float64) (entities.ApprovedItem, error)
}

type ItemUseCase struct {
	docs   interfaces.IItemDocumentRepository
	jobs   interfaces.IJobRepository
	vision interfaces.IVisionCataloguer
	now    clock
}

var _ IItemUseCase = (*ItemUseCase)(nil)

// NewItemUseCase builds the cataloguing use case. vision may be nil, in which
// case Analyze leaves suggestions untouched.
func NewItemUseCase(docs interfaces.IItemDocumentRepository, jobs interfaces.IJobRepository, vision interfaces.IVisionCataloguer) *ItemUseCase {
	return &ItemUseCase{docs: docs, jobs: jobs, vision: vision, now: utcNow}
}

func (u *ItemUseCase) Create(ctx context.Context, jobID, title string, photos []string) (entities.ItemDocument, error) {
	if strings.TrimSpace(jobID) == "" {
		return entities.ItemDocument{}, ErrInvalidID
	}
	if _, err := loadJob(ctx, u.jobs, jobID); err != nil {
		return entities.ItemDocument{}, err
	}
	now := u.now()
	doc := entities.ItemDocument{
		ID:            uuid.NewString(),
		JobID:         jobID,
		Title:         strings.TrimSpace(title),
		Photos:        []string{},
		Status:        entities.ItemStatusDraft,
		ApprovedItems: []entities.ApprovedItem{},
		CreatedAt:     now,
	}
	ledger.AddPhotos(&doc, photos, now)
	return u.docs.Create(ctx, doc)
}

func (u *ItemUseCase) GetByID(ctx context.Context, id string) (entities.ItemDocument, error) {
	if strings.TrimSpace(id) == "" {
		return entities.ItemDocument{}, ErrInvalidID
	}
	doc, err := u.docs.GetByID(ctx, id)
	if err != nil {
		return entities.ItemDocument{}, err
	}
	if doc.ID == "" {
		return entities.ItemDocument{}, ErrItemDocumentNotFound
	}
	return doc, nil
}

func (u *ItemUseCase) ListByJob(ctx context.Context, jobID string) ([]entities.ItemDocument, error) {
	if strings.TrimSpace(jobID) == "" {
		return nil, ErrInvalidID
	}
	return u.docs.ListByJobID(ctx, jobID)
}

func (u *ItemUseCase) AddPhotos(ctx context.Context, id string, urls []string) (entities.ItemDocument, error) {
	clean := make([]string, 0, len(urls))
	for _, s := range urls {
		if s = strings.TrimSpace(s); s != "" {
			clean = append(clean, s)
		}
	}
	if len(clean) == 0 {
		return entities.ItemDocument{}, ErrNoPhotos
	}
	return updateDocument(ctx, u.docs, id, func(d *entities.ItemDocument) error {
		if d.Status == entities.ItemStatusApproved || d.Status == entities.ItemStatusSold {
			return &ledger.StateError{Err: ledger.ErrInvalidItemTransition, Current: string(d.Status)}
		}
		ledger.AddPhotos(d, clean, u.now())
		return nil
	})
}

// Analyze asks the vision cataloguer for one suggestion per photo group. With
// no groups, every photo not yet in an approved item is its own group. A
// failed suggestion is logged and skipped; cataloguing never blocks on it.
func (u *ItemUseCase) Analyze(ctx context.Context, id string, groups [][]int) (entities.ItemDocument, error) {
	doc, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ItemDocument{}, err
	}
	if doc.Status == entities.ItemStatusApproved || doc.Status == entities.ItemStatusSold {
		return entities.ItemDocument{}, &ledger.StateError{Err: ledger.ErrInvalidItemTransition, Current: string(doc.Status)}
	}
	log := logger.Component(ctx, "catalogue", "usecase").WithField("item_document_id", id)
	if u.vision == nil {
		log.Warn("vision cataloguer not configured; skipping analysis")
		return doc, nil
	}
	if len(groups) == 0 {
		groups = unassignedGroups(doc)
	}

	var suggestions []entities.Suggestion
	for _, g := range groups {
		urls := make([]string, 0, len(g))
		for _, idx := range g {
			if idx < 0 || idx >= len(doc.Photos) {
				return entities.ItemDocument{}, ledger.ErrPhotoIndexOutOfRange
			}
			urls = append(urls, doc.Photos[idx])
		}
		if len(urls) == 0 {
			continue
		}
		s, err := u.vision.Suggest(ctx, urls)
		if err != nil {
			log.WithError(err).WithField("photo_indices", g).Warn("suggestion failed")
			continue
		}
		s.PhotoIndices = g
		s.Category = entities.NormalizeCategory(s.Category)
		suggestions = append(suggestions, s)
	}
	log.WithField("suggestions", len(suggestions)).Info("analysis finished")

	return updateDocument(ctx, u.docs, id, func(d *entities.ItemDocument) error {
		d.Suggestions = suggestions
		d.UpdatedAt = u.now()
		return nil
	})
}

func unassignedGroups(doc entities.ItemDocument) [][]int {
	taken := make(map[int]struct{})
	for _, it := range doc.ApprovedItems {
		for _, idx := range it.PhotoIndices {
			taken[idx] = struct{}{}
		}
	}
	var groups [][]int
	for i := range doc.Photos {
		if _, ok := taken[i]; !ok {
			groups = append(groups, []int{i})
		}
	}
	return groups
}

func (u *ItemUseCase) Approve(ctx context.Context, id string, items []entities.ApprovedItem) (entities.ItemDocument, error) {
	doc, err := updateDocument(ctx, u.docs, id, func(d *entities.ItemDocument) error {
		_, err := ledger.Approve(d, items, u.now())
		return err
	})
	if err != nil {
		return entities.ItemDocument{}, err
	}
	logger.Component(ctx, "catalogue", "usecase").WithFields(logger.Fields{
		"item_document_id": id, logger.FieldJobID: doc.JobID, "approved_items": len(doc.ApprovedItems),
	}).Info("items approved")
	return doc, nil
}

func (u *ItemUseCase) Reopen(ctx context.Context, id, reason, actor string) (entities.ItemDocument, error) {
	return updateDocument(ctx, u.docs, id, func(d *entities.ItemDocument) error {
		return ledger.Reopen(d, reason, actor, u.now())
	})
}

func (u *ItemUseCase) UpdatePricing(ctx context.Context, id string, itemNumber int, price, estateSalePrice *float64) (entities.ApprovedItem, error) {
	var item entities.ApprovedItem
	_, err := updateDocument(ctx, u.docs, id, func(d *entities.ItemDocument) error {
		var err error
		item, err = ledger.UpdatePricing(d, itemNumber, price, estateSalePrice, u.now())
		return err
	})
	return item, err
}
