package usecase

import (
	"context"
	"time"

	"kept_house/internal/domain/entities"
	"kept_house/internal/domain/ledger"
	"kept_house/internal/infrastructure/logger"
	"kept_house/internal/usecase/interfaces"
)

type JobItemView struct {
	ItemDocumentID string               `json:"item_document_id"`
	ItemNumber     int                  `json:"item_number"`
	Title          string               `json:"title"`
	Category       string               `json:"category"`
	Price          float64              `json:"price"`
	Disposition    entities.Disposition `json:"disposition"`
	DispositionAt  *time.Time           `json:"disposition_at,omitempty"`
	DispositionBy  string               `json:"disposition_by,omitempty"`
	PhotoURLs      []string             `json:"photo_urls"`
}

type JobItems struct {
	JobID   string                    `json:"job_id"`
	Items   []JobItemView             `json:"items"`
	Summary ledger.DispositionSummary `json:"summary"`
}

// IDispositionUseCase records what happened to each approved item.
type IDispositionUseCase interface {
	MarkSold(ctx context.Context, docID string, photoIndices []int) (entities.ItemDocument, []int, error)
	MarkDonated(ctx context.Context, docID string, itemNumbers []int, actor string) (entities.ItemDocument, int, error)
	MarkHauled(ctx context.Context, docID string, itemNumbers []int, actor string) (entities.ItemDocument, int, error)
	JobItems(ctx context.Context, jobID string) (JobItems, error)
}

type DispositionUseCase struct {
	docs     interfaces.IItemDocumentRepository
	jobs     interfaces.IJobRepository
	notifier interfaces.INotifier
	now      clock
}

var _ IDispositionUseCase = (*DispositionUseCase)(nil)

func NewDispositionUseCase(docs interfaces.IItemDocumentRepository, jobs interfaces.IJobRepository, notifier interfaces.INotifier) *DispositionUseCase {
	return &DispositionUseCase{docs: docs, jobs: jobs, notifier: notifier, now: utcNow}
}

// MarkSold is idempotent: indices already sold are reported as not added and
// a call that adds nothing does not write.
func (u *DispositionUseCase) MarkSold(ctx context.Context, docID string, photoIndices []int) (entities.ItemDocument, []int, error) {
	var added []int
	doc, err := u.update(ctx, docID, func(d *entities.ItemDocument) (bool, error) {
		var err error
		added, err = ledger.MarkSold(d, photoIndices, u.now())
		if err != nil {
			return false, err
		}
		d.UpdatedAt = u.now()
		return len(added) > 0, nil
	})
	if err != nil {
		return entities.ItemDocument{}, nil, err
	}
	if len(added) > 0 {
		logger.Component(ctx, "disposition", "usecase").WithFields(logger.Fields{
			"item_document_id": docID, "added": added, "status": doc.Status,
		}).Info("photos marked sold")
		publish(ctx, u.notifier, entities.DomainEvent{
			Type: entities.EventItemSold, JobID: doc.JobID, EntityID: doc.ID,
			Payload: map[string]any{"photo_indices": added},
		})
	}
	return doc, added, nil
}

func (u *DispositionUseCase) MarkDonated(ctx context.Context, docID string, itemNumbers []int, actor string) (entities.ItemDocument, int, error) {
	return u.dispose(ctx, docID, itemNumbers, entities.DispositionDonated, actor)
}

func (u *DispositionUseCase) MarkHauled(ctx context.Context, docID string, itemNumbers []int, actor string) (entities.ItemDocument, int, error) {
	return u.dispose(ctx, docID, itemNumbers, entities.DispositionHauled, actor)
}

func (u *DispositionUseCase) dispose(ctx context.Context, docID string, itemNumbers []int, d entities.Disposition, actor string) (entities.ItemDocument, int, error) {
	updated := 0
	doc, err := u.update(ctx, docID, func(doc *entities.ItemDocument) (bool, error) {
		var err error
		updated, err = ledger.MarkDisposed(doc, itemNumbers, d, actor, u.now())
		if err != nil {
			return false, err
		}
		doc.UpdatedAt = u.now()
		return true, nil
	})
	if err != nil {
		return entities.ItemDocument{}, 0, err
	}
	logger.Component(ctx, "disposition", "usecase").WithFields(logger.Fields{
		"item_document_id": docID, "disposition": d, "updated": updated, logger.FieldActor: actor,
	}).Info("items disposed")
	return doc, updated, nil
}

// JobItems lists every approved item of a job with its effective disposition
// and current price.
func (u *DispositionUseCase) JobItems(ctx context.Context, jobID string) (JobItems, error) {
	job, err := loadJob(ctx, u.jobs, jobID)
	if err != nil {
		return JobItems{}, err
	}
	docs, err := u.docs.ListByJobID(ctx, jobID)
	if err != nil {
		return JobItems{}, err
	}
	now := u.now()
	out := JobItems{JobID: jobID, Items: []JobItemView{}}
	for _, doc := range docs {
		for _, it := range doc.ApprovedItems {
			d := ledger.EffectiveDisposition(it, doc)
			urls := make([]string, 0, len(it.PhotoIndices))
			for _, idx := range it.PhotoIndices {
				if idx >= 0 && idx < len(doc.Photos) {
					urls = append(urls, doc.Photos[idx])
				}
			}
			out.Items = append(out.Items, JobItemView{
				ItemDocumentID: doc.ID,
				ItemNumber:     it.ItemNumber,
				Title:          it.Title,
				Category:       it.Category,
				Price:          ledger.ResolvePrice(it, job, now),
				Disposition:    d,
				DispositionAt:  it.DispositionAt,
				DispositionBy:  it.DispositionBy,
				PhotoURLs:      urls,
			})
			out.Summary.Add(d)
		}
	}
	return out, nil
}

func (u *DispositionUseCase) update(ctx context.Context, docID string, fn func(*entities.ItemDocument) (bool, error)) (entities.ItemDocument, error) {
	var out entities.ItemDocument
	err := retryOnConflict(func() error {
		doc, err := u.docs.GetByID(ctx, docID)
		if err != nil {
			return err
		}
		if doc.ID == "" {
			return ErrItemDocumentNotFound
		}
		changed, err := fn(&doc)
		if err != nil {
			return err
		}
		if !changed {
			out = doc
			return nil
		}
		out, err = u.docs.Update(ctx, doc)
		return err
	})
	return out, err
}
