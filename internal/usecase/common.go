package usecase

import (
	"context"
	"errors"
	"time"

	"kept_house/internal/domain/entities"
	"kept_house/internal/infrastructure/logger"
	"kept_house/internal/usecase/interfaces"
)

var (
	ErrJobNotFound          = errors.New("job not found")
	ErrItemDocumentNotFound = errors.New("item document not found")
	ErrBidNotFound          = errors.New("bid not found")
	ErrVendorNotFound       = errors.New("vendor not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrListingNotFound      = errors.New("listing not found")
	ErrInvalidID            = errors.New("invalid id")
	ErrBusy                 = errors.New("resource is busy, retry")
	ErrUpstreamUnavailable  = errors.New("upstream service unavailable")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
)

// maxUpdateAttempts bounds optimistic retries of a versioned write.
const maxUpdateAttempts = 3

type clock func() time.Time

func utcNow() time.Time { return time.Now().UTC() }

// retryOnConflict reruns attempt while it fails with a version conflict.
func retryOnConflict(attempt func() error) error {
	var err error
	for i := 0; i < maxUpdateAttempts; i++ {
		err = attempt()
		if !errors.Is(err, interfaces.ErrConcurrentUpdate) {
			return err
		}
	}
	return err
}

func lock(ctx context.Context, locker interfaces.ILocker, key string) (func(), error) {
	if locker == nil {
		return func() {}, nil
	}
	unlock, err := locker.Lock(ctx, key)
	if err != nil {
		if errors.Is(err, interfaces.ErrLockNotAcquired) {
			return nil, ErrBusy
		}
		return nil, err
	}
	return unlock, nil
}

func publish(ctx context.Context, n interfaces.INotifier, ev entities.DomainEvent) {
	if n == nil {
		return
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = utcNow()
	}
	if err := n.Publish(ctx, ev); err != nil {
		logger.Component(ctx, "events").WithError(err).WithField("type", ev.Type).Warn("publish failed")
	}
}

func loadJob(ctx context.Context, jobs interfaces.IJobRepository, id string) (entities.Job, error) {
	j, err := jobs.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

// updateDocument applies fn to a fresh copy of the document and persists it
// with a versioned write, reloading on conflict.
func updateDocument(ctx context.Context, repo interfaces.IItemDocumentRepository, id string, fn func(*entities.ItemDocument) error) (entities.ItemDocument, error) {
	var saved entities.ItemDocument
	err := retryOnConflict(func() error {
		doc, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if doc.ID == "" {
			return ErrItemDocumentNotFound
		}
		if err := fn(&doc); err != nil {
			return err
		}
		saved, err = repo.Update(ctx, doc)
		return err
	})
	return saved, err
}

// updateJob is updateDocument for jobs that do not touch finance.
func updateJob(ctx context.Context, repo interfaces.IJobRepository, id string, fn func(*entities.Job) error) (entities.Job, error) {
	var saved entities.Job
	err := retryOnConflict(func() error {
		job, err := loadJob(ctx, repo, id)
		if err != nil {
			return err
		}
		if err := fn(&job); err != nil {
			return err
		}
		saved, err = repo.Update(ctx, job)
		return err
	})
	return saved, err
}
