package interfaces

import (
	"context"
	"errors"
	"time"

	"kept_house/internal/domain/entities"
)

var ErrLockNotAcquired = errors.New("lock not acquired")

// ILocker serializes work on a key across instances. The returned unlock must
// be called exactly once.
type ILocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// IActiveJobCache serves job lookups for read paths that tolerate staleness
// up to the configured TTL. A missing job is a zero Job.
type IActiveJobCache interface {
	Get(ctx context.Context, jobID string) (entities.Job, error)
	InvalidateAfter(ttl time.Duration)
}

// INotifier receives domain events after a mutation commits. Delivery
// failures never roll back the mutation.
type INotifier interface {
	Publish(ctx context.Context, event entities.DomainEvent) error
}
