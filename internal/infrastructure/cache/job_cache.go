// Package cache serves job reads on marketplace paths, where a job's sale
// window may be up to one TTL stale.
package cache

import (
	"context"
	"sync"
	"time"

	"kept_house/internal/domain/entities"
	"kept_house/internal/usecase/interfaces"
)

const DefaultTTL = 60 * time.Second

type entry struct {
	job     entities.Job
	expires time.Time
}

// MemoryJobCache is a read-through TTL cache in front of the job repository.
// Missing jobs are cached too so unknown ids do not hit the table repeatedly.
type MemoryJobCache struct {
	jobs interfaces.IJobRepository
	now  func() time.Time

	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
}

var _ interfaces.IActiveJobCache = (*MemoryJobCache)(nil)

func NewMemoryJobCache(jobs interfaces.IJobRepository, ttl time.Duration) *MemoryJobCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryJobCache{
		jobs:    jobs,
		now:     time.Now,
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

func (c *MemoryJobCache) Get(ctx context.Context, jobID string) (entities.Job, error) {
	now := c.now()
	c.mu.Lock()
	e, ok := c.entries[jobID]
	ttl := c.ttl
	c.mu.Unlock()
	if ok && now.Before(e.expires) {
		return e.job, nil
	}

	job, err := c.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	c.mu.Lock()
	c.entries[jobID] = entry{job: job, expires: now.Add(ttl)}
	c.mu.Unlock()
	return job, nil
}

// InvalidateAfter changes the TTL for entries stored from now on.
func (c *MemoryJobCache) InvalidateAfter(ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.ttl = ttl
	c.mu.Unlock()
}

// NoopJobCache always reads through.
type NoopJobCache struct {
	jobs interfaces.IJobRepository
}

var _ interfaces.IActiveJobCache = (*NoopJobCache)(nil)

func NewNoopJobCache(jobs interfaces.IJobRepository) *NoopJobCache {
	return &NoopJobCache{jobs: jobs}
}

func (c *NoopJobCache) Get(ctx context.Context, jobID string) (entities.Job, error) {
	return c.jobs.GetByID(ctx, jobID)
}

func (c *NoopJobCache) InvalidateAfter(time.Duration) {}
