package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"kept_house/internal/domain/entities"
	"kept_house/internal/infrastructure/logger"
	"kept_house/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "kepthouse:job:"

// RedisJobCache shares cached jobs across instances. Redis failures degrade
// to a direct repository read.
type RedisJobCache struct {
	client *redis.Client
	jobs   interfaces.IJobRepository
	ttl    atomic.Int64
}

var _ interfaces.IActiveJobCache = (*RedisJobCache)(nil)

func NewRedisJobCache(client *redis.Client, jobs interfaces.IJobRepository, ttl time.Duration) *RedisJobCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &RedisJobCache{client: client, jobs: jobs}
	c.ttl.Store(int64(ttl))
	return c
}

func (c *RedisJobCache) Get(ctx context.Context, jobID string) (entities.Job, error) {
	log := logger.Component(ctx, "cache", "redis").WithField(logger.FieldJobID, jobID)
	key := redisKeyPrefix + jobID

	val, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		var job entities.Job
		if err := json.Unmarshal([]byte(val), &job); err == nil {
			return job, nil
		}
		log.Warn("discarding undecodable cached job")
	case !errors.Is(err, redis.Nil):
		log.WithError(err).Warn("cache read failed")
	}

	job, err := c.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return job, nil
	}
	b, err := json.Marshal(job)
	if err != nil {
		return job, nil
	}
	if err := c.client.Set(ctx, key, b, time.Duration(c.ttl.Load())).Err(); err != nil {
		log.WithError(err).Warn("cache write failed")
	}
	return job, nil
}

func (c *RedisJobCache) InvalidateAfter(ttl time.Duration) {
	if ttl > 0 {
		c.ttl.Store(int64(ttl))
	}
}
