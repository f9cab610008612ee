package interfaces

import (
	"context"
	"kept_house/internal/domain/entities"
)

// IJobRepository abstracts DynamoDB persistence for Job.
//
// GetByID returns a zero Job (ID == "") when the job does not exist.
// Update is conditioned on j.Version and returns the stored job with the next
// version, or ErrConcurrentUpdate.
type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	ListByStatus(ctx context.Context, status entities.JobStatus) ([]entities.Job, error)
	Update(ctx context.Context, j entities.Job) (entities.Job, error)
}
