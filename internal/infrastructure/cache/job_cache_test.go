package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"kept_house/internal/domain/entities"
	mock_interfaces "kept_house/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMemoryJobCache_ServesWithinTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIJobRepository(ctrl)
	now := time.Date(2025, 6, 14, 15, 0, 0, 0, time.UTC)

	c := NewMemoryJobCache(repo, time.Minute)
	c.now = func() time.Time { return now }

	repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Version: 1}, nil).Times(1)
	for i := 0; i < 3; i++ {
		got, err := c.Get(context.Background(), "job-1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.Version)
	}

	now = now.Add(time.Minute)
	repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Version: 2}, nil).Times(1)
	got, err := c.Get(context.Background(), "job-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)
}

func TestMemoryJobCache_InvalidateAfterShortensTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIJobRepository(ctrl)
	now := time.Date(2025, 6, 14, 15, 0, 0, 0, time.UTC)

	c := NewMemoryJobCache(repo, time.Hour)
	c.now = func() time.Time { return now }
	c.InvalidateAfter(time.Second)

	repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1"}, nil).Times(2)
	_, err := c.Get(context.Background(), "job-1")
	require.NoError(t, err)
	now = now.Add(2 * time.Second)
	_, err = c.Get(context.Background(), "job-1")
	require.NoError(t, err)
}

func TestMemoryJobCache_ErrorsAreNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIJobRepository(ctrl)
	c := NewMemoryJobCache(repo, time.Minute)

	boom := errors.New("throttled")
	gomock.InOrder(
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, boom),
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1"}, nil),
	)

	_, err := c.Get(context.Background(), "job-1")
	assert.ErrorIs(t, err, boom)
	got, err := c.Get(context.Background(), "job-1")
	require.NoError(t, err)
	assert.Equal(t, "job-1", got.ID)
}

func TestNoopJobCache_AlwaysReadsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIJobRepository(ctrl)
	c := NewNoopJobCache(repo)

	repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1"}, nil).Times(2)
	_, _ = c.Get(context.Background(), "job-1")
	_, _ = c.Get(context.Background(), "job-1")
}
