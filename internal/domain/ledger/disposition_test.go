package ledger

import (
	"testing"
	"time"

	"kept_house/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func approvedDoc() entities.ItemDocument {
	return entities.ItemDocument{
		ID:     "doc-1",
		JobID:  "job-1",
		Status: entities.ItemStatusApproved,
		Photos: []string{"p0", "p1", "p2", "p3", "p4", "p5"},
		ApprovedItems: []entities.ApprovedItem{
			{ItemNumber: 1, PhotoIndices: []int{0, 1}},
			{ItemNumber: 2, PhotoIndices: []int{2}},
			{ItemNumber: 3, PhotoIndices: []int{3, 4}},
		},
	}
}

func TestMarkSold_Idempotent(t *testing.T) {
	doc := approvedDoc()

	added, err := MarkSold(&doc, []int{3, 4}, now)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, added)
	firstSoldAt := *doc.SoldAt

	added, err = MarkSold(&doc, []int{3, 4}, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, added)
	assert.Equal(t, []int{3, 4}, doc.SoldPhotoIndices)
	assert.True(t, doc.SoldAt.Equal(firstSoldAt))

	item, _ := doc.FindItem(3)
	err = CheckSellable(item, doc)
	assert.ErrorIs(t, err, ErrItemUnavailable)
	var se *StateError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "sold", se.Current)
}

func TestMarkSold_RejectsOutOfRange(t *testing.T) {
	doc := approvedDoc()
	_, err := MarkSold(&doc, []int{9}, now)
	assert.ErrorIs(t, err, ErrPhotoIndexOutOfRange)
	assert.Empty(t, doc.SoldPhotoIndices)
}

func TestMarkSold_DocumentSoldWhenEveryItemSold(t *testing.T) {
	doc := approvedDoc()
	_, err := MarkSold(&doc, []int{0, 2}, now)
	require.NoError(t, err)
	assert.Equal(t, entities.ItemStatusApproved, doc.Status)

	_, err = MarkSold(&doc, []int{4}, now)
	require.NoError(t, err)
	assert.Equal(t, entities.ItemStatusSold, doc.Status)
}

func TestEffectiveDisposition(t *testing.T) {
	doc := approvedDoc()
	doc.SoldPhotoIndices = []int{1}
	doc.ApprovedItems[1].Disposition = entities.DispositionDonated
	doc.ApprovedItems[2].Disposition = entities.DispositionAvailable

	assert.Equal(t, entities.DispositionSold, EffectiveDisposition(doc.ApprovedItems[0], doc))
	assert.Equal(t, entities.DispositionDonated, EffectiveDisposition(doc.ApprovedItems[1], doc))
	assert.Equal(t, entities.DispositionAvailable, EffectiveDisposition(doc.ApprovedItems[2], doc))
	assert.False(t, IsAvailable(doc.ApprovedItems[0], doc))
	assert.True(t, IsAvailable(doc.ApprovedItems[2], doc))
}

func TestMarkDisposed(t *testing.T) {
	t.Run("donates matching available items", func(t *testing.T) {
		doc := approvedDoc()
		doc.SoldPhotoIndices = []int{2}

		n, err := MarkDisposed(&doc, []int{1, 2, 99}, entities.DispositionDonated, "agent-7", now)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, entities.DispositionDonated, doc.ApprovedItems[0].Disposition)
		assert.Equal(t, "agent-7", doc.ApprovedItems[0].DispositionBy)
		assert.Equal(t, []int{0, 1}, doc.DonatedPhotoIndices)
		assert.Empty(t, doc.ApprovedItems[1].Disposition)
	})

	t.Run("hauled items unioned", func(t *testing.T) {
		doc := approvedDoc()
		n, err := MarkDisposed(&doc, []int{3}, entities.DispositionHauled, "agent-7", now)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, []int{3, 4}, doc.HauledPhotoIndices)
	})

	t.Run("zero matches is a no-op", func(t *testing.T) {
		doc := approvedDoc()
		before := approvedDoc()
		n, err := MarkDisposed(&doc, []int{42}, entities.DispositionHauled, "agent-7", now)
		assert.ErrorIs(t, err, ErrNoMatchingItems)
		assert.Zero(t, n)
		assert.Equal(t, before, doc)
	})

	t.Run("sold is not a storable disposition", func(t *testing.T) {
		doc := approvedDoc()
		_, err := MarkDisposed(&doc, []int{1}, entities.DispositionSold, "agent-7", now)
		assert.ErrorIs(t, err, ErrInvalidDisposition)
	})
}

func TestDispositionSummary(t *testing.T) {
	var s DispositionSummary
	for _, d := range []entities.Disposition{
		entities.DispositionAvailable, entities.DispositionSold, entities.DispositionSold,
		entities.DispositionDonated, entities.DispositionHauled,
	} {
		s.Add(d)
	}
	assert.Equal(t, DispositionSummary{Total: 5, Available: 1, Sold: 2, Donated: 1, Hauled: 1}, s)
}
