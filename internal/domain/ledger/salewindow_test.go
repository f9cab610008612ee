package ledger

import (
	"testing"
	"time"

	"kept_house/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestSaleWindowStatus(t *testing.T) {
	past := now.Add(-24 * time.Hour)
	later := now.Add(24 * time.Hour)
	muchLater := now.Add(72 * time.Hour)

	t.Run("explicit inactive hides everything", func(t *testing.T) {
		s := SaleWindowStatus(entities.SaleWindow{OnlineSaleActive: ptr(false), EstateSaleDate: &past}, now)
		assert.False(t, s.Visible)
		assert.Empty(t, s.Phase)
	})

	t.Run("unset flag means active", func(t *testing.T) {
		s := SaleWindowStatus(entities.SaleWindow{}, now)
		assert.True(t, s.Visible)
		assert.Equal(t, entities.SalePhaseOnline, s.Phase)
	})

	t.Run("before online start", func(t *testing.T) {
		s := SaleWindowStatus(entities.SaleWindow{OnlineSaleStartDate: &later}, now)
		assert.False(t, s.Visible)
		assert.Equal(t, entities.SalePhaseBeforeOnline, s.Phase)
		assert.NotEmpty(t, s.Message)
	})

	t.Run("between online end and estate sale", func(t *testing.T) {
		s := SaleWindowStatus(entities.SaleWindow{OnlineSaleEndDate: &past, EstateSaleDate: &muchLater}, now)
		assert.False(t, s.Visible)
		assert.Equal(t, entities.SalePhaseBetween, s.Phase)
	})

	t.Run("online ended with no estate date", func(t *testing.T) {
		s := SaleWindowStatus(entities.SaleWindow{OnlineSaleEndDate: &past}, now)
		assert.False(t, s.Visible)
		assert.Equal(t, entities.SalePhaseBetween, s.Phase)
	})

	t.Run("estate phase wins after online window ended", func(t *testing.T) {
		w := entities.SaleWindow{OnlineSaleEndDate: &past}
		estate := now.Add(time.Hour)
		w.EstateSaleDate = &estate
		assert.False(t, SaleWindowStatus(w, now).Visible)

		s := SaleWindowStatus(w, now.Add(2*time.Hour))
		assert.True(t, s.Visible)
		assert.Equal(t, entities.SalePhaseEstate, s.Phase)
	})

	t.Run("inside online window", func(t *testing.T) {
		s := SaleWindowStatus(entities.SaleWindow{OnlineSaleStartDate: &past, OnlineSaleEndDate: &later}, now)
		assert.True(t, s.Visible)
		assert.Equal(t, entities.SalePhaseOnline, s.Phase)
	})
}

func TestValidateSaleWindow(t *testing.T) {
	past := now.Add(-time.Hour)
	assert.ErrorIs(t, ValidateSaleWindow(entities.SaleWindow{OnlineSaleStartDate: &now, OnlineSaleEndDate: &past}), ErrInvalidSaleWindow)
	assert.NoError(t, ValidateSaleWindow(entities.SaleWindow{OnlineSaleStartDate: &past, OnlineSaleEndDate: &now}))
}
