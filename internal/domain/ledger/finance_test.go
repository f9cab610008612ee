package ledger

import (
	"testing"
	"time"

	"kept_house/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 5, 10, 15, 0, 0, 0, time.UTC)

func TestRecomputeNet(t *testing.T) {
	paidAt := now
	job := entities.Job{
		ServiceFee:    200,
		DepositAmount: 250,
		DepositPaidAt: &paidAt,
		Finance:       entities.JobFinance{Gross: 10000, Fees: Commission(10000), HaulingCost: 500},
	}
	RecomputeNet(&job)
	assert.Equal(t, 4750.0, job.Finance.Fees)
	assert.Equal(t, 4800.0, job.Finance.Net)

	job.DepositPaidAt = nil
	RecomputeNet(&job)
	assert.Equal(t, 4550.0, job.Finance.Net)
}

func TestPostRevenue(t *testing.T) {
	t.Run("rounds to cents and rederives fees", func(t *testing.T) {
		job := entities.Job{}
		posted, err := PostRevenue(&job, 120.455, "Online Sale", "", now)
		require.NoError(t, err)
		require.True(t, posted)

		last := job.Finance.Daily[len(job.Finance.Daily)-1]
		assert.Equal(t, 120.46, last.Amount)
		assert.Equal(t, 120.46, job.Finance.Gross)
		assert.Equal(t, Commission(120.46), job.Finance.Fees)
		assert.Equal(t, 60.23, job.Finance.Net)
	})

	t.Run("fees are overwritten from cumulative gross", func(t *testing.T) {
		job := entities.Job{}
		_, err := PostRevenue(&job, 7000, "a", "", now)
		require.NoError(t, err)
		_, err = PostRevenue(&job, 3000, "b", "", now)
		require.NoError(t, err)
		assert.Equal(t, 10000.0, job.Finance.Gross)
		assert.Equal(t, 4750.0, job.Finance.Fees)
	})

	t.Run("same ref posts once", func(t *testing.T) {
		job := entities.Job{}
		posted, err := PostRevenue(&job, 50, "Online Sale", "order:1", now)
		require.NoError(t, err)
		assert.True(t, posted)

		posted, err = PostRevenue(&job, 50, "Online Sale", "order:1", now)
		require.NoError(t, err)
		assert.False(t, posted)
		assert.Len(t, job.Finance.Daily, 1)
		assert.Equal(t, 50.0, job.Finance.Gross)
	})

	t.Run("rejects non positive", func(t *testing.T) {
		job := entities.Job{}
		_, err := PostRevenue(&job, 0, "x", "", now)
		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.Empty(t, job.Finance.Daily)
	})
}

func TestPostExpense(t *testing.T) {
	job := entities.Job{ServiceFee: 100}
	_, err := PostRevenue(&job, 1000, "sale", "", now)
	require.NoError(t, err)

	posted, err := PostExpense(&job, 300, "Hauling - Acme", "bid:1", now)
	require.NoError(t, err)
	require.True(t, posted)

	assert.Equal(t, -300.0, job.Finance.Daily[1].Amount)
	assert.Equal(t, 300.0, job.Finance.HaulingCost)
	assert.Equal(t, 500.0, job.Finance.Fees)
	assert.Equal(t, 100.0, job.Finance.Net)
}

func TestPostRefund(t *testing.T) {
	job := entities.Job{}
	_, err := PostRevenue(&job, 10000, "sale", "", now)
	require.NoError(t, err)

	posted, err := PostRefund(&job, 2500, "Refund", "refund:1", now)
	require.NoError(t, err)
	require.True(t, posted)
	assert.Equal(t, 7500.0, job.Finance.Gross)
	assert.Equal(t, 3750.0, job.Finance.Fees)
	assert.Equal(t, 3750.0, job.Finance.Net)

	posted, err = PostRefund(&job, 2500, "Refund", "refund:1", now)
	require.NoError(t, err)
	assert.False(t, posted)
}

func TestConfirmDeposit(t *testing.T) {
	t.Run("activates job and credits net once", func(t *testing.T) {
		job := entities.Job{Status: entities.JobStatusAwaitingDeposit, DepositAmount: 250, ServiceFee: 200}
		applied, err := ConfirmDeposit(&job, "pay-1", now)
		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, entities.JobStatusActive, job.Status)
		assert.Equal(t, 50.0, job.Finance.Net)

		applied, err = ConfirmDeposit(&job, "pay-1", now.Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, applied)
		assert.True(t, job.DepositPaidAt.Equal(now))
	})

	t.Run("no deposit configured", func(t *testing.T) {
		job := entities.Job{}
		_, err := ConfirmDeposit(&job, "", now)
		assert.ErrorIs(t, err, ErrDepositNotConfigured)
	})
}

func TestDailySalesLabel(t *testing.T) {
	assert.Equal(t, "Saturday walk-ins", DailySalesLabel(" Saturday walk-ins ", now))
	assert.Equal(t, "Estate Sale - 2026-05-10", DailySalesLabel("", now))
}
