package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"kept_house/internal/domain/entities"
	"kept_house/internal/domain/ledger"
	"kept_house/internal/infrastructure/logger"
	"kept_house/internal/usecase/interfaces"
)

var (
	ErrInvalidLabel    = errors.New("invalid ledger label")
	ErrInvalidFeeValue = errors.New("fees must be non-negative")
)

// IFinanceUseCase owns every write to a job's finance sub-record. Each call
// runs under the job's finance lock and persists ledger entry, aggregates and
// net in one versioned write.
type IFinanceUseCase interface {
	PostRevenue(ctx context.Context, jobID string, amount float64, label, ref string) (entities.Job, error)
	PostExpense(ctx context.Context, jobID string, amount float64, label, ref string) (entities.Job, error)
	PostRefund(ctx context.Context, jobID string, amount float64, label, ref string) (entities.Job, error)
	AddDailySales(ctx context.Context, jobID string, amount float64, label string) (entities.Job, error)
	ConfirmDeposit(ctx context.Context, jobID, ref string) (entities.Job, bool, error)
	UpdateFees(ctx context.Context, jobID string, serviceFee, depositAmount *float64) (entities.Job, error)
	Recompute(ctx context.Context, jobID string) (entities.Job, error)
	Summary(ctx context.Context, jobID string) (FinanceSummary, error)
}

type FinanceSummary struct {
	JobID         string                 `json:"job_id"`
	Gross         float64                `json:"gross"`
	Fees          float64                `json:"fees"`
	HaulingCost   float64                `json:"hauling_cost"`
	ServiceFee    float64                `json:"service_fee"`
	DepositAmount float64                `json:"deposit_amount"`
	DepositPaid   bool                   `json:"deposit_paid"`
	Net           float64                `json:"net"`
	MarginalRate  float64                `json:"marginal_rate"`
	Daily         []entities.LedgerEntry `json:"daily"`
}

type FinanceUseCase struct {
	jobs     interfaces.IJobRepository
	locker   interfaces.ILocker
	notifier interfaces.INotifier
	now      clock
}

var _ IFinanceUseCase = (*FinanceUseCase)(nil)

func NewFinanceUseCase(jobs interfaces.IJobRepository, locker interfaces.ILocker, notifier interfaces.INotifier) *FinanceUseCase {
	return &FinanceUseCase{jobs: jobs, locker: locker, notifier: notifier, now: utcNow}
}

func FinanceLockKey(jobID string) string {
	return "job:" + jobID + ":finance"
}

func (u *FinanceUseCase) PostRevenue(ctx context.Context, jobID string, amount float64, label, ref string) (entities.Job, error) {
	return u.post(ctx, "post-revenue", jobID, amount, label, ref, ledger.PostRevenue)
}

func (u *FinanceUseCase) PostExpense(ctx context.Context, jobID string, amount float64, label, ref string) (entities.Job, error) {
	return u.post(ctx, "post-expense", jobID, amount, label, ref, ledger.PostExpense)
}

func (u *FinanceUseCase) PostRefund(ctx context.Context, jobID string, amount float64, label, ref string) (entities.Job, error) {
	return u.post(ctx, "post-refund", jobID, amount, label, ref, ledger.PostRefund)
}

type postFunc func(job *entities.Job, amount float64, label, ref string, now time.Time) (bool, error)

func (u *FinanceUseCase) post(ctx context.Context, op, jobID string, amount float64, label, ref string, apply postFunc) (entities.Job, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return entities.Job{}, ErrInvalidLabel
	}
	log := logger.Component(ctx, "finance", "usecase").WithFields(logger.Fields{
		logger.FieldJobID: jobID, "op": op, "amount": amount, "ref": ref,
	})
	job, err := u.mutate(ctx, jobID, func(j *entities.Job) (bool, error) {
		return apply(j, amount, label, ref, u.now())
	})
	if err != nil {
		log.WithError(err).Warn("ledger posting failed")
		return entities.Job{}, err
	}
	log.WithFields(logger.Fields{"gross": job.Finance.Gross, "fees": job.Finance.Fees, "net": job.Finance.Net}).Info("ledger posted")
	return job, nil
}

func (u *FinanceUseCase) AddDailySales(ctx context.Context, jobID string, amount float64, label string) (entities.Job, error) {
	return u.PostRevenue(ctx, jobID, amount, ledger.DailySalesLabel(label, u.now()), "")
}

func (u *FinanceUseCase) ConfirmDeposit(ctx context.Context, jobID, ref string) (entities.Job, bool, error) {
	applied := false
	job, err := u.mutate(ctx, jobID, func(j *entities.Job) (bool, error) {
		ok, err := ledger.ConfirmDeposit(j, ref, u.now())
		applied = ok
		return ok, err
	})
	if err != nil {
		return entities.Job{}, false, err
	}
	if applied {
		publish(ctx, u.notifier, entities.DomainEvent{Type: entities.EventDepositPaid, JobID: jobID, EntityID: jobID,
			Payload: map[string]any{"amount": job.DepositAmount, "ref": ref}})
	} else {
		logger.Component(ctx, "finance", "usecase").WithField(logger.FieldJobID, jobID).Info("deposit already confirmed")
	}
	return job, applied, nil
}

func (u *FinanceUseCase) UpdateFees(ctx context.Context, jobID string, serviceFee, depositAmount *float64) (entities.Job, error) {
	for _, v := range []*float64{serviceFee, depositAmount} {
		if v != nil && *v < 0 {
			return entities.Job{}, ErrInvalidFeeValue
		}
	}
	return u.mutate(ctx, jobID, func(j *entities.Job) (bool, error) {
		if serviceFee != nil {
			j.ServiceFee = ledger.RoundCents(*serviceFee)
		}
		if depositAmount != nil {
			j.DepositAmount = ledger.RoundCents(*depositAmount)
		}
		ledger.RecomputeNet(j)
		return true, nil
	})
}

// Recompute rederives fees and net from the stored aggregates.
func (u *FinanceUseCase) Recompute(ctx context.Context, jobID string) (entities.Job, error) {
	return u.mutate(ctx, jobID, func(j *entities.Job) (bool, error) {
		fees, net := j.Finance.Fees, j.Finance.Net
		j.Finance.Fees = ledger.Commission(j.Finance.Gross)
		ledger.RecomputeNet(j)
		return fees != j.Finance.Fees || net != j.Finance.Net, nil
	})
}

func (u *FinanceUseCase) Summary(ctx context.Context, jobID string) (FinanceSummary, error) {
	job, err := loadJob(ctx, u.jobs, jobID)
	if err != nil {
		return FinanceSummary{}, err
	}
	return FinanceSummary{
		JobID:         job.ID,
		Gross:         job.Finance.Gross,
		Fees:          job.Finance.Fees,
		HaulingCost:   job.Finance.HaulingCost,
		ServiceFee:    job.ServiceFee,
		DepositAmount: job.DepositAmount,
		DepositPaid:   job.DepositPaidAt != nil,
		Net:           job.Finance.Net,
		MarginalRate:  ledger.MarginalRate(job.Finance.Gross),
		Daily:         job.Finance.Daily,
	}, nil
}

// mutate serializes finance writes per job. fn reports whether it changed the
// job; unchanged jobs are not written and emit no event.
func (u *FinanceUseCase) mutate(ctx context.Context, jobID string, fn func(*entities.Job) (bool, error)) (entities.Job, error) {
	if strings.TrimSpace(jobID) == "" {
		return entities.Job{}, ErrInvalidID
	}
	unlock, err := lock(ctx, u.locker, FinanceLockKey(jobID))
	if err != nil {
		return entities.Job{}, err
	}
	defer unlock()

	var out entities.Job
	changed := false
	err = retryOnConflict(func() error {
		job, err := loadJob(ctx, u.jobs, jobID)
		if err != nil {
			return err
		}
		changed, err = fn(&job)
		if err != nil {
			return err
		}
		if !changed {
			out = job
			return nil
		}
		job.UpdatedAt = u.now()
		out, err = u.jobs.Update(ctx, job)
		return err
	})
	if err != nil {
		return entities.Job{}, err
	}
	if changed {
		publish(ctx, u.notifier, entities.DomainEvent{
			Type:     entities.EventFinanceUpdated,
			JobID:    jobID,
			EntityID: jobID,
			Payload:  map[string]any{"gross": out.Finance.Gross, "fees": out.Finance.Fees, "net": out.Finance.Net},
		})
	}
	return out, nil
}
