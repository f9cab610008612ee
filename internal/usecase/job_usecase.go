package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kept_house/internal/domain/entities"
	"kept_house/internal/domain/ledger"
	"kept_house/internal/infrastructure/logger"
	"kept_house/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidJobInput = errors.New("invalid job input")
	ErrInvalidStage    = errors.New("invalid job stage")
	ErrInvalidStatus   = errors.New("invalid job status")
	ErrDepositNotDue   = errors.New("deposit is not due")
)

type CreateJobInput struct {
	ClientName      string
	ClientEmail     string
	PropertyAddress string
	ServiceFee      float64
	DepositAmount   float64
	SaleWindow      entities.SaleWindow
}

type IJobUseCase interface {
	Create(ctx context.Context, in CreateJobInput) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context, status entities.JobStatus) ([]entities.Job, error)
	UpdateStage(ctx context.Context, id string, stage entities.JobStage) (entities.Job, error)
	UpdateSaleWindow(ctx context.Context, id string, w entities.SaleWindow) (entities.Job, error)
	SaleStatus(ctx context.Context, id string) (ledger.SaleStatus, error)
	CreateDepositCheckout(ctx context.Context, id string) (interfaces.CheckoutSession, error)
}

type JobUseCase struct {
	jobs    interfaces.IJobRepository
	gateway interfaces.IPaymentGateway
	now     clock
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(jobs interfaces.IJobRepository, gateway interfaces.IPaymentGateway) *JobUseCase {
	return &JobUseCase{jobs: jobs, gateway: gateway, now: utcNow}
}

func (u *JobUseCase) Create(ctx context.Context, in CreateJobInput) (entities.Job, error) {
	in.ClientName = strings.TrimSpace(in.ClientName)
	in.ClientEmail = strings.TrimSpace(in.ClientEmail)
	if in.ClientName == "" || in.ServiceFee < 0 || in.DepositAmount < 0 {
		return entities.Job{}, ErrInvalidJobInput
	}
	if err := ledger.ValidateSaleWindow(in.SaleWindow); err != nil {
		return entities.Job{}, err
	}

	now := u.now()
	status := entities.JobStatusActive
	if in.DepositAmount > 0 {
		status = entities.JobStatusAwaitingDeposit
	}
	job := entities.Job{
		ID:              uuid.NewString(),
		ClientName:      in.ClientName,
		ClientEmail:     in.ClientEmail,
		PropertyAddress: strings.TrimSpace(in.PropertyAddress),
		Status:          status,
		Stage:           entities.JobStageWalkthrough,
		ServiceFee:      ledger.RoundCents(in.ServiceFee),
		DepositAmount:   ledger.RoundCents(in.DepositAmount),
		SaleWindow:      in.SaleWindow,
		Finance:         entities.JobFinance{Daily: []entities.LedgerEntry{}},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	ledger.RecomputeNet(&job)

	created, err := u.jobs.Create(ctx, job)
	if err != nil {
		return entities.Job{}, err
	}
	logger.Component(ctx, "job", "usecase").WithFields(logger.Fields{
		logger.FieldJobID: created.ID, "status": created.Status,
	}).Info("job created")
	return created, nil
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	if strings.TrimSpace(id) == "" {
		return entities.Job{}, ErrInvalidID
	}
	return loadJob(ctx, u.jobs, id)
}

func (u *JobUseCase) List(ctx context.Context, status entities.JobStatus) ([]entities.Job, error) {
	switch status {
	case "", entities.JobStatusAwaitingDeposit, entities.JobStatusActive, entities.JobStatusCompleted, entities.JobStatusCancelled:
	default:
		return nil, ErrInvalidStatus
	}
	return u.jobs.ListByStatus(ctx, status)
}

// UpdateStage moves the informational workflow marker. Stages never gate
// finance, so any valid stage is accepted from any other.
func (u *JobUseCase) UpdateStage(ctx context.Context, id string, stage entities.JobStage) (entities.Job, error) {
	if !stage.Valid() {
		return entities.Job{}, ErrInvalidStage
	}
	return updateJob(ctx, u.jobs, id, func(j *entities.Job) error {
		j.Stage = stage
		if stage == entities.JobStageClosing && j.Status == entities.JobStatusActive {
			j.Status = entities.JobStatusCompleted
		}
		j.UpdatedAt = u.now()
		return nil
	})
}

func (u *JobUseCase) UpdateSaleWindow(ctx context.Context, id string, w entities.SaleWindow) (entities.Job, error) {
	if err := ledger.ValidateSaleWindow(w); err != nil {
		return entities.Job{}, err
	}
	return updateJob(ctx, u.jobs, id, func(j *entities.Job) error {
		j.SaleWindow = w
		j.UpdatedAt = u.now()
		return nil
	})
}

func (u *JobUseCase) SaleStatus(ctx context.Context, id string) (ledger.SaleStatus, error) {
	job, err := u.GetByID(ctx, id)
	if err != nil {
		return ledger.SaleStatus{}, err
	}
	return ledger.SaleWindowStatus(job.SaleWindow, u.now()), nil
}

// CreateDepositCheckout opens a hosted checkout for the job's deposit. The
// confirmation arrives through the payment webhook under deposit:<jobID>.
func (u *JobUseCase) CreateDepositCheckout(ctx context.Context, id string) (interfaces.CheckoutSession, error) {
	if u.gateway == nil {
		return interfaces.CheckoutSession{}, ErrGatewayNotConfigured
	}
	job, err := u.GetByID(ctx, id)
	if err != nil {
		return interfaces.CheckoutSession{}, err
	}
	if job.DepositAmount <= 0 || job.DepositPaidAt != nil {
		return interfaces.CheckoutSession{}, ErrDepositNotDue
	}

	session, err := u.gateway.CreateCheckout(ctx, interfaces.CheckoutRequest{
		ExternalReference: DepositReference(job.ID),
		PayerEmail:        job.ClientEmail,
		Lines: []interfaces.CheckoutLine{{
			ID:        job.ID,
			Title:     "Estate sale service deposit",
			Quantity:  1,
			UnitPrice: job.DepositAmount,
		}},
		Metadata: map[string]any{"job_id": job.ID},
	})
	if err != nil {
		logger.Component(ctx, "job", "usecase").WithError(err).WithField(logger.FieldJobID, job.ID).Error("deposit checkout failed")
		return interfaces.CheckoutSession{}, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	return session, nil
}
