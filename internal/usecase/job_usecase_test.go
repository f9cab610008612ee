package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"kept_house/internal/domain/entities"
	"kept_house/internal/domain/ledger"
	"kept_house/internal/usecase/interfaces"
	mock_interfaces "kept_house/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestJobUseCase_Create(t *testing.T) {
	t.Run("deposit puts job in awaiting_deposit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(jobs, nil)
		uc.now = fixedClock

		jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, j entities.Job) (entities.Job, error) {
			if j.ID == "" || j.Stage != entities.JobStageWalkthrough {
				t.Fatalf("unexpected job to persist: %+v", j)
			}
			return j, nil
		})

		job, err := uc.Create(context.Background(), CreateJobInput{ClientName: " Harper ", ServiceFee: 150, DepositAmount: 500})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Status != entities.JobStatusAwaitingDeposit || job.ClientName != "Harper" {
			t.Fatalf("unexpected job: %+v", job)
		}
		if job.Finance.Net != -150 {
			t.Fatalf("expected net to carry the service fee, got %v", job.Finance.Net)
		}
	})

	t.Run("no deposit starts active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(jobs, nil)
		jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, j entities.Job) (entities.Job, error) { return j, nil })

		job, err := uc.Create(context.Background(), CreateJobInput{ClientName: "Harper"})
		if err != nil || job.Status != entities.JobStatusActive {
			t.Fatalf("expected active job, got %+v err=%v", job, err)
		}
	})

	t.Run("missing client name", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreateJobInput{ClientName: "  "})
		if !errors.Is(err, ErrInvalidJobInput) {
			t.Fatalf("expected ErrInvalidJobInput, got %v", err)
		}
	})

	t.Run("inverted sale window", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)
		start := fixedNow.Add(48 * time.Hour)
		end := fixedNow
		_, err := uc.Create(context.Background(), CreateJobInput{
			ClientName: "Harper",
			SaleWindow: entities.SaleWindow{OnlineSaleStartDate: &start, OnlineSaleEndDate: &end},
		})
		if !errors.Is(err, ledger.ErrInvalidSaleWindow) {
			t.Fatalf("expected ErrInvalidSaleWindow, got %v", err)
		}
	})
}

func TestJobUseCase_UpdateStage(t *testing.T) {
	t.Run("invalid stage", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)
		_, err := uc.UpdateStage(context.Background(), "job-1", "packing")
		if !errors.Is(err, ErrInvalidStage) {
			t.Fatalf("expected ErrInvalidStage, got %v", err)
		}
	})

	t.Run("closing completes active job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(jobs, nil)
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(activeJob("job-1"), nil)
		jobs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(bumpVersion)

		job, err := uc.UpdateStage(context.Background(), "job-1", entities.JobStageClosing)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Stage != entities.JobStageClosing || job.Status != entities.JobStatusCompleted {
			t.Fatalf("unexpected job: stage=%s status=%s", job.Stage, job.Status)
		}
	})
}

func TestJobUseCase_SaleStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	jobs := mock_interfaces.NewMockIJobRepository(ctrl)
	uc := NewJobUseCase(jobs, nil)
	uc.now = fixedClock

	j := activeJob("job-1")
	start := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	j.OnlineSaleStartDate = &start
	jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(j, nil)

	st, err := uc.SaleStatus(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Visible || st.Message != "Online sale opens Jun 20, 2025" {
		t.Fatalf("unexpected status: %+v", st)
	}
}

func TestJobUseCase_CreateDepositCheckout(t *testing.T) {
	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)
		_, err := uc.CreateDepositCheckout(context.Background(), "job-1")
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("deposit already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewJobUseCase(jobs, gateway)

		j := activeJob("job-1")
		j.DepositAmount = 300
		paid := fixedNow
		j.DepositPaidAt = &paid
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(j, nil)

		_, err := uc.CreateDepositCheckout(context.Background(), "job-1")
		if !errors.Is(err, ErrDepositNotDue) {
			t.Fatalf("expected ErrDepositNotDue, got %v", err)
		}
	})

	t.Run("creates checkout with deposit reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewJobUseCase(jobs, gateway)

		j := activeJob("job-1")
		j.Status = entities.JobStatusAwaitingDeposit
		j.DepositAmount = 300
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(j, nil)
		gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSession, error) {
			if req.ExternalReference != "deposit:job-1" || req.Lines[0].UnitPrice != 300 {
				t.Fatalf("unexpected checkout request: %+v", req)
			}
			return interfaces.CheckoutSession{ID: "pref-1", URL: "https://pay.example/pref-1"}, nil
		})

		s, err := uc.CreateDepositCheckout(context.Background(), "job-1")
		if err != nil || s.ID != "pref-1" {
			t.Fatalf("unexpected result: %+v err=%v", s, err)
		}
	})

	t.Run("gateway failure is upstream unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewJobUseCase(jobs, gateway)

		j := activeJob("job-1")
		j.DepositAmount = 300
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(j, nil)
		gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(interfaces.CheckoutSession{}, errors.New("timeout"))

		_, err := uc.CreateDepositCheckout(context.Background(), "job-1")
		if !errors.Is(err, ErrUpstreamUnavailable) {
			t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
		}
	})
}
