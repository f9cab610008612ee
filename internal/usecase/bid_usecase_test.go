package usecase

import (
	"context"
	"errors"
	"testing"

	"kept_house/internal/domain/entities"
	"kept_house/internal/domain/ledger"
	"kept_house/internal/usecase/interfaces"
	mock_interfaces "kept_house/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type bidMocks struct {
	bids    *mock_interfaces.MockIBidRepository
	vendors *mock_interfaces.MockIVendorRepository
	jobs    *mock_interfaces.MockIJobRepository
}

func newBidUseCase(t *testing.T) (*BidUseCase, bidMocks) {
	ctrl := gomock.NewController(t)
	m := bidMocks{
		bids:    mock_interfaces.NewMockIBidRepository(ctrl),
		vendors: mock_interfaces.NewMockIVendorRepository(ctrl),
		jobs:    mock_interfaces.NewMockIJobRepository(ctrl),
	}
	locker := passLocker(ctrl, nil)
	finance := NewFinanceUseCase(m.jobs, locker, nil)
	finance.now = fixedClock
	uc := NewBidUseCase(m.bids, m.vendors, m.jobs, finance, locker, quietNotifier(ctrl))
	uc.now = fixedClock
	return uc, m
}

func haulingJob(id string) entities.Job {
	j := activeJob(id)
	j.Stage = entities.JobStageHauling
	return j
}

func TestBidUseCase_Submit(t *testing.T) {
	vendor := entities.Vendor{ID: "v1", Name: "Junk Co", ServiceType: entities.VendorServiceHauling, Active: true}

	t.Run("bid type follows job stage", func(t *testing.T) {
		uc, m := newBidUseCase(t)
		m.vendors.EXPECT().GetByID(gomock.Any(), "v1").Return(vendor, nil)
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(haulingJob("job-1"), nil)
		m.bids.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(nil, nil)
		m.bids.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b entities.Bid) (entities.Bid, error) { return b, nil })

		bid, err := uc.Submit(context.Background(), SubmitBidInput{JobID: "job-1", VendorID: "v1", Amount: 450})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bid.BidType != entities.BidTypeHauling || bid.Status != entities.BidStatusSubmitted {
			t.Fatalf("unexpected bid: %+v", bid)
		}
	})

	t.Run("one pending bid per vendor and track", func(t *testing.T) {
		uc, m := newBidUseCase(t)
		m.vendors.EXPECT().GetByID(gomock.Any(), "v1").Return(vendor, nil)
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(haulingJob("job-1"), nil)
		m.bids.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Bid{
			{ID: "b0", JobID: "job-1", VendorID: "v1", BidType: entities.BidTypeHauling, Status: entities.BidStatusSubmitted},
		}, nil)

		_, err := uc.Submit(context.Background(), SubmitBidInput{JobID: "job-1", VendorID: "v1", Amount: 450})
		if !errors.Is(err, ErrDuplicateBid) {
			t.Fatalf("expected ErrDuplicateBid, got %v", err)
		}
	})

	t.Run("inactive vendor", func(t *testing.T) {
		uc, m := newBidUseCase(t)
		inactive := vendor
		inactive.Active = false
		m.vendors.EXPECT().GetByID(gomock.Any(), "v1").Return(inactive, nil)

		_, err := uc.Submit(context.Background(), SubmitBidInput{JobID: "job-1", VendorID: "v1", Amount: 450})
		if !errors.Is(err, ErrVendorInactive) {
			t.Fatalf("expected ErrVendorInactive, got %v", err)
		}
	})
}

func TestBidUseCase_Accept(t *testing.T) {
	t.Run("rejects colliding submitted bids in one write", func(t *testing.T) {
		uc, m := newBidUseCase(t)
		target := entities.Bid{ID: "h1", JobID: "job-1", BidType: entities.BidTypeHauling, Status: entities.BidStatusSubmitted}
		jobBids := []entities.Bid{
			target,
			{ID: "h2", JobID: "job-1", BidType: entities.BidTypeHauling, Status: entities.BidStatusSubmitted},
			{ID: "d1", JobID: "job-1", BidType: entities.BidTypeDonation, Status: entities.BidStatusSubmitted},
		}
		m.bids.EXPECT().GetByID(gomock.Any(), "h1").Return(target, nil).Times(2)
		m.bids.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(jobBids, nil)
		m.bids.EXPECT().ApplyAcceptance(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p ledger.AcceptancePlan) error {
			if len(p.Rejected) != 1 || p.Rejected[0].ID != "h2" {
				t.Fatalf("unexpected rejections: %+v", p.Rejected)
			}
			return nil
		})

		bid, err := uc.Accept(context.Background(), "h1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bid.Status != entities.BidStatusAccepted {
			t.Fatalf("expected accepted, got %s", bid.Status)
		}
	})

	t.Run("losing a race reports the current state", func(t *testing.T) {
		uc, m := newBidUseCase(t)
		submitted := entities.Bid{ID: "h2", JobID: "job-1", BidType: entities.BidTypeHauling, Status: entities.BidStatusSubmitted}
		rejected := submitted
		rejected.Status = entities.BidStatusRejected
		gomock.InOrder(
			m.bids.EXPECT().GetByID(gomock.Any(), "h2").Return(submitted, nil),
			m.bids.EXPECT().GetByID(gomock.Any(), "h2").Return(submitted, nil),
			m.bids.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Bid{submitted}, nil),
			m.bids.EXPECT().ApplyAcceptance(gomock.Any(), gomock.Any()).Return(interfaces.ErrConcurrentUpdate),
			m.bids.EXPECT().GetByID(gomock.Any(), "h2").Return(rejected, nil),
			m.bids.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Bid{rejected}, nil),
		)

		_, err := uc.Accept(context.Background(), "h2")
		if !errors.Is(err, ledger.ErrBidNotSubmitted) {
			t.Fatalf("expected ErrBidNotSubmitted, got %v", err)
		}
		var se *ledger.StateError
		if !errors.As(err, &se) || se.Current != "rejected" {
			t.Fatalf("expected current state rejected, got %v", err)
		}
	})

	t.Run("legacy bid locks both tracks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bids := mock_interfaces.NewMockIBidRepository(ctrl)
		locker := mock_interfaces.NewMockILocker(ctrl)
		uc := NewBidUseCase(bids, nil, nil, nil, locker, nil)

		legacy := entities.Bid{ID: "l1", JobID: "job-1", Status: entities.BidStatusSubmitted}
		bids.EXPECT().GetByID(gomock.Any(), "l1").Return(legacy, nil)
		locker.EXPECT().Lock(gomock.Any(), "bids:job-1:donation").Return(func() {}, nil)
		locker.EXPECT().Lock(gomock.Any(), "bids:job-1:hauling").Return(nil, interfaces.ErrLockNotAcquired)

		_, err := uc.Accept(context.Background(), "l1")
		if !errors.Is(err, ErrBusy) {
			t.Fatalf("expected ErrBusy, got %v", err)
		}
	})
}

func TestBidUseCase_MarkVendorPaid(t *testing.T) {
	accepted := entities.Bid{ID: "h1", JobID: "job-1", VendorID: "v1", BidType: entities.BidTypeHauling, Amount: 300, Status: entities.BidStatusAccepted}

	t.Run("posts expense once and flags bid", func(t *testing.T) {
		uc, m := newBidUseCase(t)
		m.bids.EXPECT().GetByID(gomock.Any(), "h1").Return(accepted, nil).Times(2)
		m.vendors.EXPECT().GetByID(gomock.Any(), "v1").Return(entities.Vendor{ID: "v1", Name: "Junk Co", ServiceType: entities.VendorServiceHauling}, nil)
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(haulingJob("job-1"), nil)
		m.jobs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, j entities.Job) (entities.Job, error) {
			e := j.Finance.Daily[0]
			if e.Label != "Hauling - Junk Co" || e.Amount != -275 || e.Ref != "bid:h1" {
				t.Fatalf("unexpected expense entry: %+v", e)
			}
			return j, nil
		})
		m.bids.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b entities.Bid) (entities.Bid, error) { return b, nil })

		bid, err := uc.MarkVendorPaid(context.Background(), "h1", f64(275))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bid.IsPaid || bid.PaidAmount != 275 {
			t.Fatalf("unexpected bid: %+v", bid)
		}
	})

	t.Run("label follows vendor service type", func(t *testing.T) {
		uc, m := newBidUseCase(t)
		donation := accepted
		donation.ID = "d1"
		donation.BidType = entities.BidTypeDonation
		m.bids.EXPECT().GetByID(gomock.Any(), "d1").Return(donation, nil).Times(2)
		m.vendors.EXPECT().GetByID(gomock.Any(), "v1").Return(entities.Vendor{ID: "v1", Name: "Both Co", ServiceType: entities.VendorServiceBoth}, nil)
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(haulingJob("job-1"), nil)
		m.jobs.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, j entities.Job) (entities.Job, error) {
			if got := j.Finance.Daily[0].Label; got != "Hauling - Both Co" {
				t.Fatalf("expected label Hauling - Both Co, got %q", got)
			}
			return j, nil
		})
		m.bids.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b entities.Bid) (entities.Bid, error) { return b, nil })

		if _, err := uc.MarkVendorPaid(context.Background(), "d1", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		uc, m := newBidUseCase(t)
		paid := accepted
		paid.IsPaid = true
		m.bids.EXPECT().GetByID(gomock.Any(), "h1").Return(paid, nil)

		_, err := uc.MarkVendorPaid(context.Background(), "h1", nil)
		if !errors.Is(err, ledger.ErrBidAlreadyPaid) {
			t.Fatalf("expected ErrBidAlreadyPaid, got %v", err)
		}
	})

	t.Run("submitted bid cannot be paid", func(t *testing.T) {
		uc, m := newBidUseCase(t)
		submitted := accepted
		submitted.Status = entities.BidStatusSubmitted
		m.bids.EXPECT().GetByID(gomock.Any(), "h1").Return(submitted, nil)

		_, err := uc.MarkVendorPaid(context.Background(), "h1", nil)
		if !errors.Is(err, ledger.ErrBidNotAccepted) {
			t.Fatalf("expected ErrBidNotAccepted, got %v", err)
		}
	})
}

func TestBidUseCase_CompleteWork(t *testing.T) {
	uc, m := newBidUseCase(t)
	done := entities.Bid{ID: "h1", Status: entities.BidStatusAccepted, WorkCompleted: true}
	m.bids.EXPECT().GetByID(gomock.Any(), "h1").Return(done, nil)

	_, err := uc.CompleteWork(context.Background(), "h1")
	if !errors.Is(err, ledger.ErrWorkAlreadyCompleted) {
		t.Fatalf("expected ErrWorkAlreadyCompleted, got %v", err)
	}
}

func TestBidUseCase_Opportunities(t *testing.T) {
	uc, m := newBidUseCase(t)
	donations := activeJob("job-d")
	donations.Stage = entities.JobStageDonations
	m.vendors.EXPECT().GetByID(gomock.Any(), "v1").Return(entities.Vendor{ID: "v1", ServiceType: entities.VendorServiceHauling}, nil)
	m.jobs.EXPECT().ListByStatus(gomock.Any(), entities.JobStatusActive).Return([]entities.Job{
		haulingJob("job-h1"), haulingJob("job-h2"), donations, activeJob("job-online"),
	}, nil)
	m.bids.EXPECT().ListByVendorID(gomock.Any(), "v1").Return([]entities.Bid{
		{JobID: "job-h2", BidType: entities.BidTypeHauling},
	}, nil)

	jobs, err := uc.Opportunities(context.Background(), "v1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != "job-h1" {
		t.Fatalf("expected only job-h1, got %+v", jobs)
	}
}
