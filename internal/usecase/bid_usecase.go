package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"kept_house/internal/domain/entities"
	"kept_house/internal/domain/ledger"
	"kept_house/internal/infrastructure/logger"
	"kept_house/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDuplicateBid   = errors.New("vendor already has a pending bid for this work")
	ErrVendorInactive = errors.New("vendor is inactive")
	ErrJobNotActive   = errors.New("job is not accepting bids")
)

type SubmitBidInput struct {
	JobID    string
	VendorID string
	Amount   float64
	Notes    string
}

// IBidUseCase covers the vendor bidding marketplace from submission to payout.
type IBidUseCase interface {
	Submit(ctx context.Context, in SubmitBidInput) (entities.Bid, error)
	Accept(ctx context.Context, bidID string) (entities.Bid, error)
	Reject(ctx context.Context, bidID string) (entities.Bid, error)
	CompleteWork(ctx context.Context, bidID string) (entities.Bid, error)
	MarkVendorPaid(ctx context.Context, bidID string, paidAmount *float64) (entities.Bid, error)
	ListByJob(ctx context.Context, jobID string) ([]entities.Bid, error)
	ListByVendor(ctx context.Context, vendorID string) ([]entities.Bid, error)
	Opportunities(ctx context.Context, vendorID string) ([]entities.Job, error)
}

type BidUseCase struct {
	bids     interfaces.IBidRepository
	vendors  interfaces.IVendorRepository
	jobs     interfaces.IJobRepository
	finance  IFinanceUseCase
	locker   interfaces.ILocker
	notifier interfaces.INotifier
	now      clock
}

var _ IBidUseCase = (*BidUseCase)(nil)

func NewBidUseCase(
	bids interfaces.IBidRepository,
	vendors interfaces.IVendorRepository,
	jobs interfaces.IJobRepository,
	finance IFinanceUseCase,
	locker interfaces.ILocker,
	notifier interfaces.INotifier,
) *BidUseCase {
	return &BidUseCase{bids: bids, vendors: vendors, jobs: jobs, finance: finance, locker: locker, notifier: notifier, now: utcNow}
}

func bidLockKey(jobID string, t entities.BidType) string {
	return "bids:" + jobID + ":" + string(t)
}

func (u *BidUseCase) Submit(ctx context.Context, in SubmitBidInput) (entities.Bid, error) {
	if strings.TrimSpace(in.JobID) == "" || strings.TrimSpace(in.VendorID) == "" {
		return entities.Bid{}, ErrInvalidID
	}
	if in.Amount <= 0 {
		return entities.Bid{}, ledger.ErrInvalidAmount
	}
	vendor, err := u.vendors.GetByID(ctx, in.VendorID)
	if err != nil {
		return entities.Bid{}, err
	}
	if vendor.ID == "" {
		return entities.Bid{}, ErrVendorNotFound
	}
	if !vendor.Active {
		return entities.Bid{}, ErrVendorInactive
	}
	job, err := loadJob(ctx, u.jobs, in.JobID)
	if err != nil {
		return entities.Bid{}, err
	}
	if job.Status != entities.JobStatusActive {
		return entities.Bid{}, ErrJobNotActive
	}

	bidType := ledger.BidTypeForStage(job.Stage)
	unlock, err := lock(ctx, u.locker, bidLockKey(job.ID, bidType))
	if err != nil {
		return entities.Bid{}, err
	}
	defer unlock()

	existing, err := u.bids.ListByJobID(ctx, job.ID)
	if err != nil {
		return entities.Bid{}, err
	}
	for _, b := range existing {
		if b.VendorID == vendor.ID && b.Status == entities.BidStatusSubmitted && b.BidType == bidType {
			return entities.Bid{}, ErrDuplicateBid
		}
	}

	now := u.now()
	bid, err := u.bids.Create(ctx, entities.Bid{
		ID:        uuid.NewString(),
		JobID:     job.ID,
		VendorID:  vendor.ID,
		BidType:   bidType,
		Amount:    ledger.RoundCents(in.Amount),
		Notes:     strings.TrimSpace(in.Notes),
		Status:    entities.BidStatusSubmitted,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return entities.Bid{}, err
	}
	logger.Component(ctx, "bid", "usecase").WithFields(logger.Fields{
		logger.FieldBidID: bid.ID, logger.FieldJobID: job.ID, "bid_type": bidType,
	}).Info("bid submitted")
	return bid, nil
}

// Accept makes bidID the accepted bid of its track and rejects every other
// submitted bid it collides with, in one transactional write. A legacy
// untyped bid serializes against both tracks.
func (u *BidUseCase) Accept(ctx context.Context, bidID string) (entities.Bid, error) {
	bid, err := u.getBid(ctx, bidID)
	if err != nil {
		return entities.Bid{}, err
	}
	if err := ledger.CheckAccept(bid); err != nil {
		return entities.Bid{}, err
	}

	tracks := []entities.BidType{bid.BidType}
	if bid.BidType == "" {
		tracks = []entities.BidType{entities.BidTypeDonation, entities.BidTypeHauling}
	}
	for _, t := range tracks {
		unlock, err := lock(ctx, u.locker, bidLockKey(bid.JobID, t))
		if err != nil {
			return entities.Bid{}, err
		}
		defer unlock()
	}

	var plan ledger.AcceptancePlan
	err = retryOnConflict(func() error {
		current, err := u.getBid(ctx, bidID)
		if err != nil {
			return err
		}
		jobBids, err := u.bids.ListByJobID(ctx, current.JobID)
		if err != nil {
			return err
		}
		plan, err = ledger.PlanAcceptance(current, jobBids, u.now())
		if err != nil {
			return err
		}
		return u.bids.ApplyAcceptance(ctx, plan)
	})
	if err != nil {
		return entities.Bid{}, err
	}

	logger.Component(ctx, "bid", "usecase").WithFields(logger.Fields{
		logger.FieldBidID: bidID, logger.FieldJobID: plan.Accepted.JobID, "rejected": len(plan.Rejected),
	}).Info("bid accepted")
	publish(ctx, u.notifier, entities.DomainEvent{
		Type: entities.EventBidAccepted, JobID: plan.Accepted.JobID, EntityID: bidID,
		Payload: map[string]any{"vendor_id": plan.Accepted.VendorID, "amount": plan.Accepted.Amount, "rejected": len(plan.Rejected)},
	})
	return plan.Accepted, nil
}

func (u *BidUseCase) Reject(ctx context.Context, bidID string) (entities.Bid, error) {
	return u.updateBid(ctx, bidID, func(b *entities.Bid) error {
		if err := ledger.CheckReject(*b); err != nil {
			return err
		}
		at := u.now()
		b.Status = entities.BidStatusRejected
		b.RejectedAt = &at
		return nil
	})
}

func (u *BidUseCase) CompleteWork(ctx context.Context, bidID string) (entities.Bid, error) {
	return u.updateBid(ctx, bidID, func(b *entities.Bid) error {
		if err := ledger.CheckComplete(*b); err != nil {
			return err
		}
		at := u.now()
		b.WorkCompleted = true
		b.CompletedAt = &at
		return nil
	})
}

// MarkVendorPaid posts the payout as a job expense and then flags the bid.
// The expense carries the bid's reference, so a retry after a failed bid
// write cannot post it twice.
func (u *BidUseCase) MarkVendorPaid(ctx context.Context, bidID string, paidAmount *float64) (entities.Bid, error) {
	bid, err := u.getBid(ctx, bidID)
	if err != nil {
		return entities.Bid{}, err
	}
	if err := ledger.CheckMarkPaid(bid); err != nil {
		return entities.Bid{}, err
	}
	amount, err := ledger.ResolvePaidAmount(bid, paidAmount)
	if err != nil {
		return entities.Bid{}, err
	}

	vendor, err := u.vendors.GetByID(ctx, bid.VendorID)
	if err != nil {
		return entities.Bid{}, err
	}
	label := ledger.VendorExpenseLabel(vendor.Name, vendor.ServiceType)

	if _, err := u.finance.PostExpense(ctx, bid.JobID, amount, label, bidReference(bid.ID)); err != nil {
		return entities.Bid{}, err
	}

	paid, err := u.updateBid(ctx, bidID, func(b *entities.Bid) error {
		if err := ledger.CheckMarkPaid(*b); err != nil {
			return err
		}
		at := u.now()
		b.IsPaid = true
		b.PaidAt = &at
		b.PaidAmount = amount
		return nil
	})
	if err != nil {
		return entities.Bid{}, err
	}
	logger.Component(ctx, "bid", "usecase").WithFields(logger.Fields{
		logger.FieldBidID: bidID, logger.FieldJobID: bid.JobID, "amount": amount,
	}).Info("vendor paid")
	return paid, nil
}

func (u *BidUseCase) ListByJob(ctx context.Context, jobID string) ([]entities.Bid, error) {
	if strings.TrimSpace(jobID) == "" {
		return nil, ErrInvalidID
	}
	return u.bids.ListByJobID(ctx, jobID)
}

func (u *BidUseCase) ListByVendor(ctx context.Context, vendorID string) ([]entities.Bid, error) {
	if strings.TrimSpace(vendorID) == "" {
		return nil, ErrInvalidID
	}
	return u.bids.ListByVendorID(ctx, vendorID)
}

// Opportunities lists active jobs in a bidding stage the vendor serves and has
// not bid on yet.
func (u *BidUseCase) Opportunities(ctx context.Context, vendorID string) ([]entities.Job, error) {
	vendor, err := u.vendors.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if vendor.ID == "" {
		return nil, ErrVendorNotFound
	}
	jobs, err := u.jobs.ListByStatus(ctx, entities.JobStatusActive)
	if err != nil {
		return nil, err
	}
	mine, err := u.bids.ListByVendorID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	bidOn := make(map[string]struct{}, len(mine))
	for _, b := range mine {
		bidOn[b.JobID+"|"+string(b.BidType)] = struct{}{}
	}

	out := []entities.Job{}
	for _, j := range jobs {
		var want entities.VendorServiceType
		switch j.Stage {
		case entities.JobStageDonations:
			want = entities.VendorServiceDonation
		case entities.JobStageHauling:
			want = entities.VendorServiceHauling
		default:
			continue
		}
		if vendor.ServiceType != entities.VendorServiceBoth && vendor.ServiceType != want {
			continue
		}
		if _, ok := bidOn[j.ID+"|"+string(ledger.BidTypeForStage(j.Stage))]; ok {
			continue
		}
		out = append(out, j)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	return out, nil
}

func (u *BidUseCase) getBid(ctx context.Context, id string) (entities.Bid, error) {
	if strings.TrimSpace(id) == "" {
		return entities.Bid{}, ErrInvalidID
	}
	b, err := u.bids.GetByID(ctx, id)
	if err != nil {
		return entities.Bid{}, err
	}
	if b.ID == "" {
		return entities.Bid{}, ErrBidNotFound
	}
	return b, nil
}

func (u *BidUseCase) updateBid(ctx context.Context, id string, fn func(*entities.Bid) error) (entities.Bid, error) {
	var saved entities.Bid
	err := retryOnConflict(func() error {
		b, err := u.getBid(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(&b); err != nil {
			return err
		}
		b.UpdatedAt = u.now()
		saved, err = u.bids.Update(ctx, b)
		return err
	})
	return saved, err
}
