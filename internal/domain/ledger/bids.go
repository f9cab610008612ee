package ledger

import (
	"time"

	"kept_house/internal/domain/entities"
)

// BidTypeForStage picks the work track a new bid belongs to.
func BidTypeForStage(stage entities.JobStage) entities.BidType {
	if stage == entities.JobStageDonations {
		return entities.BidTypeDonation
	}
	return entities.BidTypeHauling
}

// BidTypesCollide treats a legacy untyped bid as part of every track.
func BidTypesCollide(a, b entities.BidType) bool {
	return a == "" || b == "" || a == b
}

func CheckAccept(bid entities.Bid) error {
	if bid.Status != entities.BidStatusSubmitted {
		return stateErr(ErrBidNotSubmitted, bid.Status)
	}
	return nil
}

func CheckReject(bid entities.Bid) error {
	return CheckAccept(bid)
}

func CheckComplete(bid entities.Bid) error {
	if bid.Status != entities.BidStatusAccepted {
		return stateErr(ErrBidNotAccepted, bid.Status)
	}
	if bid.WorkCompleted {
		return stateErr(ErrWorkAlreadyCompleted, "work_completed")
	}
	return nil
}

func CheckMarkPaid(bid entities.Bid) error {
	if bid.Status != entities.BidStatusAccepted {
		return stateErr(ErrBidNotAccepted, bid.Status)
	}
	if bid.IsPaid {
		return stateErr(ErrBidAlreadyPaid, "paid")
	}
	return nil
}

// AcceptancePlan is the full set of status changes produced by accepting one bid.
type AcceptancePlan struct {
	Accepted entities.Bid
	Rejected []entities.Bid
}

// PlanAcceptance accepts target and rejects every other submitted bid of the
// same job whose type collides with it. A colliding bid that is already
// accepted blocks the plan.
func PlanAcceptance(target entities.Bid, jobBids []entities.Bid, now time.Time) (AcceptancePlan, error) {
	if err := CheckAccept(target); err != nil {
		return AcceptancePlan{}, err
	}
	for _, b := range jobBids {
		if b.ID != target.ID && b.JobID == target.JobID && b.Status == entities.BidStatusAccepted && BidTypesCollide(b.BidType, target.BidType) {
			return AcceptancePlan{}, stateErr(ErrBidTrackTaken, b.ID)
		}
	}
	at := now.UTC()
	target.Status = entities.BidStatusAccepted
	target.AcceptedAt = &at
	target.UpdatedAt = at

	plan := AcceptancePlan{Accepted: target}
	for _, b := range jobBids {
		if b.ID == target.ID || b.JobID != target.JobID || b.Status != entities.BidStatusSubmitted {
			continue
		}
		if !BidTypesCollide(b.BidType, target.BidType) {
			continue
		}
		b.Status = entities.BidStatusRejected
		b.RejectedAt = &at
		b.UpdatedAt = at
		plan.Rejected = append(plan.Rejected, b)
	}
	return plan, nil
}

// ResolvePaidAmount defaults the payout to the bid amount.
func ResolvePaidAmount(bid entities.Bid, paid *float64) (float64, error) {
	if paid == nil {
		return RoundCents(bid.Amount), nil
	}
	if !validPositive(*paid) {
		return 0, ErrInvalidAmount
	}
	return RoundCents(*paid), nil
}

// VendorExpenseLabel names the vendor and the work type for the finance trail.
func VendorExpenseLabel(vendorName string, service entities.VendorServiceType) string {
	if vendorName == "" {
		vendorName = "Vendor"
	}
	if service == entities.VendorServiceHauling || service == entities.VendorServiceBoth {
		return "Hauling - " + vendorName
	}
	return "Donation - " + vendorName
}
