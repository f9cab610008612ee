package ledger

import (
	"strings"
	"time"

	"kept_house/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PostRevenue appends a revenue entry, grows gross, and rederives fees and net.
//
// A non-empty ref that is already present in the trail makes the call a no-op
// and posted is false. Amounts are rounded to cents before posting.
func PostRevenue(job *entities.Job, amount float64, label, ref string, now time.Time) (posted bool, err error) {
	if !validPositive(amount) {
		return false, ErrInvalidAmount
	}
	if job.Finance.HasRef(ref) {
		return false, nil
	}
	amt := RoundCents(amount)
	appendEntry(job, label, amt, ref, now)
	job.Finance.Gross = addCents(job.Finance.Gross, amt)
	job.Finance.Fees = Commission(job.Finance.Gross)
	RecomputeNet(job)
	return true, nil
}

// PostExpense records a vendor payout. Commission is not affected.
func PostExpense(job *entities.Job, amount float64, label, ref string, now time.Time) (posted bool, err error) {
	if !validPositive(amount) {
		return false, ErrInvalidAmount
	}
	if job.Finance.HasRef(ref) {
		return false, nil
	}
	amt := RoundCents(amount)
	appendEntry(job, label, -amt, ref, now)
	job.Finance.HaulingCost = addCents(job.Finance.HaulingCost, amt)
	RecomputeNet(job)
	return true, nil
}

// PostRefund reverses previously recognised revenue. Gross shrinks and fees
// are rederived from the corrected cumulative gross, so the tier applied to
// the remaining sales follows the new total.
func PostRefund(job *entities.Job, amount float64, label, ref string, now time.Time) (posted bool, err error) {
	if !validPositive(amount) {
		return false, ErrInvalidAmount
	}
	if job.Finance.HasRef(ref) {
		return false, nil
	}
	amt := RoundCents(amount)
	appendEntry(job, label, -amt, ref, now)
	job.Finance.Gross = addCents(job.Finance.Gross, -amt)
	job.Finance.Fees = Commission(job.Finance.Gross)
	RecomputeNet(job)
	return true, nil
}

// ConfirmDeposit stamps the deposit as paid. A deposit already confirmed is a
// no-op and applied is false.
func ConfirmDeposit(job *entities.Job, ref string, now time.Time) (applied bool, err error) {
	if job.DepositAmount <= 0 {
		return false, ErrDepositNotConfigured
	}
	if job.DepositPaidAt != nil {
		return false, nil
	}
	at := now.UTC()
	job.DepositPaidAt = &at
	job.DepositRef = ref
	if job.Status == entities.JobStatusAwaitingDeposit {
		job.Status = entities.JobStatusActive
	}
	RecomputeNet(job)
	return true, nil
}

// RecomputeNet is the only place the net formula lives:
//
//	net = gross - fees - haulingCost - serviceFee + depositPaid
//
// where depositPaid counts only once DepositPaidAt is set.
func RecomputeNet(job *entities.Job) {
	net := decimal.NewFromFloat(job.Finance.Gross).
		Sub(decimal.NewFromFloat(job.Finance.Fees)).
		Sub(decimal.NewFromFloat(job.Finance.HaulingCost)).
		Sub(decimal.NewFromFloat(job.ServiceFee))
	if job.DepositPaidAt != nil {
		net = net.Add(decimal.NewFromFloat(job.DepositAmount))
	}
	job.Finance.Net = net.Round(2).InexactFloat64()
}

// DailySalesLabel is the default label for a manual in-person sales entry.
func DailySalesLabel(label string, now time.Time) string {
	if l := strings.TrimSpace(label); l != "" {
		return l
	}
	return "Estate Sale - " + now.UTC().Format("2006-01-02")
}

func appendEntry(job *entities.Job, label string, amount float64, ref string, now time.Time) {
	job.Finance.Daily = append(job.Finance.Daily, entities.LedgerEntry{
		Label:  label,
		Amount: amount,
		At:     now.UTC(),
		Ref:    ref,
	})
}
