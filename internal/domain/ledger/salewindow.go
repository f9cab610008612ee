package ledger

import (
	"time"

	"kept_house/internal/domain/entities"
)

type SaleStatus struct {
	Visible bool               `json:"visible"`
	Phase   entities.SalePhase `json:"phase,omitempty"`
	Message string             `json:"message,omitempty"`
}

const dateLayout = "Jan 2, 2006"

// SaleWindowStatus evaluates marketplace visibility for a job at now.
// The rules are ordered; the first match wins.
func SaleWindowStatus(w entities.SaleWindow, now time.Time) SaleStatus {
	if !w.IsOnlineSaleActive() {
		return SaleStatus{Visible: false}
	}
	if w.EstateSaleDate != nil && !now.Before(*w.EstateSaleDate) {
		return SaleStatus{Visible: true, Phase: entities.SalePhaseEstate}
	}
	if w.OnlineSaleStartDate != nil && now.Before(*w.OnlineSaleStartDate) {
		return SaleStatus{
			Visible: false,
			Phase:   entities.SalePhaseBeforeOnline,
			Message: "Online sale opens " + w.OnlineSaleStartDate.Format(dateLayout),
		}
	}
	if w.OnlineSaleEndDate != nil && now.After(*w.OnlineSaleEndDate) {
		msg := "Online sale has ended"
		if w.EstateSaleDate != nil {
			msg += ". Estate sale begins " + w.EstateSaleDate.Format(dateLayout)
		}
		return SaleStatus{Visible: false, Phase: entities.SalePhaseBetween, Message: msg}
	}
	return SaleStatus{Visible: true, Phase: entities.SalePhaseOnline}
}

// ValidateSaleWindow rejects a window whose online start is after its end.
func ValidateSaleWindow(w entities.SaleWindow) error {
	if w.OnlineSaleStartDate != nil && w.OnlineSaleEndDate != nil && w.OnlineSaleStartDate.After(*w.OnlineSaleEndDate) {
		return ErrInvalidSaleWindow
	}
	return nil
}
