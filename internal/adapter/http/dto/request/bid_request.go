package request

import (
	"strings"

	"kept_house/internal/domain/entities"
	"kept_house/internal/usecase"
)

type CreateVendorRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	Type        string `json:"type" binding:"omitempty,oneof=donation_partner hauler cleaner other"`
	ServiceType string `json:"service_type" binding:"omitempty,oneof=hauling donation both"`
}

func (r CreateVendorRequest) ToInput() usecase.CreateVendorInput {
	return usecase.CreateVendorInput{
		Name:        strings.TrimSpace(r.Name),
		Email:       strings.TrimSpace(r.Email),
		Phone:       strings.TrimSpace(r.Phone),
		Type:        entities.VendorType(r.Type),
		ServiceType: entities.VendorServiceType(r.ServiceType),
	}
}

type SubmitBidRequest struct {
	JobID    string  `json:"job_id" binding:"required"`
	VendorID string  `json:"vendor_id" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Notes    string  `json:"notes"`
}

func (r SubmitBidRequest) ToInput() usecase.SubmitBidInput {
	return usecase.SubmitBidInput{
		JobID:    strings.TrimSpace(r.JobID),
		VendorID: strings.TrimSpace(r.VendorID),
		Amount:   r.Amount,
		Notes:    strings.TrimSpace(r.Notes),
	}
}

// MarkPaidRequest overrides the amount posted as expense; the bid amount is
// used when it is omitted.
type MarkPaidRequest struct {
	PaidAmount *float64 `json:"paid_amount"`
}
