package request

import (
	"strings"
	"time"

	"kept_house/internal/domain/entities"
	"kept_house/internal/usecase"
)

type SaleWindowRequest struct {
	IsOnlineSaleActive  *bool      `json:"is_online_sale_active"`
	OnlineSaleStartDate *time.Time `json:"online_sale_start_date"`
	OnlineSaleEndDate   *time.Time `json:"online_sale_end_date"`
	EstateSaleDate      *time.Time `json:"estate_sale_date"`
}

func (r SaleWindowRequest) ToEntity() entities.SaleWindow {
	return entities.SaleWindow{
		OnlineSaleActive:    r.IsOnlineSaleActive,
		OnlineSaleStartDate: r.OnlineSaleStartDate,
		OnlineSaleEndDate:   r.OnlineSaleEndDate,
		EstateSaleDate:      r.EstateSaleDate,
	}
}

type CreateJobRequest struct {
	ClientName      string            `json:"client_name" binding:"required"`
	ClientEmail     string            `json:"client_email" binding:"omitempty,email"`
	PropertyAddress string            `json:"property_address"`
	ServiceFee      float64           `json:"service_fee" binding:"gte=0"`
	DepositAmount   float64           `json:"deposit_amount" binding:"gte=0"`
	SaleWindow      SaleWindowRequest `json:"sale_window"`
}

func (r CreateJobRequest) ToInput() usecase.CreateJobInput {
	return usecase.CreateJobInput{
		ClientName:      strings.TrimSpace(r.ClientName),
		ClientEmail:     strings.TrimSpace(r.ClientEmail),
		PropertyAddress: strings.TrimSpace(r.PropertyAddress),
		ServiceFee:      r.ServiceFee,
		DepositAmount:   r.DepositAmount,
		SaleWindow:      r.SaleWindow.ToEntity(),
	}
}

type UpdateStageRequest struct {
	Stage string `json:"stage" binding:"required"`
}

// UpdateFeesRequest leaves a fee unchanged when it is omitted.
type UpdateFeesRequest struct {
	ServiceFee    *float64 `json:"service_fee"`
	DepositAmount *float64 `json:"deposit_amount"`
}

type DailySalesRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Label  string  `json:"label"`
}
