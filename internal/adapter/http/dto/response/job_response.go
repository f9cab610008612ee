package response

import (
	"time"

	"kept_house/internal/domain/entities"
	"kept_house/internal/domain/ledger"
)

type JobResponse struct {
	entities.Job
	SaleStatus ledger.SaleStatus `json:"sale_status"`
}

func FromJob(j entities.Job, now time.Time) JobResponse {
	return JobResponse{Job: j, SaleStatus: ledger.SaleWindowStatus(j.SaleWindow, now)}
}

func FromJobs(jobs []entities.Job, now time.Time) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j, now))
	}
	return out
}

type CheckoutSessionResponse struct {
	CheckoutID  string `json:"checkout_id"`
	CheckoutURL string `json:"checkout_url"`
}
