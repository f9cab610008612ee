package handlers

import (
	"net/http"
	"strings"
	"time"

	request "kept_house/internal/adapter/http/dto/request"
	response "kept_house/internal/adapter/http/dto/response"
	"kept_house/internal/domain/entities"
	"kept_house/internal/usecase"

	"github.com/gin-gonic/gin"
)

// JobHandler serves jobs and their finance sub-record.
type JobHandler struct {
	jobs    usecase.IJobUseCase
	finance usecase.IFinanceUseCase
	now     func() time.Time
}

func NewJobHandler(jobs usecase.IJobUseCase, finance usecase.IFinanceUseCase) *JobHandler {
	return &JobHandler{jobs: jobs, finance: finance, now: time.Now}
}

// CreateJob godoc
// @Summary      Create a job
// @Description  Starts an engagement. Jobs with a deposit wait in awaiting_deposit.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      request.CreateJobRequest  true  "Job"
// @Success      201  {object}  response.JobResponse
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	job, err := h.jobs.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job, h.now()))
}

// GetJob godoc
// @Summary  Get a job
// @Tags     jobs
// @Produce  json
// @Param    jobID  path      string  true  "Job ID"
// @Success  200    {object}  response.JobResponse
// @Failure  404    {object}  pkg.HTTPError
// @Security Bearer
// @Router   /jobs/{jobID} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := pathID(c, "jobID")
	if !ok {
		return
	}
	job, err := h.jobs.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job, h.now()))
}

// ListJobs godoc
// @Summary  List jobs
// @Tags     jobs
// @Produce  json
// @Param    status  query  string  false  "awaiting_deposit, active, completed or cancelled"
// @Success  200  {array}  response.JobResponse
// @Security Bearer
// @Router   /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	status := entities.JobStatus(strings.TrimSpace(c.Query("status")))
	jobs, err := h.jobs.List(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJobs(jobs, h.now()))
}

func (h *JobHandler) UpdateStage(c *gin.Context) {
	id, ok := pathID(c, "jobID")
	if !ok {
		return
	}
	var payload request.UpdateStageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	job, err := h.jobs.UpdateStage(c.Request.Context(), id, entities.JobStage(strings.TrimSpace(payload.Stage)))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job, h.now()))
}

func (h *JobHandler) UpdateSaleWindow(c *gin.Context) {
	id, ok := pathID(c, "jobID")
	if !ok {
		return
	}
	var payload request.SaleWindowRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	job, err := h.jobs.UpdateSaleWindow(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job, h.now()))
}

// SaleStatus godoc
// @Summary      Sale status of a job
// @Description  Public. Reports whether the online sale is visible and which price phase applies.
// @Tags         marketplace
// @Produce      json
// @Param        jobID  path      string  true  "Job ID"
// @Success      200    {object}  ledger.SaleStatus
// @Failure      404    {object}  pkg.HTTPError
// @Router       /sale-status/{jobID} [get]
func (h *JobHandler) SaleStatus(c *gin.Context) {
	id, ok := pathID(c, "jobID")
	if !ok {
		return
	}
	status, err := h.jobs.SaleStatus(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// CreateDepositCheckout godoc
// @Summary  Create the deposit checkout for a job
// @Tags     jobs
// @Produce  json
// @Param    jobID  path      string  true  "Job ID"
// @Success  201    {object}  response.CheckoutSessionResponse
// @Failure  409    {object}  pkg.HTTPError
// @Failure  503    {object}  pkg.HTTPError
// @Security Bearer
// @Router   /jobs/{jobID}/deposit-checkout [post]
func (h *JobHandler) CreateDepositCheckout(c *gin.Context) {
	id, ok := pathID(c, "jobID")
	if !ok {
		return
	}
	session, err := h.jobs.CreateDepositCheckout(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.CheckoutSessionResponse{CheckoutID: session.ID, CheckoutURL: session.URL})
}

// FinanceSummary godoc
// @Summary  Finance summary of a job
// @Tags     finance
// @Produce  json
// @Param    jobID  path      string  true  "Job ID"
// @Success  200    {object}  usecase.FinanceSummary
// @Security Bearer
// @Router   /jobs/{jobID}/finance [get]
func (h *JobHandler) FinanceSummary(c *gin.Context) {
	id, ok := pathID(c, "jobID")
	if !ok {
		return
	}
	summary, err := h.finance.Summary(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// AddDailySales records in-person revenue for a sale day.
func (h *JobHandler) AddDailySales(c *gin.Context) {
	id, ok := pathID(c, "jobID")
	if !ok {
		return
	}
	var payload request.DailySalesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	job, err := h.finance.AddDailySales(c.Request.Context(), id, payload.Amount, strings.TrimSpace(payload.Label))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job, h.now()))
}

func (h *JobHandler) UpdateFees(c *gin.Context) {
	id, ok := pathID(c, "jobID")
	if !ok {
		return
	}
	var payload request.UpdateFeesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	job, err := h.finance.UpdateFees(c.Request.Context(), id, payload.ServiceFee, payload.DepositAmount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job, h.now()))
}

func (h *JobHandler) RecomputeFinance(c *gin.Context) {
	id, ok := pathID(c, "jobID")
	if !ok {
		return
	}
	job, err := h.finance.Recompute(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job, h.now()))
}
