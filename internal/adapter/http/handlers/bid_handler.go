package handlers

import (
	"context"
	"net/http"

	request "kept_house/internal/adapter/http/dto/request"
	"kept_house/internal/adapter/http/middleware"
	"kept_house/internal/domain/entities"
	"kept_house/internal/usecase"
	"kept_house/pkg"

	"github.com/gin-gonic/gin"
)

// BidHandler serves vendors and the bidding flow for donation and hauling work.
type BidHandler struct {
	bids    usecase.IBidUseCase
	vendors usecase.IVendorUseCase
}

func NewBidHandler(bids usecase.IBidUseCase, vendors usecase.IVendorUseCase) *BidHandler {
	return &BidHandler{bids: bids, vendors: vendors}
}

func (h *BidHandler) CreateVendor(c *gin.Context) {
	var payload request.CreateVendorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}
	vendor, err := h.vendors.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vendor)
}

func (h *BidHandler) GetVendor(c *gin.Context) {
	id, ok := pathID(c, "vendorID")
	if !ok {
		return
	}
	vendor, err := h.vendors.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

func (h *BidHandler) ListVendors(c *gin.Context) {
	vendors, err := h.vendors.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendors)
}

// SubmitBid godoc
// @Summary      Submit a bid
// @Description  The bid type follows the job stage: donation during donations, hauling otherwise.
// @Tags         bids
// @Accept       json
// @Produce      json
// @Param        bid  body      request.SubmitBidRequest  true  "Bid"
// @Success      201  {object}  entities.Bid
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /bids [post]
func (h *BidHandler) SubmitBid(c *gin.Context) {
	var payload request.SubmitBidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}
	in := payload.ToInput()
	if !h.mayActFor(c, in.VendorID) {
		respondInvalid(c, pkg.ErrForbidden)
		return
	}

	bid, err := h.bids.Submit(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bid)
}

// AcceptBid godoc
// @Summary      Accept a bid
// @Description  Rejects every other submitted bid of the same type on the job.
// @Tags         bids
// @Produce      json
// @Param        bidID  path      string  true  "Bid ID"
// @Success      200    {object}  entities.Bid
// @Failure      409    {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /bids/{bidID}/accept [post]
func (h *BidHandler) AcceptBid(c *gin.Context) {
	h.transition(c, h.bids.Accept)
}

func (h *BidHandler) RejectBid(c *gin.Context) {
	h.transition(c, h.bids.Reject)
}

func (h *BidHandler) CompleteWork(c *gin.Context) {
	h.transition(c, h.bids.CompleteWork)
}

// MarkVendorPaid posts the payout as a job expense before flagging the bid.
func (h *BidHandler) MarkVendorPaid(c *gin.Context) {
	id, ok := pathID(c, "bidID")
	if !ok {
		return
	}
	var payload request.MarkPaidRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondInvalid(c, errInvalidPayload)
			return
		}
	}

	bid, err := h.bids.MarkVendorPaid(c.Request.Context(), id, payload.PaidAmount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bid)
}

func (h *BidHandler) ListJobBids(c *gin.Context) {
	jobID, ok := pathID(c, "jobID")
	if !ok {
		return
	}
	bids, err := h.bids.ListByJob(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bids)
}

func (h *BidHandler) ListVendorBids(c *gin.Context) {
	vendorID, ok := pathID(c, "vendorID")
	if !ok {
		return
	}
	if !h.mayActFor(c, vendorID) {
		respondInvalid(c, pkg.ErrForbidden)
		return
	}
	bids, err := h.bids.ListByVendor(c.Request.Context(), vendorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bids)
}

// Opportunities godoc
// @Summary  Jobs open for a vendor's bid
// @Tags     bids
// @Produce  json
// @Param    vendorID  path   string  true  "Vendor ID"
// @Success  200       {array}  entities.Job
// @Security Bearer
// @Router   /vendors/{vendorID}/opportunities [get]
func (h *BidHandler) Opportunities(c *gin.Context) {
	vendorID, ok := pathID(c, "vendorID")
	if !ok {
		return
	}
	if !h.mayActFor(c, vendorID) {
		respondInvalid(c, pkg.ErrForbidden)
		return
	}
	jobs, err := h.bids.Opportunities(c.Request.Context(), vendorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *BidHandler) transition(c *gin.Context, apply func(ctx context.Context, bidID string) (entities.Bid, error)) {
	id, ok := pathID(c, "bidID")
	if !ok {
		return
	}
	bid, err := apply(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bid)
}

// mayActFor lets agents act for any vendor and vendors only for themselves.
func (h *BidHandler) mayActFor(c *gin.Context, vendorID string) bool {
	if middleware.ActorRole(c) != middleware.RoleVendor {
		return true
	}
	return middleware.ActorID(c) == vendorID
}
