package handlers

import (
	"net/http"
	"strconv"
	"strings"

	request "kept_house/internal/adapter/http/dto/request"
	response "kept_house/internal/adapter/http/dto/response"
	"kept_house/internal/domain/entities"
	"kept_house/internal/usecase"
	"kept_house/pkg"

	"github.com/gin-gonic/gin"
)

// ItemHandler serves item documents: cataloguing, approval and dispositions.
type ItemHandler struct {
	items        usecase.IItemUseCase
	dispositions usecase.IDispositionUseCase
}

func NewItemHandler(items usecase.IItemUseCase, dispositions usecase.IDispositionUseCase) *ItemHandler {
	return &ItemHandler{items: items, dispositions: dispositions}
}

// CreateItemDocument godoc
// @Summary  Create an item document
// @Tags     items
// @Accept   json
// @Produce  json
// @Param    document  body      request.CreateItemDocumentRequest  true  "Document"
// @Success  201       {object}  response.ItemDocumentResponse
// @Failure  404       {object}  pkg.HTTPError
// @Security Bearer
// @Router   /item-documents [post]
func (h *ItemHandler) CreateItemDocument(c *gin.Context) {
	var payload request.CreateItemDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	doc, err := h.items.Create(c.Request.Context(), strings.TrimSpace(payload.JobID), strings.TrimSpace(payload.Title), payload.Photos)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromItemDocument(doc))
}

func (h *ItemHandler) GetItemDocument(c *gin.Context) {
	id, ok := pathID(c, "docID")
	if !ok {
		return
	}
	doc, err := h.items.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromItemDocument(doc))
}

func (h *ItemHandler) ListJobItemDocuments(c *gin.Context) {
	jobID, ok := pathID(c, "jobID")
	if !ok {
		return
	}
	docs, err := h.items.ListByJob(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromItemDocuments(docs))
}

// JobItems godoc
// @Summary      Approved items of a job
// @Description  Every approved item with its effective disposition and summary counts.
// @Tags         items
// @Produce      json
// @Param        jobID  path      string  true  "Job ID"
// @Success      200    {object}  usecase.JobItems
// @Security     Bearer
// @Router       /jobs/{jobID}/items [get]
func (h *ItemHandler) JobItems(c *gin.Context) {
	jobID, ok := pathID(c, "jobID")
	if !ok {
		return
	}
	items, err := h.dispositions.JobItems(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) AddPhotos(c *gin.Context) {
	id, ok := pathID(c, "docID")
	if !ok {
		return
	}
	var payload request.AddPhotosRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	doc, err := h.items.AddPhotos(c.Request.Context(), id, payload.Photos)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromItemDocument(doc))
}

// Analyze asks the vision service for suggestions. An empty body analyzes
// every photo on its own.
func (h *ItemHandler) Analyze(c *gin.Context) {
	id, ok := pathID(c, "docID")
	if !ok {
		return
	}
	var payload request.AnalyzeRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondInvalid(c, errInvalidPayload)
			return
		}
	}

	doc, err := h.items.Analyze(c.Request.Context(), id, payload.Groups)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromItemDocument(doc))
}

// Approve godoc
// @Summary  Approve item groups
// @Tags     items
// @Accept   json
// @Produce  json
// @Param    docID  path      string                  true  "Item document ID"
// @Param    items  body      request.ApproveRequest  true  "Approved items"
// @Success  200    {object}  response.ItemDocumentResponse
// @Failure  409    {object}  pkg.HTTPError
// @Security Bearer
// @Router   /item-documents/{docID}/approve [post]
func (h *ItemHandler) Approve(c *gin.Context) {
	id, ok := pathID(c, "docID")
	if !ok {
		return
	}
	var payload request.ApproveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	doc, err := h.items.Approve(c.Request.Context(), id, payload.ToEntities())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromItemDocument(doc))
}

func (h *ItemHandler) Reopen(c *gin.Context) {
	id, ok := pathID(c, "docID")
	if !ok {
		return
	}
	actor, ok := actorOrUnauthorized(c)
	if !ok {
		return
	}
	var payload request.ReopenRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	doc, err := h.items.Reopen(c.Request.Context(), id, strings.TrimSpace(payload.Reason), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromItemDocument(doc))
}

func (h *ItemHandler) UpdatePricing(c *gin.Context) {
	id, ok := pathID(c, "docID")
	if !ok {
		return
	}
	itemNumber, err := strconv.Atoi(c.Param("itemNumber"))
	if err != nil || itemNumber <= 0 {
		respondInvalid(c, pkg.ErrInvalidRequest)
		return
	}
	var payload request.PricingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	item, err := h.items.UpdatePricing(c.Request.Context(), id, itemNumber, payload.Price, payload.EstateSalePrice)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// MarkSold godoc
// @Summary      Mark photos sold
// @Description  Unions photo indices into the sold set. Already sold indices are ignored.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        docID  path      string                   true  "Item document ID"
// @Param        sold   body      request.MarkSoldRequest  true  "Photo indices"
// @Success      200    {object}  response.DispositionResponse
// @Security     Bearer
// @Router       /item-documents/{docID}/sold [post]
func (h *ItemHandler) MarkSold(c *gin.Context) {
	id, ok := pathID(c, "docID")
	if !ok {
		return
	}
	var payload request.MarkSoldRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	doc, added, err := h.dispositions.MarkSold(c.Request.Context(), id, payload.PhotoIndices)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DispositionResponse{
		Document:  response.FromItemDocument(doc),
		Updated:   len(added),
		NewlySold: added,
	})
}

func (h *ItemHandler) MarkDonated(c *gin.Context) {
	h.dispose(c, entities.DispositionDonated)
}

func (h *ItemHandler) MarkHauled(c *gin.Context) {
	h.dispose(c, entities.DispositionHauled)
}

func (h *ItemHandler) dispose(c *gin.Context, d entities.Disposition) {
	id, ok := pathID(c, "docID")
	if !ok {
		return
	}
	actor, ok := actorOrUnauthorized(c)
	if !ok {
		return
	}
	var payload request.DisposeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	mark := h.dispositions.MarkDonated
	if d == entities.DispositionHauled {
		mark = h.dispositions.MarkHauled
	}
	doc, updated, err := mark(c.Request.Context(), id, payload.ItemNumbers, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DispositionResponse{Document: response.FromItemDocument(doc), Updated: updated})
}
