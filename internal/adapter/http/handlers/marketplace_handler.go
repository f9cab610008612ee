package handlers

import (
	"net/http"
	"strings"

	"kept_house/internal/domain/marketplace"
	"kept_house/internal/usecase"

	"github.com/gin-gonic/gin"
)

// MarketplaceHandler is the public, read-only buyer catalogue.
type MarketplaceHandler struct {
	usecase usecase.IMarketplaceUseCase
}

func NewMarketplaceHandler(uc usecase.IMarketplaceUseCase) *MarketplaceHandler {
	return &MarketplaceHandler{usecase: uc}
}

// ListListings godoc
// @Summary  Browse listings
// @Tags     marketplace
// @Produce  json
// @Param    q          query  string  false  "Text filter on title and description"
// @Param    category   query  string  false  "Category"
// @Param    min_price  query  number  false  "Minimum price"
// @Param    max_price  query  number  false  "Maximum price"
// @Param    sort       query  string  false  "new, price_asc or price_desc"
// @Param    page       query  int     false  "Page, from 1"
// @Param    limit      query  int     false  "Page size, at most 48"
// @Success  200  {object}  marketplace.Page
// @Failure  400  {object}  pkg.HTTPError
// @Router   /marketplace/listings [get]
func (h *MarketplaceHandler) ListListings(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}
	page, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetListing godoc
// @Summary  Get a listing
// @Tags     marketplace
// @Produce  json
// @Param    listingID  path      string  true  "Listing ID (<documentID>_<itemNumber>)"
// @Success  200        {object}  entities.Listing
// @Failure  404        {object}  pkg.HTTPError
// @Router   /marketplace/listings/{listingID} [get]
func (h *MarketplaceHandler) GetListing(c *gin.Context) {
	id, ok := pathID(c, "listingID")
	if !ok {
		return
	}
	listing, err := h.usecase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (h *MarketplaceHandler) RelatedListings(c *gin.Context) {
	id, ok := pathID(c, "listingID")
	if !ok {
		return
	}
	related, err := h.usecase.Related(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, related)
}

// Search godoc
// @Summary  Search listings by relevance
// @Tags     marketplace
// @Produce  json
// @Param    q      query  string  true   "Query"
// @Param    page   query  int     false  "Page"
// @Param    limit  query  int     false  "Page size"
// @Success  200    {object}  marketplace.Page
// @Failure  400    {object}  pkg.HTTPError
// @Router   /marketplace/search [get]
func (h *MarketplaceHandler) Search(c *gin.Context) {
	page, err := queryInt(c, "page")
	if err != nil {
		respondInvalid(c, errInvalidQuery)
		return
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		respondInvalid(c, errInvalidQuery)
		return
	}

	result, err := h.usecase.Search(c.Request.Context(), c.Query("q"), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func parseFilter(c *gin.Context) (marketplace.Filter, bool) {
	f := marketplace.Filter{
		Query:    c.Query("q"),
		Category: strings.TrimSpace(c.Query("category")),
	}
	switch s := marketplace.SortOrder(strings.TrimSpace(c.Query("sort"))); s {
	case "", marketplace.SortNewest, marketplace.SortPriceAsc, marketplace.SortPriceDesc:
		f.Sort = s
	default:
		respondInvalid(c, errInvalidQuery)
		return f, false
	}

	var err error
	if f.MinPrice, err = queryFloat(c, "min_price"); err != nil {
		respondInvalid(c, errInvalidQuery)
		return f, false
	}
	if f.MaxPrice, err = queryFloat(c, "max_price"); err != nil {
		respondInvalid(c, errInvalidQuery)
		return f, false
	}
	if f.Page, err = queryInt(c, "page"); err != nil {
		respondInvalid(c, errInvalidQuery)
		return f, false
	}
	if f.Limit, err = queryInt(c, "limit"); err != nil {
		respondInvalid(c, errInvalidQuery)
		return f, false
	}
	return f, true
}
