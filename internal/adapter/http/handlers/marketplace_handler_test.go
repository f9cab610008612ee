package handlers

import (
	"net/http"
	"testing"

	"kept_house/internal/adapter/http/handlers/mocks"
	"kept_house/internal/domain/entities"
	"kept_house/internal/domain/marketplace"
	"kept_house/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newMarketplaceRouter(t *testing.T) (*gin.Engine, *mocks.MockIMarketplaceUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIMarketplaceUseCase(ctrl)
	h := NewMarketplaceHandler(uc)

	r := newTestRouter()
	r.GET("/v1/marketplace/listings", h.ListListings)
	r.GET("/v1/marketplace/listings/:listingID", h.GetListing)
	r.GET("/v1/marketplace/listings/:listingID/related", h.RelatedListings)
	r.GET("/v1/marketplace/search", h.Search)
	return r, uc
}

func TestMarketplaceHandler_ListListings(t *testing.T) {
	t.Run("parses filter", func(t *testing.T) {
		r, uc := newMarketplaceRouter(t)
		uc.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, f marketplace.Filter) (marketplace.Page, error) {
				if f.Category != "Furniture" || f.Sort != marketplace.SortPriceAsc || f.Page != 2 || f.Limit != 10 {
					t.Fatalf("unexpected filter %+v", f)
				}
				if f.MinPrice == nil || *f.MinPrice != 5 || f.MaxPrice != nil {
					t.Fatalf("unexpected price bounds %+v", f)
				}
				return marketplace.Page{Page: 2, Limit: 10}, nil
			})

		w := doJSON(r, http.MethodGet, "/v1/marketplace/listings?category=Furniture&sort=price_asc&min_price=5&page=2&limit=10", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown sort", func(t *testing.T) {
		r, _ := newMarketplaceRouter(t)
		w := doJSON(r, http.MethodGet, "/v1/marketplace/listings?sort=cheapest", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad price", func(t *testing.T) {
		r, _ := newMarketplaceRouter(t)
		w := doJSON(r, http.MethodGet, "/v1/marketplace/listings?max_price=ten", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestMarketplaceHandler_GetListing(t *testing.T) {
	t.Run("hidden listing", func(t *testing.T) {
		r, uc := newMarketplaceRouter(t)
		uc.EXPECT().Get(gomock.Any(), "doc-1_1").Return(entities.Listing{}, usecase.ErrListingNotFound)

		w := doJSON(r, http.MethodGet, "/v1/marketplace/listings/doc-1_1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		r, uc := newMarketplaceRouter(t)
		uc.EXPECT().Get(gomock.Any(), "nounderscore").Return(entities.Listing{}, marketplace.ErrInvalidListingID)

		w := doJSON(r, http.MethodGet, "/v1/marketplace/listings/nounderscore", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("related", func(t *testing.T) {
		r, uc := newMarketplaceRouter(t)
		uc.EXPECT().Related(gomock.Any(), "doc-1_1").Return([]entities.Listing{{ID: "doc-2_1"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/marketplace/listings/doc-1_1/related", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMarketplaceHandler_Search(t *testing.T) {
	t.Run("missing query", func(t *testing.T) {
		r, uc := newMarketplaceRouter(t)
		uc.EXPECT().Search(gomock.Any(), "", 0, 0).Return(marketplace.Page{}, marketplace.ErrMissingQuery)

		w := doJSON(r, http.MethodGet, "/v1/marketplace/search", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad limit", func(t *testing.T) {
		r, _ := newMarketplaceRouter(t)
		w := doJSON(r, http.MethodGet, "/v1/marketplace/search?q=lamp&limit=x", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("ranked", func(t *testing.T) {
		r, uc := newMarketplaceRouter(t)
		uc.EXPECT().Search(gomock.Any(), "lamp", 1, 24).Return(marketplace.Page{Total: 1, Items: []entities.Listing{{ID: "doc-1_1"}}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/marketplace/search?q=lamp&page=1&limit=24", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
