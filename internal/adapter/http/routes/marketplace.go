package routes

import (
	"kept_house/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMarketplace = "/marketplace"
	PathWebhooks    = "/webhooks"
)

// Public routes: the buyer catalogue, sale status and provider callbacks.
func addMarketplaceRoutes(rg *gin.RouterGroup, market *handlers.MarketplaceHandler, jobs *handlers.JobHandler) {
	group := rg.Group(PathMarketplace)
	{
		group.GET("/listings", market.ListListings)
		group.GET("/listings/:listingID", market.GetListing)
		group.GET("/listings/:listingID/related", market.RelatedListings)
		group.GET("/search", market.Search)
	}
	rg.GET("/sale-status/:jobID", jobs.SaleStatus)
}

func addWebhookRoutes(rg *gin.RouterGroup, webhooks *handlers.WebhookHandler) {
	rg.POST(PathWebhooks+"/mercadopago", webhooks.MercadoPagoNotification)
}
