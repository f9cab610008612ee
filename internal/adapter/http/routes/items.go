package routes

import (
	"kept_house/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathItemDocuments = "/item-documents"

func addItemRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, items *handlers.ItemHandler) {
	group := rg.Group(PathItemDocuments, auth)
	{
		group.POST("", items.CreateItemDocument)
		group.GET("/:docID", items.GetItemDocument)
		group.POST("/:docID/photos", items.AddPhotos)
		group.POST("/:docID/analyze", items.Analyze)
		group.POST("/:docID/approve", items.Approve)
		group.POST("/:docID/reopen", items.Reopen)
		group.PATCH("/:docID/items/:itemNumber/pricing", items.UpdatePricing)

		group.POST("/:docID/sold", items.MarkSold)
		group.POST("/:docID/donated", items.MarkDonated)
		group.POST("/:docID/hauled", items.MarkHauled)
	}
}
