package routes

import (
	"kept_house/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathJobs = "/jobs"

func addJobRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, jobs *handlers.JobHandler, items *handlers.ItemHandler, bids *handlers.BidHandler) {
	group := rg.Group(PathJobs, auth)
	{
		group.POST("", jobs.CreateJob)
		group.GET("", jobs.ListJobs)
		group.GET("/:jobID", jobs.GetJob)
		group.PATCH("/:jobID/stage", jobs.UpdateStage)
		group.PATCH("/:jobID/sale-window", jobs.UpdateSaleWindow)
		group.POST("/:jobID/deposit-checkout", jobs.CreateDepositCheckout)

		group.GET("/:jobID/finance", jobs.FinanceSummary)
		group.POST("/:jobID/finance/daily-sales", jobs.AddDailySales)
		group.PATCH("/:jobID/finance/fees", jobs.UpdateFees)
		group.POST("/:jobID/finance/recompute", jobs.RecomputeFinance)

		group.GET("/:jobID/items", items.JobItems)
		group.GET("/:jobID/item-documents", items.ListJobItemDocuments)
		group.GET("/:jobID/bids", bids.ListJobBids)
	}
}
