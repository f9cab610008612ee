package routes

import (
	"kept_house/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathVendors = "/vendors"
	PathBids    = "/bids"
)

// Vendors may read their own bids and opportunities and submit bids; the rest
// is agent-only.
func addBidRoutes(rg *gin.RouterGroup, agent, agentOrVendor gin.HandlerFunc, bids *handlers.BidHandler) {
	vendors := rg.Group(PathVendors)
	{
		vendors.POST("", agent, bids.CreateVendor)
		vendors.GET("", agent, bids.ListVendors)
		vendors.GET("/:vendorID", agent, bids.GetVendor)
		vendors.GET("/:vendorID/bids", agentOrVendor, bids.ListVendorBids)
		vendors.GET("/:vendorID/opportunities", agentOrVendor, bids.Opportunities)
	}

	group := rg.Group(PathBids)
	{
		group.POST("", agentOrVendor, bids.SubmitBid)
		group.POST("/:bidID/accept", agent, bids.AcceptBid)
		group.POST("/:bidID/reject", agent, bids.RejectBid)
		group.POST("/:bidID/complete", agent, bids.CompleteWork)
		group.POST("/:bidID/pay", agent, bids.MarkVendorPaid)
	}
}
