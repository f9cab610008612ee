package routes

import (
	"kept_house/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCart     = "/cart"
	PathCheckout = "/checkout"
	PathOrders   = "/orders"
)

func addCheckoutRoutes(rg *gin.RouterGroup, buyer, agent gin.HandlerFunc, checkout *handlers.CheckoutHandler) {
	cart := rg.Group(PathCart, buyer)
	{
		cart.GET("", checkout.GetCart)
		cart.DELETE("", checkout.ClearCart)
		cart.POST("/items", checkout.AddToCart)
		cart.DELETE("/items/:listingID", checkout.RemoveFromCart)
	}

	co := rg.Group(PathCheckout, buyer)
	{
		co.POST("", checkout.Checkout)
		co.POST("/quote", checkout.Quote)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", buyer, checkout.ListOrders)
		orders.GET("/:orderID", buyer, checkout.GetOrder)
		orders.PATCH("/:orderID/fulfillment", agent, checkout.UpdateFulfillment)
		orders.POST("/:orderID/refund", agent, checkout.RefundOrder)
	}
}
