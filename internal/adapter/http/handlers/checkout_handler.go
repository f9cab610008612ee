package handlers

import (
	"net/http"
	"strings"

	request "kept_house/internal/adapter/http/dto/request"
	response "kept_house/internal/adapter/http/dto/response"
	"kept_house/internal/domain/entities"
	"kept_house/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler serves the buyer cart and orders. Order refunds go through
// settlement so the ledger stays in step with the payment.
type CheckoutHandler struct {
	checkout   usecase.ICheckoutUseCase
	settlement usecase.ISettlementUseCase
}

func NewCheckoutHandler(checkout usecase.ICheckoutUseCase, settlement usecase.ISettlementUseCase) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, settlement: settlement}
}

// GetCart godoc
// @Summary  Current buyer cart
// @Tags     cart
// @Produce  json
// @Success  200  {object}  usecase.CartView
// @Security Bearer
// @Router   /cart [get]
func (h *CheckoutHandler) GetCart(c *gin.Context) {
	buyer, ok := actorOrUnauthorized(c)
	if !ok {
		return
	}
	cart, err := h.checkout.GetCart(c.Request.Context(), buyer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CheckoutHandler) AddToCart(c *gin.Context) {
	buyer, ok := actorOrUnauthorized(c)
	if !ok {
		return
	}
	var payload request.AddToCartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	cart, err := h.checkout.AddToCart(c.Request.Context(), buyer, strings.TrimSpace(payload.ListingID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CheckoutHandler) RemoveFromCart(c *gin.Context) {
	buyer, ok := actorOrUnauthorized(c)
	if !ok {
		return
	}
	listingID, ok := pathID(c, "listingID")
	if !ok {
		return
	}
	cart, err := h.checkout.RemoveFromCart(c.Request.Context(), buyer, listingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CheckoutHandler) ClearCart(c *gin.Context) {
	buyer, ok := actorOrUnauthorized(c)
	if !ok {
		return
	}
	if err := h.checkout.ClearCart(c.Request.Context(), buyer); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Quote godoc
// @Summary      Price the cart
// @Description  Subtotal, delivery and 7.8% tax on subtotal plus delivery, rounded to cents.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        delivery  body      request.DeliveryRequest  true  "Delivery"
// @Success      200       {object}  usecase.Quote
// @Failure      409       {object}  pkg.HTTPError
// @Failure      503       {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /checkout/quote [post]
func (h *CheckoutHandler) Quote(c *gin.Context) {
	buyer, ok := actorOrUnauthorized(c)
	if !ok {
		return
	}
	var payload request.DeliveryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	quote, err := h.checkout.Quote(c.Request.Context(), buyer, payload.ToDelivery())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// Checkout godoc
// @Summary      Place an order
// @Description  Re-validates the cart, creates a pending order and returns the payment checkout URL.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        checkout  body      request.CheckoutRequest  true  "Checkout"
// @Success      201       {object}  response.OrderResponse
// @Failure      409       {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	buyer, ok := actorOrUnauthorized(c)
	if !ok {
		return
	}
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	order, err := h.checkout.Checkout(c.Request.Context(), buyer, payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func (h *CheckoutHandler) ListOrders(c *gin.Context) {
	buyer, ok := actorOrUnauthorized(c)
	if !ok {
		return
	}
	orders, err := h.checkout.ListOrders(c.Request.Context(), buyer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	buyer, ok := actorOrUnauthorized(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, "orderID")
	if !ok {
		return
	}
	order, err := h.checkout.GetOrder(c.Request.Context(), buyer, orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *CheckoutHandler) UpdateFulfillment(c *gin.Context) {
	orderID, ok := pathID(c, "orderID")
	if !ok {
		return
	}
	var payload request.FulfillmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	status := entities.FulfillmentStatus(strings.TrimSpace(payload.Status))
	order, err := h.checkout.UpdateFulfillment(c.Request.Context(), orderID, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// RefundOrder godoc
// @Summary      Refund a paid order
// @Description  Posts a negative revenue entry per job. Items stay sold.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        orderID  path      string                 true  "Order ID"
// @Param        refund   body      request.RefundRequest  true  "Reason"
// @Success      200      {object}  response.OrderResponse
// @Failure      409      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/{orderID}/refund [post]
func (h *CheckoutHandler) RefundOrder(c *gin.Context) {
	orderID, ok := pathID(c, "orderID")
	if !ok {
		return
	}
	var payload request.RefundRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, errInvalidPayload)
		return
	}

	order, err := h.settlement.RefundOrder(c.Request.Context(), orderID, strings.TrimSpace(payload.Reason))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}
