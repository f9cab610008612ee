package handlers

import (
	"net/http"

	request "kept_house/internal/adapter/http/dto/request"
	"kept_house/internal/infrastructure/logger"
	"kept_house/internal/usecase"
	"kept_house/pkg"

	"github.com/gin-gonic/gin"
)

// SignatureVerifier checks a provider signature header for one notification.
type SignatureVerifier func(header, requestID, dataID string) error

var errInvalidSignature = pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid webhook signature", http.StatusUnauthorized)

type WebhookHandler struct {
	settlement usecase.ISettlementUseCase
	verify     SignatureVerifier
}

func NewWebhookHandler(settlement usecase.ISettlementUseCase, verify SignatureVerifier) *WebhookHandler {
	if verify == nil {
		verify = func(string, string, string) error { return nil }
	}
	return &WebhookHandler{settlement: settlement, verify: verify}
}

// MercadoPagoNotification godoc
// @Summary      Mercado Pago payment notification
// @Description  Fetches the payment from the provider and settles the order or deposit it references.
// @Description  Non-payment topics and unknown references are acknowledged and ignored.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        notification  body      request.PaymentNotification  false  "Notification"
// @Success      200           {object}  usecase.SettlementResult
// @Failure      401           {object}  pkg.HTTPError
// @Failure      502           {object}  pkg.HTTPError
// @Router       /webhooks/mercadopago [post]
func (h *WebhookHandler) MercadoPagoNotification(c *gin.Context) {
	var payload request.PaymentNotification
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondInvalid(c, errInvalidPayload)
			return
		}
	}

	log := logger.Component(c.Request.Context(), "webhook", "mercadopago")
	if !payload.IsPayment(c.Query("topic")) {
		log.WithField("type", payload.Type).Debug("ignoring non-payment notification")
		c.JSON(http.StatusOK, usecase.SettlementResult{Action: usecase.ActionIgnored})
		return
	}

	paymentID := payload.ResolvePaymentID(c.Query("data.id"), c.Query("id"))
	if paymentID == "" {
		respondInvalid(c, pkg.ErrInvalidRequest)
		return
	}
	if err := h.verify(c.GetHeader("x-signature"), c.GetHeader("x-request-id"), paymentID); err != nil {
		log.WithField("payment_id", paymentID).Warn("rejected notification with bad signature")
		respondInvalid(c, errInvalidSignature)
		return
	}

	result, err := h.settlement.HandlePaymentNotification(c.Request.Context(), paymentID)
	if err != nil {
		respondError(c, err)
		return
	}
	log.WithFields(logger.Fields{"payment_id": paymentID, "action": result.Action, "reference": result.Reference}).Info("notification processed")
	c.JSON(http.StatusOK, result)
}
