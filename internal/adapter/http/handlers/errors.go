package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"kept_house/internal/adapter/http/middleware"
	"kept_house/internal/domain/ledger"
	"kept_house/internal/domain/marketplace"
	"kept_house/internal/infrastructure/logger"
	"kept_house/internal/usecase"
	"kept_house/internal/usecase/interfaces"
	"kept_house/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidQuery   = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameters", http.StatusBadRequest)
)

// mapError translates usecase and domain errors into client errors.
func mapError(err error) *pkg.AppError {
	var stateErr *ledger.StateError
	if errors.As(err, &stateErr) {
		return pkg.NewDomainError("INVALID_STATE", stateErr.Err.Error(), err, http.StatusConflict).
			WithDetail("current_status", stateErr.Current)
	}
	var unavailable *usecase.UnavailableError
	if errors.As(err, &unavailable) {
		return pkg.NewDomainError("LISTING_UNAVAILABLE", "Some listings are no longer available", err, http.StatusConflict).
			WithDetail("listing_ids", unavailable.ListingIDs)
	}

	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemDocumentNotFound):
		return pkg.NewDomainErrorSimple("ITEM_DOCUMENT_NOT_FOUND", "Item document not found", http.StatusNotFound)
	case errors.Is(err, ledger.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Approved item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBidNotFound):
		return pkg.NewDomainErrorSimple("BID_NOT_FOUND", "Bid not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVendorNotFound):
		return pkg.NewDomainErrorSimple("VENDOR_NOT_FOUND", "Vendor not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrListingNotFound), errors.Is(err, marketplace.ErrInvalidListingID):
		return pkg.NewDomainErrorSimple("LISTING_NOT_FOUND", "Listing not found", http.StatusNotFound)

	case errors.Is(err, usecase.ErrInvalidID),
		errors.Is(err, usecase.ErrInvalidJobInput),
		errors.Is(err, usecase.ErrInvalidStage),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidLabel),
		errors.Is(err, usecase.ErrInvalidFeeValue),
		errors.Is(err, usecase.ErrInvalidVendorInput),
		errors.Is(err, usecase.ErrNoPhotos),
		errors.Is(err, usecase.ErrEmptyCart),
		errors.Is(err, usecase.ErrInvalidDelivery),
		errors.Is(err, usecase.ErrInvalidFulfillment),
		errors.Is(err, usecase.ErrInvalidBuyer),
		errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrRefundReasonMissing),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrPhotoIndexOutOfRange),
		errors.Is(err, ledger.ErrEmptyPhotoGroup),
		errors.Is(err, ledger.ErrReopenReasonRequired),
		errors.Is(err, ledger.ErrInvalidSaleWindow),
		errors.Is(err, ledger.ErrInvalidDisposition),
		errors.Is(err, marketplace.ErrMissingQuery):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)

	case errors.Is(err, usecase.ErrBusy), errors.Is(err, interfaces.ErrConcurrentUpdate):
		return pkg.NewDomainError("BUSY", "Resource is being updated, retry", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicateBid),
		errors.Is(err, usecase.ErrVendorInactive),
		errors.Is(err, usecase.ErrJobNotActive),
		errors.Is(err, usecase.ErrDepositNotDue),
		errors.Is(err, usecase.ErrOrderNotPaid),
		errors.Is(err, usecase.ErrOrderNotSettleable),
		errors.Is(err, usecase.ErrListingUnavailable),
		errors.Is(err, ledger.ErrDepositNotConfigured),
		errors.Is(err, ledger.ErrNoMatchingItems),
		errors.Is(err, ledger.ErrPhotoIndexTaken),
		errors.Is(err, ledger.ErrEmptyApproval),
		errors.Is(err, ledger.ErrBidTrackTaken):
		return pkg.NewDomainError("CONFLICT", err.Error(), err, http.StatusConflict)

	case errors.Is(err, usecase.ErrShippingUnavailable):
		return pkg.NewDomainError("SHIPPING_UNAVAILABLE", "Shipping quotes are not available", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENTS_UNAVAILABLE", "Payment gateway is not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrUpstreamUnavailable):
		return pkg.ErrUpstreamUnavailable
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Component(c.Request.Context(), "http", "handler").WithError(err).Error("request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalid(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// pathID returns a trimmed path parameter, answering 400 when it is blank.
func pathID(c *gin.Context, name string) (string, bool) {
	id := strings.TrimSpace(c.Param(name))
	if id == "" {
		respondInvalid(c, pkg.ErrInvalidRequest)
		return "", false
	}
	return id, true
}

func actorOrUnauthorized(c *gin.Context) (string, bool) {
	actor := middleware.ActorID(c)
	if actor == "" {
		respondInvalid(c, pkg.ErrUnauthorized)
		return "", false
	}
	return actor, true
}

func queryInt(c *gin.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func queryFloat(c *gin.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
