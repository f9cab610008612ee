package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"kept_house/internal/infrastructure/logger"
	"kept_house/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidPaymentID = errors.New("invalid provider payment id")

const currencyID = "USD"

type Options struct {
	AccessToken     string
	NotificationURL string
	Mock            bool
}

// MercadoPagoGateway creates checkout preferences and reads payments back.
//
// In mock mode no network calls are made: each checkout is remembered and
// GetPayment on its id reports it approved for the full amount, which lets a
// local webhook call settle an order end to end.
type MercadoPagoGateway struct {
	preferences     preference.Client
	payments        payment.Client
	notificationURL string
	mockMode        bool

	mu       sync.Mutex
	sessions map[string]interfaces.PaymentConfirmation
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(opts Options) (*MercadoPagoGateway, error) {
	log := logger.Component(context.Background(), "payment", "gateway")
	if opts.Mock {
		log.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, sessions: make(map[string]interfaces.PaymentConfirmation)}, nil
	}

	if opts.AccessToken == "" {
		log.Warn("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(opts.AccessToken)
	if err != nil {
		log.WithError(err).Error("failed creating sdk config")
		return nil, err
	}
	log.Info("Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences:     preference.NewClient(cfg),
		payments:        payment.NewClient(cfg),
		notificationURL: opts.NotificationURL,
	}, nil
}

func (g *MercadoPagoGateway) CreateCheckout(ctx context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSession, error) {
	log := logger.Component(ctx, "payment", "gateway").WithField("external_reference", req.ExternalReference)

	if g != nil && g.mockMode {
		id := "mock-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		g.mu.Lock()
		g.sessions[id] = interfaces.PaymentConfirmation{
			PaymentID:         id,
			Status:            interfaces.ProviderStatusApproved,
			ExternalReference: req.ExternalReference,
			Amount:            checkoutAmount(req.Lines),
		}
		g.mu.Unlock()
		log.WithField("checkout_id", id).Info("mock checkout created")
		return interfaces.CheckoutSession{ID: id, URL: "https://mock.checkout.local/" + id}, nil
	}

	if g == nil || g.preferences == nil {
		log.Warn("gateway not configured")
		return interfaces.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}

	items := make([]preference.ItemRequest, 0, len(req.Lines))
	for _, l := range req.Lines {
		items = append(items, preference.ItemRequest{
			ID:         l.ID,
			Title:      l.Title,
			PictureURL: l.PictureURL,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			CurrencyID: currencyID,
		})
	}
	pref := preference.Request{
		Items:             items,
		ExternalReference: req.ExternalReference,
		NotificationURL:   g.notificationURL,
		Metadata:          req.Metadata,
	}
	if req.PayerEmail != "" {
		pref.Payer = &preference.PayerRequest{Email: req.PayerEmail}
	}

	resp, err := g.preferences.Create(ctx, pref)
	if err != nil {
		log.WithError(err).Error("sdk preference create failed")
		return interfaces.CheckoutSession{}, err
	}
	log.WithField("preference_id", resp.ID).Info("preference created")
	return interfaces.CheckoutSession{ID: resp.ID, URL: resp.InitPoint}, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (interfaces.PaymentConfirmation, error) {
	log := logger.Component(ctx, "payment", "gateway").WithField("payment_id", paymentID)

	if g != nil && g.mockMode {
		g.mu.Lock()
		conf, ok := g.sessions[paymentID]
		g.mu.Unlock()
		if !ok {
			return interfaces.PaymentConfirmation{PaymentID: paymentID, Status: interfaces.ProviderStatusRejected}, nil
		}
		return conf, nil
	}

	if g == nil || g.payments == nil {
		return interfaces.PaymentConfirmation{}, ErrMercadoPagoGatewayNotConfigured
	}
	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil {
		return interfaces.PaymentConfirmation{}, ErrInvalidPaymentID
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		log.WithError(err).Error("sdk payment get failed")
		return interfaces.PaymentConfirmation{}, err
	}
	log.WithField("provider_status", resp.Status).Info("payment fetched")
	return interfaces.PaymentConfirmation{
		PaymentID:         fmt.Sprintf("%d", resp.ID),
		Status:            resp.Status,
		ExternalReference: resp.ExternalReference,
		Amount:            resp.TransactionAmount,
	}, nil
}

func checkoutAmount(lines []interfaces.CheckoutLine) float64 {
	var cents int64
	for _, l := range lines {
		cents += int64(l.UnitPrice*100+0.5) * int64(l.Quantity)
	}
	return float64(cents) / 100
}
