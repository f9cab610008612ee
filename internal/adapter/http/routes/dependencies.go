package routes

import (
	"context"
	"fmt"
	"time"

	"kept_house/internal/adapter/http/handlers"
	"kept_house/internal/adapter/persistence/repository"
	"kept_house/internal/infrastructure/cache"
	appconfig "kept_house/internal/infrastructure/config"
	"kept_house/internal/infrastructure/database"
	"kept_house/internal/infrastructure/lock"
	"kept_house/internal/infrastructure/logger"
	"kept_house/internal/infrastructure/notify"
	"kept_house/internal/infrastructure/payments"
	"kept_house/internal/infrastructure/shipping"
	"kept_house/internal/infrastructure/vision"
	"kept_house/internal/usecase"
	"kept_house/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const lockWait = 5 * time.Second

// BuildHandlers connects the stores, picks redis-backed or in-process
// coordination and assembles the usecases. The returned cleanup closes what
// was opened.
func BuildHandlers(ctx context.Context, cfg *appconfig.Config) (*Handlers, func(), error) {
	log := logger.Component(ctx, "bootstrap")

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, nil, fmt.Errorf("connect dynamodb: %w", err)
	}

	rdb, err := database.ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		log.WithError(err).Warn("redis unavailable, using in-process coordination")
		rdb = nil
	}
	cleanup := func() {
		if rdb != nil {
			_ = rdb.Close()
		}
	}

	t := cfg.DynamoDB
	jobRepo := repository.NewJobDynamoRepository(ddb, t.JobsTable)
	docRepo := repository.NewItemDocumentDynamoRepository(ddb, t.ItemsTable)
	bidRepo := repository.NewBidDynamoRepository(ddb, t.BidsTable)
	vendorRepo := repository.NewVendorDynamoRepository(ddb, t.VendorsTable)
	orderRepo := repository.NewOrderDynamoRepository(ddb, t.OrdersTable)
	cartRepo := repository.NewCartDynamoRepository(ddb, t.CartsTable)

	locker, jobCache, notifier := coordination(rdb, jobRepo, cfg)

	var gateway interfaces.IPaymentGateway
	mp, err := payments.NewMercadoPagoGateway(payments.Options{
		AccessToken:     cfg.MercadoPago.AccessToken,
		NotificationURL: cfg.MercadoPago.NotificationURL,
		Mock:            cfg.MercadoPago.Mock,
	})
	if err != nil {
		log.WithError(err).Warn("Mercado Pago gateway not configured, checkouts are disabled")
	} else {
		gateway = mp
	}

	finance := usecase.NewFinanceUseCase(jobRepo, locker, notifier)
	dispositions := usecase.NewDispositionUseCase(docRepo, jobRepo, notifier)
	market := usecase.NewMarketplaceUseCase(docRepo, jobRepo, jobCache)
	jobs := usecase.NewJobUseCase(jobRepo, gateway)
	items := usecase.NewItemUseCase(docRepo, jobRepo, vision.NewOpenAICataloguer(cfg.Vision))
	vendors := usecase.NewVendorUseCase(vendorRepo)
	bids := usecase.NewBidUseCase(bidRepo, vendorRepo, jobRepo, finance, locker, notifier)
	checkout := usecase.NewCheckoutUseCase(cartRepo, orderRepo, market, shipping.New(cfg.Shipping), gateway, cfg.Checkout.TaxRate)
	settlement := usecase.NewSettlementUseCase(orderRepo, cartRepo, gateway, dispositions, finance, notifier)

	secret := cfg.MercadoPago.WebhookSecret
	verify := func(header, requestID, dataID string) error {
		return payments.VerifyWebhookSignature(secret, header, requestID, dataID)
	}

	return &Handlers{
		Jobs:        handlers.NewJobHandler(jobs, finance),
		Items:       handlers.NewItemHandler(items, dispositions),
		Bids:        handlers.NewBidHandler(bids, vendors),
		Marketplace: handlers.NewMarketplaceHandler(market),
		Checkout:    handlers.NewCheckoutHandler(checkout, settlement),
		Webhooks:    handlers.NewWebhookHandler(settlement, verify),
	}, cleanup, nil
}

func coordination(rdb *redis.Client, jobs interfaces.IJobRepository, cfg *appconfig.Config) (interfaces.ILocker, interfaces.IActiveJobCache, interfaces.INotifier) {
	if rdb == nil {
		return lock.NewMemoryLocker(lockWait),
			cache.NewMemoryJobCache(jobs, cfg.Marketplace.CacheTTL),
			notify.LogNotifier{}
	}
	return lock.NewRedisLocker(rdb, cfg.Redis.LockTTL, lockWait),
		cache.NewRedisJobCache(rdb, jobs, cfg.Marketplace.CacheTTL),
		notify.Fanout{notify.LogNotifier{}, notify.NewRedisNotifier(rdb, cfg.Redis.EventsChannel)}
}
