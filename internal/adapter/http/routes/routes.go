package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "kept_house/docs"
	"kept_house/internal/adapter/http/handlers"
	"kept_house/internal/adapter/http/middleware"
	appconfig "kept_house/internal/infrastructure/config"
	"kept_house/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 15 * time.Second

// Handlers is everything the router mounts.
type Handlers struct {
	Jobs        *handlers.JobHandler
	Items       *handlers.ItemHandler
	Bids        *handlers.BidHandler
	Marketplace *handlers.MarketplaceHandler
	Checkout    *handlers.CheckoutHandler
	Webhooks    *handlers.WebhookHandler
}

// NewRouter mounts every route under /v1. An empty jwtSecret switches auth to
// the header mode of middleware.Authenticate.
func NewRouter(h *Handlers, jwtSecret string) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	agent := middleware.Authenticate(jwtSecret, middleware.RoleAgent)
	agentOrVendor := middleware.Authenticate(jwtSecret, middleware.RoleAgent, middleware.RoleVendor)
	buyer := middleware.Authenticate(jwtSecret, middleware.RoleBuyer)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, h.Marketplace, h.Jobs)
	addWebhookRoutes(v1, h.Webhooks)
	addJobRoutes(v1, agent, h.Jobs, h.Items, h.Bids)
	addItemRoutes(v1, agent, h.Items)
	addBidRoutes(v1, agent, agentOrVendor, h.Bids)
	addCheckoutRoutes(v1, buyer, agent, h.Checkout)
	return router
}

// Run builds the dependency graph, serves until ctx is done and then drains
// in-flight requests.
func Run(ctx context.Context, cfg *appconfig.Config) error {
	log := logger.Component(ctx, "http", "server")
	gin.SetMode(cfg.Server.Mode)

	h, cleanup, err := BuildHandlers(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if cfg.Auth.JWTSecret == "" {
		log.Warn("JWT_SECRET is empty, callers are identified by X-Actor-ID headers")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           NewRouter(h, cfg.Auth.JWTSecret),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestContext())
	router.Use(middleware.AccessLog())
	router.Use(middleware.Recovery())
}
