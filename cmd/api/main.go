package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	_ "kept_house/docs"
	"kept_house/internal/adapter/http/routes"
	"kept_house/internal/infrastructure/config"
	"kept_house/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Kept House API
// @version         1.0
// @description     Estate-sale ledger, item dispositions, vendor bids and the buyer marketplace.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	configPath := flag.String("config", "", "path to a config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Default().WithError(err).Fatal("failed to load config")
	}

	log := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		ServiceName: "kept-house-api",
		File:        cfg.Log.File,
		MaxSizeMB:   cfg.Log.MaxSizeMB,
		MaxBackups:  cfg.Log.MaxBackups,
		MaxAgeDays:  cfg.Log.MaxAgeDays,
	})
	logger.SetDefault(log)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		log.WithError(err).Error("server stopped")
		os.Exit(1)
	}
}
