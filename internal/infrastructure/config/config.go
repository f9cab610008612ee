package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Log         LogConfig         `mapstructure:"log"`
	DynamoDB    DynamoDBConfig    `mapstructure:"dynamodb"`
	Redis       RedisConfig       `mapstructure:"redis"`
	MercadoPago MercadoPagoConfig `mapstructure:"mercadopago"`
	Shipping    ShippingConfig    `mapstructure:"shipping"`
	Vision      VisionConfig      `mapstructure:"vision"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Marketplace MarketplaceConfig `mapstructure:"marketplace"`
	Checkout    CheckoutConfig    `mapstructure:"checkout"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type DynamoDBConfig struct {
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	JobsTable       string `mapstructure:"jobs_table"`
	ItemsTable      string `mapstructure:"items_table"`
	BidsTable       string `mapstructure:"bids_table"`
	VendorsTable    string `mapstructure:"vendors_table"`
	OrdersTable     string `mapstructure:"orders_table"`
	CartsTable      string `mapstructure:"carts_table"`
}

// RedisConfig is optional. With an empty Addr the service falls back to
// in-process locks, an in-process job cache and a log-only event sink.
type RedisConfig struct {
	Addr          string        `mapstructure:"addr"`
	Password      string        `mapstructure:"password"`
	DB            int           `mapstructure:"db"`
	LockTTL       time.Duration `mapstructure:"lock_ttl"`
	EventsChannel string        `mapstructure:"events_channel"`
}

type MercadoPagoConfig struct {
	AccessToken     string `mapstructure:"access_token"`
	WebhookSecret   string `mapstructure:"webhook_secret"`
	NotificationURL string `mapstructure:"notification_url"`
	Mock            bool   `mapstructure:"mock"`
}

type ShippingConfig struct {
	BaseURL       string        `mapstructure:"base_url"`
	ClientID      string        `mapstructure:"client_id"`
	ClientSecret  string        `mapstructure:"client_secret"`
	AccountNumber string        `mapstructure:"account_number"`
	Origin        OriginConfig  `mapstructure:"origin"`
	Timeout       time.Duration `mapstructure:"timeout"`
	FlatRate      float64       `mapstructure:"flat_rate"`
}

type OriginConfig struct {
	PostalCode string `mapstructure:"postal_code"`
	State      string `mapstructure:"state"`
	Country    string `mapstructure:"country"`
}

type VisionConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type MarketplaceConfig struct {
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type CheckoutConfig struct {
	TaxRate float64 `mapstructure:"tax_rate"`
}

// Load reads configuration from an optional file, .env and the environment.
// Environment keys use underscores: SERVER_PORT, DYNAMODB_ENDPOINT, ...
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	_ = v.BindEnv("dynamodb.region", "AWS_REGION")
	_ = v.BindEnv("dynamodb.endpoint", "DYNAMODB_ENDPOINT")
	_ = v.BindEnv("dynamodb.access_key_id", "AWS_ACCESS_KEY_ID")
	_ = v.BindEnv("dynamodb.secret_access_key", "AWS_SECRET_ACCESS_KEY")
	_ = v.BindEnv("mercadopago.access_token", "MERCADOPAGO_ACCESS_TOKEN")
	_ = v.BindEnv("mercadopago.webhook_secret", "MERCADOPAGO_WEBHOOK_SECRET")
	_ = v.BindEnv("mercadopago.mock", "PAYMENT_GATEWAY_MOCK")
	_ = v.BindEnv("shipping.client_id", "FEDEX_CLIENT_ID")
	_ = v.BindEnv("shipping.client_secret", "FEDEX_CLIENT_SECRET")
	_ = v.BindEnv("shipping.account_number", "FEDEX_ACCOUNT_NUMBER")
	_ = v.BindEnv("vision.api_key", "OPENAI_API_KEY")
	_ = v.BindEnv("vision.base_url", "OPENAI_BASE_URL")
	_ = v.BindEnv("auth.jwt_secret", "JWT_SECRET")
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("redis.password", "REDIS_PASSWORD")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 14)
	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")
	v.SetDefault("dynamodb.jobs_table", "jobs")
	v.SetDefault("dynamodb.items_table", "item_documents")
	v.SetDefault("dynamodb.bids_table", "bids")
	v.SetDefault("dynamodb.vendors_table", "vendors")
	v.SetDefault("dynamodb.orders_table", "orders")
	v.SetDefault("dynamodb.carts_table", "carts")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.lock_ttl", 10*time.Second)
	v.SetDefault("redis.events_channel", "kepthouse.events")
	v.SetDefault("mercadopago.mock", false)
	v.SetDefault("shipping.base_url", "https://apis-sandbox.fedex.com")
	v.SetDefault("shipping.timeout", 15*time.Second)
	v.SetDefault("shipping.flat_rate", 25.0)
	v.SetDefault("shipping.origin.country", "US")
	v.SetDefault("vision.base_url", "https://api.openai.com/v1")
	v.SetDefault("vision.model", "gpt-4o-mini")
	v.SetDefault("vision.timeout", 60*time.Second)
	v.SetDefault("marketplace.cache_ttl", 60*time.Second)
	v.SetDefault("checkout.tax_rate", 0.078)
}
