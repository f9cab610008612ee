package shipping

import (
	"context"

	appconfig "kept_house/internal/infrastructure/config"
	"kept_house/internal/infrastructure/logger"
	"kept_house/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const FlatRateService = "FLAT_RATE"

// FlatRateQuoter charges a fixed amount per package.
type FlatRateQuoter struct {
	PerPackage float64
}

var _ interfaces.IShippingQuoter = FlatRateQuoter{}

func (f FlatRateQuoter) Quote(_ context.Context, req interfaces.ShipmentRequest) (interfaces.ShippingQuote, error) {
	n := req.Packages
	if n < 1 {
		n = 1
	}
	amount := decimal.NewFromFloat(f.PerPackage).Mul(decimal.NewFromInt(int64(n))).Round(2)
	return interfaces.ShippingQuote{
		Amount:   amount.InexactFloat64(),
		Currency: "USD",
		Service:  FlatRateService,
	}, nil
}

// FallbackQuoter answers from Fallback when Primary fails.
type FallbackQuoter struct {
	Primary  interfaces.IShippingQuoter
	Fallback interfaces.IShippingQuoter
}

var _ interfaces.IShippingQuoter = FallbackQuoter{}

func (f FallbackQuoter) Quote(ctx context.Context, req interfaces.ShipmentRequest) (interfaces.ShippingQuote, error) {
	q, err := f.Primary.Quote(ctx, req)
	if err == nil {
		return q, nil
	}
	logger.Component(ctx, "shipping", "fallback").WithError(err).Warn("primary quote failed, using fallback")
	return f.Fallback.Quote(ctx, req)
}

// New picks FedEx (with flat-rate fallback) when credentials are present.
func New(cfg appconfig.ShippingConfig) interfaces.IShippingQuoter {
	flat := FlatRateQuoter{PerPackage: cfg.FlatRate}
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return flat
	}
	return FallbackQuoter{Primary: NewFedExQuoter(cfg), Fallback: flat}
}
