// Package shipping quotes delivery for checkout: FedEx rates when credentials
// are configured, a flat rate otherwise or when FedEx is unavailable.
package shipping

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	appconfig "kept_house/internal/infrastructure/config"
	"kept_house/internal/infrastructure/logger"
	"kept_house/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

var (
	ErrNoRates      = errors.New("fedex returned no rates")
	ErrInvalidQuote = errors.New("invalid shipment request")
)

// FedExQuoter calls the FedEx OAuth and Rate APIs. The bearer token is cached
// until shortly before it expires.
type FedExQuoter struct {
	client  *resty.Client
	cfg     appconfig.ShippingConfig
	now     func() time.Time
	mu      sync.Mutex
	token   string
	expires time.Time
}

var _ interfaces.IShippingQuoter = (*FedExQuoter)(nil)

func NewFedExQuoter(cfg appconfig.ShippingConfig) *FedExQuoter {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(retryable)
	return &FedExQuoter{client: client, cfg: cfg, now: time.Now}
}

func retryable(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= 500
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type fedexAddress struct {
	PostalCode          string `json:"postalCode"`
	StateOrProvinceCode string `json:"stateOrProvinceCode,omitempty"`
	CountryCode         string `json:"countryCode"`
}

type fedexParty struct {
	Address fedexAddress `json:"address"`
}

type fedexWeight struct {
	Units string  `json:"units"`
	Value float64 `json:"value"`
}

type fedexPackage struct {
	Weight fedexWeight `json:"weight"`
}

type rateRequest struct {
	AccountNumber struct {
		Value string `json:"value"`
	} `json:"accountNumber"`
	RequestedShipment struct {
		Shipper                   fedexParty     `json:"shipper"`
		Recipient                 fedexParty     `json:"recipient"`
		PickupType                string         `json:"pickupType"`
		RateRequestType           []string       `json:"rateRequestType"`
		RequestedPackageLineItems []fedexPackage `json:"requestedPackageLineItems"`
	} `json:"requestedShipment"`
}

type rateResponse struct {
	Output struct {
		RateReplyDetails []struct {
			ServiceType          string `json:"serviceType"`
			RatedShipmentDetails []struct {
				TotalNetCharge float64 `json:"totalNetCharge"`
				Currency       string  `json:"currency"`
			} `json:"ratedShipmentDetails"`
		} `json:"rateReplyDetails"`
	} `json:"output"`
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// Quote returns the cheapest rated service for the shipment.
func (q *FedExQuoter) Quote(ctx context.Context, req interfaces.ShipmentRequest) (interfaces.ShippingQuote, error) {
	if req.WeightLbs <= 0 || req.Destination.PostalCode == "" {
		return interfaces.ShippingQuote{}, ErrInvalidQuote
	}
	log := logger.Component(ctx, "shipping", "fedex")

	token, err := q.accessToken(ctx)
	if err != nil {
		return interfaces.ShippingQuote{}, err
	}

	var body rateRequest
	body.AccountNumber.Value = q.cfg.AccountNumber
	body.RequestedShipment.Shipper.Address = fedexAddress{
		PostalCode:          q.cfg.Origin.PostalCode,
		StateOrProvinceCode: q.cfg.Origin.State,
		CountryCode:         countryOrUS(q.cfg.Origin.Country),
	}
	body.RequestedShipment.Recipient.Address = fedexAddress{
		PostalCode:          req.Destination.PostalCode,
		StateOrProvinceCode: req.Destination.State,
		CountryCode:         countryOrUS(req.Destination.Country),
	}
	body.RequestedShipment.PickupType = "DROPOFF_AT_FEDEX_LOCATION"
	body.RequestedShipment.RateRequestType = []string{"ACCOUNT"}
	body.RequestedShipment.RequestedPackageLineItems = packages(req)

	var out rateResponse
	resp, err := q.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(body).
		SetResult(&out).
		SetError(&out).
		Post("/rate/v1/rates/quotes")
	if err != nil {
		return interfaces.ShippingQuote{}, fmt.Errorf("failed to call fedex rates: %w", err)
	}
	if resp.IsError() {
		msg := resp.Status()
		if len(out.Errors) > 0 {
			msg = out.Errors[0].Code + ": " + out.Errors[0].Message
		}
		return interfaces.ShippingQuote{}, fmt.Errorf("fedex rates returned error: %s", msg)
	}

	best := interfaces.ShippingQuote{Amount: math.Inf(1)}
	for _, d := range out.Output.RateReplyDetails {
		for _, r := range d.RatedShipmentDetails {
			if r.TotalNetCharge > 0 && r.TotalNetCharge < best.Amount {
				best = interfaces.ShippingQuote{Amount: r.TotalNetCharge, Currency: r.Currency, Service: d.ServiceType}
			}
		}
	}
	if math.IsInf(best.Amount, 1) {
		return interfaces.ShippingQuote{}, ErrNoRates
	}
	log.WithFields(logger.Fields{"service": best.Service, "amount": best.Amount}).Info("rate quoted")
	return best, nil
}

func (q *FedExQuoter) accessToken(ctx context.Context) (string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.token != "" && q.now().Before(q.expires) {
		return q.token, nil
	}

	var tok tokenResponse
	resp, err := q.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "client_credentials",
			"client_id":     q.cfg.ClientID,
			"client_secret": q.cfg.ClientSecret,
		}).
		SetResult(&tok).
		Post("/oauth/token")
	if err != nil {
		return "", fmt.Errorf("failed to call fedex oauth: %w", err)
	}
	if resp.IsError() || tok.AccessToken == "" {
		return "", fmt.Errorf("fedex oauth returned %s", resp.Status())
	}
	ttl := time.Duration(tok.ExpiresIn) * time.Second
	if ttl > time.Minute {
		ttl -= time.Minute
	}
	q.token = tok.AccessToken
	q.expires = q.now().Add(ttl)
	return q.token, nil
}

func packages(req interfaces.ShipmentRequest) []fedexPackage {
	n := req.Packages
	if n < 1 {
		n = 1
	}
	each := math.Ceil(req.WeightLbs / float64(n))
	if each < 1 {
		each = 1
	}
	out := make([]fedexPackage, n)
	for i := range out {
		out[i] = fedexPackage{Weight: fedexWeight{Units: "LB", Value: each}}
	}
	return out
}

func countryOrUS(c string) string {
	if c == "" {
		return "US"
	}
	return c
}
