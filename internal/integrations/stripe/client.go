package stripe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	stripego "github.com/stripe/stripe-go/v81"
	stripeclient "github.com/stripe/stripe-go/v81/client"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

const (
	opCreateIntent   = "create_intent"
	opRetrieveIntent = "retrieve_intent"
	opUpdateIntent   = "update_intent"

	statusOK    = "ok"
	statusError = "error"
)

// Config параметры клиента Stripe
type Config struct {
	SecretKey string
	// BaseURL переопределяет адрес API (используется в тестах)
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int64
}

// Client клиент платежного провайдера Stripe
type Client struct {
	api     *stripeclient.API
	metrics Metrics
	log     Logger
}

// NewClient создает новый экземпляр клиента Stripe
func NewClient(cfg Config, metrics Metrics, log Logger) *Client {
	backendCfg := &stripego.BackendConfig{
		HTTPClient:        &http.Client{Timeout: cfg.Timeout},
		MaxNetworkRetries: stripego.Int64(cfg.MaxRetries),
		LeveledLogger:     leveledLogger{log: log},
	}
	if cfg.BaseURL != "" {
		backendCfg.URL = stripego.String(cfg.BaseURL)
	}

	backend := stripego.GetBackendWithConfig(stripego.APIBackend, backendCfg)
	api := stripeclient.New(cfg.SecretKey, &stripego.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})

	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &Client{
		api:     api,
		metrics: metrics,
		log:     log,
	}
}

// CreateIntent создает платежное намерение на сумму в минимальных единицах валюты
func (c *Client) CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*domain.PaymentIntent, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	params := &stripego.PaymentIntentParams{
		Amount:   stripego.Int64(amount),
		Currency: stripego.String(currency),
		AutomaticPaymentMethods: &stripego.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripego.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		c.metrics.ObservePaymentCall(opCreateIntent, statusError)
		c.log.Error("Stripe: failed to create payment intent amount=%d %s: %v", amount, currency, err)
		return nil, translateError("CreateIntent", err)
	}
	c.metrics.ObservePaymentCall(opCreateIntent, statusOK)

	c.log.Info("Stripe: created payment intent id=%s amount=%d %s", pi.ID, pi.Amount, pi.Currency)
	return toDomain(pi), nil
}

// RetrieveIntent получает платежное намерение по ID
func (c *Client) RetrieveIntent(ctx context.Context, id string) (*domain.PaymentIntent, error) {
	params := &stripego.PaymentIntentParams{}
	params.Context = ctx

	pi, err := c.api.PaymentIntents.Get(id, params)
	if err != nil {
		c.metrics.ObservePaymentCall(opRetrieveIntent, statusError)
		c.log.Warn("Stripe: failed to retrieve payment intent id=%s: %v", id, err)
		return nil, translateError("RetrieveIntent", err)
	}
	c.metrics.ObservePaymentCall(opRetrieveIntent, statusOK)

	return toDomain(pi), nil
}

// UpdateIntentAmount изменяет сумму существующего платежного намерения
func (c *Client) UpdateIntentAmount(ctx context.Context, id string, amount int64) (*domain.PaymentIntent, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	params := &stripego.PaymentIntentParams{
		Amount: stripego.Int64(amount),
	}
	params.Context = ctx

	pi, err := c.api.PaymentIntents.Update(id, params)
	if err != nil {
		c.metrics.ObservePaymentCall(opUpdateIntent, statusError)
		c.log.Error("Stripe: failed to update payment intent id=%s amount=%d: %v", id, amount, err)
		return nil, translateError("UpdateIntentAmount", err)
	}
	c.metrics.ObservePaymentCall(opUpdateIntent, statusOK)

	c.log.Info("Stripe: updated payment intent id=%s amount=%d", pi.ID, pi.Amount)
	return toDomain(pi), nil
}

// translateError отделяет отсутствие намерения от прочих отказов провайдера
func translateError(op string, err error) error {
	var stripeErr *stripego.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.Code == stripego.ErrorCodeResourceMissing || stripeErr.HTTPStatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s - %s", ErrIntentNotFound, op, stripeErr.Msg)
		}
		return fmt.Errorf("%w: %s - status=%d code=%s: %s", ErrProvider, op, stripeErr.HTTPStatusCode, stripeErr.Code, stripeErr.Msg)
	}
	return fmt.Errorf("%w: %s - %v", ErrProvider, op, err)
}

func toDomain(pi *stripego.PaymentIntent) *domain.PaymentIntent {
	return &domain.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
	}
}
