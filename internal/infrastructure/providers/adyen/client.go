package adyen

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/DanielPopoola/payment-orchestrator/internal/config"
	"github.com/DanielPopoola/payment-orchestrator/internal/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/infrastructure/providers"
	"github.com/DanielPopoola/payment-orchestrator/internal/infrastructure/transport"
	"github.com/jonboulle/clockwork"
)

const headerAPIKey = "X-API-Key"

// Client adapts canonical requests to the Adyen Checkout API.
type Client struct {
	apiKey          string
	merchantAccount string
	baseURL         string
	dispatcher      providers.Dispatcher
	clock           clockwork.Clock
	logger          *slog.Logger
}

type Option func(*Client)

func WithClock(clock clockwork.Clock) Option {
	return func(c *Client) {
		c.clock = clock
	}
}

func NewClient(cfg config.AdyenConfig, isTest bool, dispatcher providers.Dispatcher, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		apiKey:          cfg.APIKey,
		merchantAccount: cfg.MerchantAccount,
		baseURL:         cfg.ResolveBaseURL(isTest),
		dispatcher:      dispatcher,
		clock:           clockwork.NewRealClock(),
		logger:          logger.With("provider", domain.ProviderAdyen),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Name() domain.ProviderName {
	return domain.ProviderAdyen
}

func (c *Client) Transaction(ctx context.Context, req *domain.TransactionRequest) (*domain.TransactionResponse, error) {
	payload, err := c.BuildPayload(req)
	if err != nil {
		return nil, err
	}

	body, err := providers.Exchange(ctx, c.dispatcher, transport.Request{
		Provider: domain.ProviderAdyen,
		Method:   http.MethodPost,
		URL:      c.baseURL + "/payments",
		Headers:  c.headers(),
		Body:     payload,
		UseProxy: req.Source.Type.UsesProxy(),
	}, parseError)
	if err != nil {
		return nil, err
	}

	return c.parseTransaction(req, body)
}

func (c *Client) Refund(ctx context.Context, transactionID string, req *domain.RefundRequest) (*domain.RefundResponse, error) {
	if transactionID == "" {
		return nil, domain.NewMissingRequiredFieldError("transaction_id")
	}
	if req.Amount == nil {
		return nil, domain.NewMissingRequiredFieldError("amount")
	}

	payload := providers.Payload{
		"merchantAccount": c.merchantAccount,
		"amount": map[string]any{
			"value":    req.Amount.Value,
			"currency": req.Amount.Currency,
		},
	}
	payload.Set("reference", req.Reference)

	body, err := providers.Exchange(ctx, c.dispatcher, transport.Request{
		Provider: domain.ProviderAdyen,
		Method:   http.MethodPost,
		URL:      fmt.Sprintf("%s/payments/%s/refunds", c.baseURL, url.PathEscape(transactionID)),
		Headers:  c.headers(),
		Body:     payload,
	}, parseError)
	if err != nil {
		return nil, err
	}

	return c.parseRefund(req, body)
}

func (c *Client) headers() map[string]string {
	return map[string]string{headerAPIKey: c.apiKey}
}
