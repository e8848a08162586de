package checkout

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

// Client adapts canonical requests to the Checkout.com Payments API.
type Client struct {
	privateKey        string
	processingChannel string
	baseURL           string
	dispatcher        providers.Dispatcher
	clock             clockwork.Clock
	logger            *slog.Logger
}

type Option func(*Client)

func WithClock(clock clockwork.Clock) Option {
	return func(c *Client) {
		c.clock = clock
	}
}

func NewClient(cfg config.CheckoutConfig, isTest bool, dispatcher providers.Dispatcher, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		privateKey:        cfg.PrivateKey,
		processingChannel: cfg.ProcessingChannel,
		baseURL:           cfg.ResolveBaseURL(isTest),
		dispatcher:        dispatcher,
		clock:             clockwork.NewRealClock(),
		logger:            logger.With("provider", domain.ProviderCheckout),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Name() domain.ProviderName {
	return domain.ProviderCheckout
}

func (c *Client) Transaction(ctx context.Context, req *domain.TransactionRequest) (*domain.TransactionResponse, error) {
	payload, err := c.BuildPayload(req)
	if err != nil {
		return nil, err
	}

	body, err := providers.Exchange(ctx, c.dispatcher, transport.Request{
		Provider: domain.ProviderCheckout,
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

// Refund requests a full refund when req.Amount is nil.
func (c *Client) Refund(ctx context.Context, transactionID string, req *domain.RefundRequest) (*domain.RefundResponse, error) {
	if transactionID == "" {
		return nil, domain.NewMissingRequiredFieldError("transaction_id")
	}

	payload := providers.Payload{}
	if req.Amount != nil {
		payload["amount"] = req.Amount.Value
	}
	payload.Set("reference", req.Reference)
	payload.Set("metadata", req.Metadata)

	body, err := providers.Exchange(ctx, c.dispatcher, transport.Request{
		Provider: domain.ProviderCheckout,
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
	return map[string]string{"Authorization": "Bearer " + c.privateKey}
}
