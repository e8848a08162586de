package services

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"sort"

	"github.com/DanielPopoola/payment-orchestrator/internal/application"
	"github.com/DanielPopoola/payment-orchestrator/internal/config"
	"github.com/DanielPopoola/payment-orchestrator/internal/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/infrastructure/providers/adyen"
	"github.com/DanielPopoola/payment-orchestrator/internal/infrastructure/providers/checkout"
	"github.com/DanielPopoola/payment-orchestrator/internal/infrastructure/transport"
)

// Orchestrator is the single entry point callers use to reach any configured processor.
type Orchestrator struct {
	providers map[domain.ProviderName]application.PaymentProvider
	logger    *slog.Logger
}

func NewOrchestrator(logger *slog.Logger, providers ...application.PaymentProvider) *Orchestrator {
	o := &Orchestrator{
		providers: make(map[domain.ProviderName]application.PaymentProvider, len(providers)),
		logger:    logger,
	}
	for _, p := range providers {
		o.providers[p.Name()] = p
	}
	return o
}

// NewOrchestratorFromConfig builds one adapter per configured provider block,
// all sharing a single transport router.
func NewOrchestratorFromConfig(cfg *config.Config, logger *slog.Logger, opts ...transport.Option) (*Orchestrator, error) {
	if err := cfg.ValidateProviders(); err != nil {
		return nil, err
	}

	router := transport.NewRouter(cfg.Proxy, cfg.Orchestrator.ClientTimeout, logger, opts...)

	var configured []application.PaymentProvider
	if cfg.Adyen != nil {
		configured = append(configured, adyen.NewClient(*cfg.Adyen, cfg.Orchestrator.IsTest, router, logger))
	}
	if cfg.Checkout != nil {
		configured = append(configured, checkout.NewClient(*cfg.Checkout, cfg.Orchestrator.IsTest, router, logger))
	}

	return NewOrchestrator(logger, configured...), nil
}

// Provider returns the adapter for name.
func (o *Orchestrator) Provider(name domain.ProviderName) (application.PaymentProvider, error) {
	p, ok := o.providers[name]
	if !ok {
		return nil, application.NewProviderNotConfiguredError(name)
	}
	return p, nil
}

// Providers lists configured provider names in a stable order.
func (o *Orchestrator) Providers() []domain.ProviderName {
	names := make([]domain.ProviderName, 0, len(o.providers))
	for name := range o.providers {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Transaction validates a raw request and sends it to the named provider.
// Invalid input is rejected before any network call.
func (o *Orchestrator) Transaction(ctx context.Context, name domain.ProviderName, raw map[string]any) (*domain.TransactionResponse, error) {
	provider, err := o.Provider(name)
	if err != nil {
		return nil, err
	}

	req, err := domain.NewTransactionRequest(raw)
	if err != nil {
		return nil, err
	}

	return o.transaction(ctx, provider, req)
}

// ProcessTransaction sends an already validated request.
func (o *Orchestrator) ProcessTransaction(ctx context.Context, name domain.ProviderName, req *domain.TransactionRequest) (*domain.TransactionResponse, error) {
	provider, err := o.Provider(name)
	if err != nil {
		return nil, err
	}
	return o.transaction(ctx, provider, req)
}

func (o *Orchestrator) transaction(ctx context.Context, provider application.PaymentProvider, req *domain.TransactionRequest) (*domain.TransactionResponse, error) {
	resp, err := provider.Transaction(ctx, req)
	if err != nil {
		err = classifyTimeout(err)
		o.logFailure("transaction failed", provider.Name(), err)
		return nil, err
	}

	o.logger.Info("transaction completed",
		"provider", provider.Name(),
		"transaction_id", resp.ID,
		"status", resp.Status.Code,
		"provider_status", resp.Status.ProviderCode,
	)
	return resp, nil
}

// Refund validates a raw refund request and sends it to the named provider.
func (o *Orchestrator) Refund(ctx context.Context, name domain.ProviderName, transactionID string, raw map[string]any) (*domain.RefundResponse, error) {
	provider, err := o.Provider(name)
	if err != nil {
		return nil, err
	}

	req, err := domain.NewRefundRequest(raw)
	if err != nil {
		return nil, err
	}

	return o.refund(ctx, provider, transactionID, req)
}

func (o *Orchestrator) ProcessRefund(ctx context.Context, name domain.ProviderName, transactionID string, req *domain.RefundRequest) (*domain.RefundResponse, error) {
	provider, err := o.Provider(name)
	if err != nil {
		return nil, err
	}
	return o.refund(ctx, provider, transactionID, req)
}

func (o *Orchestrator) refund(ctx context.Context, provider application.PaymentProvider, transactionID string, req *domain.RefundRequest) (*domain.RefundResponse, error) {
	resp, err := provider.Refund(ctx, transactionID, req)
	if err != nil {
		err = classifyTimeout(err)
		o.logFailure("refund failed", provider.Name(), err)
		return nil, err
	}

	o.logger.Info("refund completed",
		"provider", provider.Name(),
		"transaction_id", transactionID,
		"refund_id", resp.ID,
		"status", resp.Status.Code,
	)
	return resp, nil
}

func (o *Orchestrator) logFailure(msg string, name domain.ProviderName, err error) {
	class := application.CategorizeError(err)
	attrs := []any{"provider", name, "class", class, "error", err}

	switch class {
	case application.ClassProcessor, application.ClassValidation:
		o.logger.Info(msg, attrs...)
	default:
		o.logger.Warn(msg, attrs...)
	}
}

// classifyTimeout wraps transport faults caused by a deadline so callers can
// tell a slow provider from an unreachable one. The TransportError stays in
// the chain.
func classifyTimeout(err error) error {
	tErr, ok := domain.IsTransportError(err)
	if !ok {
		return err
	}
	var netErr net.Error
	if errors.Is(tErr, context.DeadlineExceeded) || (errors.As(tErr, &netErr) && netErr.Timeout()) {
		return application.NewTimeoutError(err)
	}
	return err
}
