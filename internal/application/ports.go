package application

import (
	"context"

	"github.com/DanielPopoola/payment-orchestrator/internal/domain"
)

// PaymentProvider is the port every processor adapter implements.
//
// Transaction and Refund return a *domain.ErrorResponse as the error when the
// processor or the tokenization proxy rejects the call, a *domain.TransportError
// when the call could not be completed, and a *domain.DomainError when the
// request is invalid for this provider.
type PaymentProvider interface {
	Name() domain.ProviderName
	Transaction(ctx context.Context, req *domain.TransactionRequest) (*domain.TransactionResponse, error)
	Refund(ctx context.Context, transactionID string, req *domain.RefundRequest) (*domain.RefundResponse, error)
}
