package checkout

import (
	"net/http"
	"time"

	"github.com/DanielPopoola/payment-orchestrator/internal/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/infrastructure/providers"
	"github.com/DanielPopoola/payment-orchestrator/internal/infrastructure/transport"
)

const refundAccepted = "Accepted"

func (c *Client) parseTransaction(req *domain.TransactionRequest, body map[string]any) (*domain.TransactionResponse, error) {
	var dto PaymentResponse
	if err := providers.DecodeBody(domain.ProviderCheckout, body, &dto); err != nil {
		return nil, err
	}

	if dto.Status == "Declined" || (dto.Approved != nil && !*dto.Approved) {
		c.logger.Info("payment declined", "response_code", dto.ResponseCode)

		providerErrors := []string{}
		if dto.ResponseSummary != "" {
			providerErrors = append(providerErrors, dto.ResponseSummary)
		}
		return nil, domain.NewErrorResponse(
			domain.OriginProcessor,
			http.StatusOK,
			[]domain.ErrorCode{DeclineCodes.Resolve(dto.ResponseCode)},
			providerErrors,
			body,
		)
	}

	resp := &domain.TransactionResponse{
		ID:        dto.ID,
		Reference: dto.Reference,
		Amount:    responseAmount(dto, req.Amount),
		Status:    Statuses.Status(dto.Status),
		Source: domain.TransactionSource{
			Type: req.Source.Type,
			ID:   req.Source.ID,
		},
		NetworkTransactionID: dto.Processing.AcquirerTransactionID,
		FullProviderResponse: body,
		CreatedAt:            c.processedAt(dto.ProcessedOn),
	}
	if resp.Reference == "" {
		resp.Reference = req.Reference
	}
	if dto.Source.ID != "" {
		resp.Source.Provisioned = &domain.ProvisionedSource{ID: dto.Source.ID}
	}
	return resp, nil
}

func (c *Client) parseRefund(req *domain.RefundRequest, body map[string]any) (*domain.RefundResponse, error) {
	var dto RefundResponse
	if err := providers.DecodeBody(domain.ProviderCheckout, body, &dto); err != nil {
		return nil, err
	}

	resp := &domain.RefundResponse{
		ID:        dto.ActionID,
		Reference: dto.Reference,
		Amount:    req.Amount,
		Status: domain.TransactionStatus{
			Code:         domain.StatusRefunded,
			ProviderCode: refundAccepted,
		},
		FullProviderResponse: body,
		CreatedAt:            c.clock.Now().UTC(),
	}
	if resp.Reference == "" {
		resp.Reference = req.Reference
	}
	return resp, nil
}

// processedAt falls back to the clock when processed_on is missing or unparseable.
func (c *Client) processedAt(raw string) time.Time {
	if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return ts.UTC()
	}
	return c.clock.Now().UTC()
}

func responseAmount(dto PaymentResponse, fallback domain.Amount) domain.Amount {
	if dto.Amount == nil {
		return fallback
	}
	currency := dto.Currency
	if currency == "" {
		currency = fallback.Currency
	}
	return domain.Amount{Value: *dto.Amount, Currency: currency}
}

func parseError(resp *transport.Response, body map[string]any) *domain.ErrorResponse {
	if ec, ok := providers.CredentialErrorCode(resp.StatusCode); ok {
		return domain.NewErrorResponse(domain.OriginProcessor, resp.StatusCode, []domain.ErrorCode{ec}, []string{}, body)
	}

	var dto ErrorResponse
	// Best effort: an unexpected error body still maps to the default code.
	_ = providers.DecodeBody(domain.ProviderCheckout, body, &dto)

	codes := make([]domain.ErrorCode, 0, len(dto.ErrorCodes))
	for _, pc := range dto.ErrorCodes {
		codes = append(codes, ErrorCodes.Resolve(pc))
	}
	providerCodes := dto.ErrorCodes
	if providerCodes == nil {
		providerCodes = []string{}
	}
	return domain.NewErrorResponse(domain.OriginProcessor, resp.StatusCode, codes, providerCodes, body)
}
