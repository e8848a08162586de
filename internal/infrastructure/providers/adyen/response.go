package adyen

import (
	"net/http"

	"github.com/DanielPopoola/payment-orchestrator/internal/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/infrastructure/providers"
	"github.com/DanielPopoola/payment-orchestrator/internal/infrastructure/transport"
)

func (c *Client) parseTransaction(req *domain.TransactionRequest, body map[string]any) (*domain.TransactionResponse, error) {
	var dto PaymentResponse
	if err := providers.DecodeBody(domain.ProviderAdyen, body, &dto); err != nil {
		return nil, err
	}

	if declinedResults[dto.ResultCode] {
		c.logger.Info("payment declined",
			"result_code", dto.ResultCode,
			"refusal_reason_code", dto.RefusalReasonCode,
		)
		return nil, domain.NewErrorResponse(
			domain.OriginProcessor,
			http.StatusOK,
			[]domain.ErrorCode{RefusalReasons.Resolve(dto.RefusalReasonCode)},
			refusalMessages(dto.RefusalReason),
			body,
		)
	}

	resp := &domain.TransactionResponse{
		ID:        dto.PSPReference,
		Reference: dto.MerchantReference,
		Amount:    responseAmount(dto.Amount, req.Amount),
		Status:    Statuses.Status(dto.ResultCode),
		Source: domain.TransactionSource{
			Type: req.Source.Type,
			ID:   req.Source.ID,
		},
		NetworkTransactionID: dto.AdditionalData["networkTxReference"],
		FullProviderResponse: body,
		CreatedAt:            c.clock.Now().UTC(),
	}
	if resp.Reference == "" {
		resp.Reference = req.Reference
	}
	if id := storedPaymentMethodID(dto); id != "" {
		resp.Source.Provisioned = &domain.ProvisionedSource{ID: id}
	}
	return resp, nil
}

func (c *Client) parseRefund(req *domain.RefundRequest, body map[string]any) (*domain.RefundResponse, error) {
	var dto RefundResponse
	if err := providers.DecodeBody(domain.ProviderAdyen, body, &dto); err != nil {
		return nil, err
	}

	amount := responseAmount(dto.Amount, *req.Amount)
	resp := &domain.RefundResponse{
		ID:                   dto.PSPReference,
		Reference:            dto.Reference,
		Amount:               &amount,
		Status:               refundStatuses.Status(dto.Status),
		FullProviderResponse: body,
		CreatedAt:            c.clock.Now().UTC(),
	}
	if resp.Reference == "" {
		resp.Reference = req.Reference
	}
	return resp, nil
}

// storedPaymentMethodID reads the current tokenization field first and falls
// back to the deprecated recurring detail reference.
func storedPaymentMethodID(dto PaymentResponse) string {
	if id := dto.Tokenization.StoredPaymentMethodID; id != "" {
		return id
	}
	if id := dto.PaymentMethod.StoredPaymentMethodID; id != "" {
		return id
	}
	return dto.AdditionalData["recurring.recurringDetailReference"]
}

func responseAmount(a *amountDTO, fallback domain.Amount) domain.Amount {
	if a == nil || a.Value == nil {
		return fallback
	}
	currency := a.Currency
	if currency == "" {
		currency = fallback.Currency
	}
	return domain.Amount{Value: *a.Value, Currency: currency}
}

// parseError checks credentials first, then a refusal carried on a non-2xx
// body, then the API error code. Anything else falls back to the default code.
func parseError(resp *transport.Response, body map[string]any) *domain.ErrorResponse {
	var dto ErrorResponse
	// Error bodies are best effort; a shape mismatch still yields a canonical error.
	_ = providers.DecodeBody(domain.ProviderAdyen, body, &dto)

	var codes []domain.ErrorCode
	switch ec, isCredential := providers.CredentialErrorCode(resp.StatusCode); {
	case isCredential:
		codes = append(codes, ec)
	case declinedResults[dto.ResultCode]:
		codes = append(codes, RefusalReasons.Resolve(dto.RefusalReasonCode))
	case dto.ErrorCode != "":
		codes = append(codes, APIErrors.Resolve(dto.ErrorCode))
	}

	return domain.NewErrorResponse(domain.OriginProcessor, resp.StatusCode, codes, dto.messages(), body)
}

func refusalMessages(reason string) []string {
	if reason == "" {
		return []string{}
	}
	return []string{reason}
}
