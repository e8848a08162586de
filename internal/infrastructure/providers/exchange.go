package providers

import (
	"context"
	"net/http"

	"github.com/DanielPopoola/payment-orchestrator/internal/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/infrastructure/transport"
)

// Dispatcher delivers a provider request, through the proxy when asked.
type Dispatcher interface {
	Dispatch(ctx context.Context, req transport.Request) (*transport.Response, error)
}

// ErrorParser turns a processor-origin non-2xx response into a canonical error.
type ErrorParser func(resp *transport.Response, body map[string]any) *domain.ErrorResponse

// Exchange sends req and returns the decoded success body. Proxy-origin
// failures never reach onError; they are mapped by the proxy table.
func Exchange(ctx context.Context, d Dispatcher, req transport.Request, onError ErrorParser) (map[string]any, error) {
	resp, err := d.Dispatch(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp.Origin() == domain.OriginProxy {
		return nil, transport.ProxyErrorResponse(resp)
	}

	if !resp.IsSuccess() {
		return nil, onError(resp, resp.BestEffortJSON())
	}

	body, err := resp.JSON()
	if err != nil {
		return nil, err
	}
	if body == nil {
		body = map[string]any{}
	}
	return body, nil
}

// CredentialErrorCode maps the HTTP statuses every provider uses for bad credentials.
func CredentialErrorCode(status int) (domain.ErrorCode, bool) {
	switch status {
	case http.StatusUnauthorized:
		return domain.ErrorCode{Category: domain.CategoryOther, Code: domain.ErrorInvalidAPIKey}, true
	case http.StatusForbidden:
		return domain.ErrorCode{Category: domain.CategoryOther, Code: domain.ErrorUnauthorized}, true
	}
	return domain.ErrorCode{}, false
}
