package transport

import (
	"encoding/json"
	"net/http"

	"github.com/DanielPopoola/payment-orchestrator/internal/domain"
)

var proxyErrors = map[int]domain.ErrorType{
	http.StatusUnauthorized:        domain.ErrorProxyUnauthenticated,
	http.StatusForbidden:           domain.ErrorProxyUnauthorized,
	http.StatusBadRequest:          domain.ErrorProxyRequestError,
	http.StatusNotFound:            domain.ErrorProxyRequestError,
	http.StatusUnprocessableEntity: domain.ErrorProxyRequestError,
}

// ProxyErrorResponse builds the canonical error for a failure raised by the
// proxy rather than by the destination processor.
func ProxyErrorResponse(resp *Response) *domain.ErrorResponse {
	code, ok := proxyErrors[resp.StatusCode]
	if !ok {
		code = domain.ErrorProxyUnexpected
	}

	var body any
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		body = string(resp.Body)
	}

	return domain.NewErrorResponse(
		domain.OriginProxy,
		resp.StatusCode,
		[]domain.ErrorCode{{Category: domain.CategoryProxyError, Code: code}},
		[]string{},
		map[string]any{"proxy_error": body},
	)
}
