package providers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/DanielPopoola/payment-orchestrator/internal/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/infrastructure/providers"
	"github.com/DanielPopoola/payment-orchestrator/internal/infrastructure/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDispatcher struct {
	resp *transport.Response
	err  error
}

func (s stubDispatcher) Dispatch(ctx context.Context, req transport.Request) (*transport.Response, error) {
	return s.resp, s.err
}

func failIfCalled(t *testing.T) providers.ErrorParser {
	return func(resp *transport.Response, body map[string]any) *domain.ErrorResponse {
		t.Fatal("processor error parser must not run")
		return nil
	}
}

func TestExchange(t *testing.T) {
	ctx := context.Background()

	t.Run("returns decoded success body", func(t *testing.T) {
		d := stubDispatcher{resp: &transport.Response{StatusCode: http.StatusOK, Body: []byte(`{"id":"1"}`)}}

		body, err := providers.Exchange(ctx, d, transport.Request{}, failIfCalled(t))

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"id": "1"}, body)
	})

	t.Run("proxy-origin failure bypasses processor parser", func(t *testing.T) {
		d := stubDispatcher{resp: &transport.Response{
			StatusCode: http.StatusUnauthorized,
			Header:     http.Header{},
			Proxied:    true,
		}}

		_, err := providers.Exchange(ctx, d, transport.Request{UseProxy: true}, failIfCalled(t))

		errResp, ok := domain.IsErrorResponse(err)
		require.True(t, ok)
		assert.Equal(t, domain.OriginProxy, errResp.Origin)
		assert.Equal(t, domain.ErrorProxyUnauthenticated, errResp.Primary().Code)
	})

	t.Run("processor-origin failure goes to parser with best-effort body", func(t *testing.T) {
		header := http.Header{}
		header.Set(transport.HeaderProxyDestinationStatus, "422")
		d := stubDispatcher{resp: &transport.Response{
			StatusCode: http.StatusUnprocessableEntity,
			Header:     header,
			Body:       []byte(`{"error_codes":["card_expired"]}`),
			Proxied:    true,
		}}

		var gotBody map[string]any
		_, err := providers.Exchange(ctx, d, transport.Request{}, func(resp *transport.Response, body map[string]any) *domain.ErrorResponse {
			gotBody = body
			return domain.NewErrorResponse(domain.OriginProcessor, resp.StatusCode, nil, nil, body)
		})

		errResp, ok := domain.IsErrorResponse(err)
		require.True(t, ok)
		assert.Equal(t, domain.OriginProcessor, errResp.Origin)
		assert.Equal(t, []any{"card_expired"}, gotBody["error_codes"])
	})

	t.Run("dispatch failure is returned as is", func(t *testing.T) {
		tErr := &domain.TransportError{Op: "send", Err: errors.New("boom")}
		d := stubDispatcher{err: tErr}

		_, err := providers.Exchange(ctx, d, transport.Request{}, failIfCalled(t))

		assert.Same(t, tErr, err)
	})
}

func TestCredentialErrorCode(t *testing.T) {
	ec, ok := providers.CredentialErrorCode(http.StatusUnauthorized)
	require.True(t, ok)
	assert.Equal(t, domain.ErrorCode{Category: domain.CategoryOther, Code: domain.ErrorInvalidAPIKey}, ec)

	ec, ok = providers.CredentialErrorCode(http.StatusForbidden)
	require.True(t, ok)
	assert.Equal(t, domain.ErrorCode{Category: domain.CategoryOther, Code: domain.ErrorUnauthorized}, ec)

	_, ok = providers.CredentialErrorCode(http.StatusUnprocessableEntity)
	assert.False(t, ok)
}
