package transport_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/payment-orchestrator/internal/config"
	"github.com/DanielPopoola/payment-orchestrator/internal/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/infrastructure/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRouter_Dispatch(t *testing.T) {
	t.Run("direct request goes straight to the processor", func(t *testing.T) {
		processor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/payments", r.URL.Path)
			assert.Equal(t, "secret", r.Header.Get("X-API-Key"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Empty(t, r.Header.Get(transport.HeaderProxyAPIKey))
			assert.Empty(t, r.Header.Get(transport.HeaderProxyURL))

			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"pspReference":"psp_1"}`))
		}))
		defer processor.Close()

		router := transport.NewRouter(
			config.ProxyConfig{APIKey: "bt_key", URL: "http://proxy.invalid"},
			0,
			discardLogger(),
			transport.WithHTTPClient(processor.Client()),
		)

		resp, err := router.Dispatch(context.Background(), transport.Request{
			Provider: domain.ProviderAdyen,
			Method:   http.MethodPost,
			URL:      processor.URL + "/payments",
			Headers:  map[string]string{"X-API-Key": "secret"},
			Body:     map[string]any{"amount": 100},
		})

		require.NoError(t, err)
		assert.False(t, resp.Proxied)
		assert.Equal(t, domain.OriginProcessor, resp.Origin())
		body, err := resp.JSON()
		require.NoError(t, err)
		assert.Equal(t, "psp_1", body["pspReference"])
	})

	t.Run("proxied request carries proxy credentials and destination", func(t *testing.T) {
		proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "bt_key", r.Header.Get(transport.HeaderProxyAPIKey))
			assert.Equal(t, "https://processor.example/payments", r.Header.Get(transport.HeaderProxyURL))
			assert.Equal(t, "Bearer sk", r.Header.Get("Authorization"))

			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "{{ token: tok_1 | json: '$.data.number'}}", body["number"])

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"pay_1"}`))
		}))
		defer proxy.Close()

		router := transport.NewRouter(config.ProxyConfig{APIKey: "bt_key", URL: proxy.URL}, 0, discardLogger())

		resp, err := router.Dispatch(context.Background(), transport.Request{
			Provider: domain.ProviderCheckout,
			Method:   http.MethodPost,
			URL:      "https://processor.example/payments",
			Headers:  map[string]string{"Authorization": "Bearer sk"},
			Body: map[string]any{
				"number": domain.NewTokenExpression(domain.Source{Type: domain.SourceTypeToken, ID: "tok_1"}, domain.CardNumber),
			},
			UseProxy: true,
		})

		require.NoError(t, err)
		assert.True(t, resp.Proxied)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("client timeout is a transport error", func(t *testing.T) {
		slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer slow.Close()

		router := transport.NewRouter(config.ProxyConfig{}, 0, discardLogger(),
			transport.WithHTTPClient(&http.Client{Timeout: 20 * time.Millisecond}))

		_, err := router.Dispatch(context.Background(), transport.Request{
			Provider: domain.ProviderAdyen,
			Method:   http.MethodPost,
			URL:      slow.URL,
		})

		tErr, ok := domain.IsTransportError(err)
		require.True(t, ok)
		assert.Equal(t, "send", tErr.Op)
		var netErr net.Error
		require.ErrorAs(t, err, &netErr)
		assert.True(t, netErr.Timeout())
	})

	t.Run("unreachable host is a transport error", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		router := transport.NewRouter(config.ProxyConfig{}, 0, discardLogger())

		_, err := router.Dispatch(context.Background(), transport.Request{
			Provider: domain.ProviderAdyen,
			Method:   http.MethodPost,
			URL:      url,
		})

		tErr, ok := domain.IsTransportError(err)
		require.True(t, ok)
		assert.Equal(t, "send", tErr.Op)
	})
}

func TestResponse_Origin(t *testing.T) {
	tests := []struct {
		name        string
		proxied     bool
		status      int
		destination string
		want        domain.ErrorOrigin
	}{
		{"direct failure", false, http.StatusUnauthorized, "", domain.OriginProcessor},
		{"proxied success", true, http.StatusOK, "", domain.OriginProcessor},
		{"proxied failure without destination status", true, http.StatusUnauthorized, "", domain.OriginProxy},
		{"proxied failure relayed from processor", true, http.StatusUnauthorized, "401", domain.OriginProcessor},
		{"proxied failure with mismatched destination status", true, http.StatusBadRequest, "200", domain.OriginProxy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.destination != "" {
				header.Set(transport.HeaderProxyDestinationStatus, tt.destination)
			}
			resp := &transport.Response{StatusCode: tt.status, Header: header, Proxied: tt.proxied}

			assert.Equal(t, tt.want, resp.Origin())
		})
	}
}

func TestResponse_JSON(t *testing.T) {
	t.Run("malformed success body is a transport error", func(t *testing.T) {
		resp := &transport.Response{StatusCode: http.StatusOK, Body: []byte("<html>")}

		_, err := resp.JSON()

		_, ok := domain.IsTransportError(err)
		assert.True(t, ok)
	})

	t.Run("empty body decodes to nil", func(t *testing.T) {
		resp := &transport.Response{StatusCode: http.StatusUnauthorized}

		body, err := resp.JSON()

		require.NoError(t, err)
		assert.Nil(t, body)
		assert.Nil(t, resp.BestEffortJSON())
	})
}

func TestProxyErrorResponse(t *testing.T) {
	tests := []struct {
		status int
		want   domain.ErrorType
	}{
		{http.StatusUnauthorized, domain.ErrorProxyUnauthenticated},
		{http.StatusForbidden, domain.ErrorProxyUnauthorized},
		{http.StatusBadRequest, domain.ErrorProxyRequestError},
		{http.StatusUnprocessableEntity, domain.ErrorProxyRequestError},
		{http.StatusInternalServerError, domain.ErrorProxyUnexpected},
		{http.StatusBadGateway, domain.ErrorProxyUnexpected},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			resp := &transport.Response{
				StatusCode: tt.status,
				Header:     http.Header{},
				Body:       []byte(`{"title":"Unauthenticated"}`),
				Proxied:    true,
			}

			errResp := transport.ProxyErrorResponse(resp)

			assert.Equal(t, domain.OriginProxy, errResp.Origin)
			assert.Equal(t, []domain.ErrorCode{{Category: domain.CategoryProxyError, Code: tt.want}}, errResp.ErrorCodes)
			assert.Empty(t, errResp.ProviderErrors)
			assert.Equal(t, map[string]any{"proxy_error": map[string]any{"title": "Unauthenticated"}}, errResp.FullProviderResponse)
		})
	}

	t.Run("keeps non-JSON body as text", func(t *testing.T) {
		resp := &transport.Response{StatusCode: http.StatusBadGateway, Body: []byte("upstream down"), Proxied: true}

		errResp := transport.ProxyErrorResponse(resp)

		assert.Equal(t, map[string]any{"proxy_error": "upstream down"}, errResp.FullProviderResponse)
	})
}
