package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/DanielPopoola/payment-orchestrator/internal/config"
	"github.com/DanielPopoola/payment-orchestrator/internal/domain"
)

const (
	HeaderProxyAPIKey            = "BT-API-KEY"
	HeaderProxyURL               = "BT-PROXY-URL"
	HeaderProxyDestinationStatus = "BT-PROXY-DESTINATION-STATUS"
)

// Request is a provider call before routing is decided.
type Request struct {
	Provider domain.ProviderName
	Method   string
	URL      string
	Headers  map[string]string
	Body     any
	UseProxy bool
}

// Router sends provider requests either straight to the processor or through
// the tokenization proxy, which expands card expressions in the body.
type Router struct {
	proxyURL    string
	proxyAPIKey string
	httpClient  *http.Client
	logger      *slog.Logger
}

type Option func(*Router)

func WithHTTPClient(c *http.Client) Option {
	return func(r *Router) {
		r.httpClient = c
	}
}

func NewRouter(cfg config.ProxyConfig, timeout time.Duration, logger *slog.Logger, opts ...Option) *Router {
	proxyURL := cfg.URL
	if proxyURL == "" {
		proxyURL = config.DefaultProxyURL
	}

	r := &Router{
		proxyURL:    proxyURL,
		proxyAPIKey: cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Dispatch performs the call. Non-2xx answers are returned as a Response, not an
// error; only failures to complete the exchange produce a *domain.TransportError.
func (r *Router) Dispatch(ctx context.Context, req Request) (*Response, error) {
	var bodyReader io.Reader
	if req.Body != nil {
		jsonData, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &domain.TransportError{Provider: req.Provider, Op: "encode", Err: err}
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	target := req.URL
	if req.UseProxy {
		target = r.proxyURL
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, bodyReader)
	if err != nil {
		return nil, &domain.TransportError{Provider: req.Provider, Op: "build request", Err: err}
	}

	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if req.UseProxy {
		httpReq.Header.Set(HeaderProxyAPIKey, r.proxyAPIKey)
		httpReq.Header.Set(HeaderProxyURL, req.URL)
	}

	start := time.Now()
	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		r.logger.Warn("provider request failed",
			"provider", req.Provider,
			"proxied", req.UseProxy,
			"error", err,
		)
		return nil, &domain.TransportError{Provider: req.Provider, Op: "send", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Provider: req.Provider, Op: "read body", Err: err}
	}

	r.logger.Debug("provider responded",
		"provider", req.Provider,
		"proxied", req.UseProxy,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	return &Response{
		Provider:   req.Provider,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
		Proxied:    req.UseProxy,
	}, nil
}

// Response is a completed exchange with a processor or the proxy.
type Response struct {
	Provider   domain.ProviderName
	StatusCode int
	Header     http.Header
	Body       []byte
	Proxied    bool
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Origin decides whether a response came from the processor or was produced by
// the proxy itself. A proxied failure counts as the processor's only when the
// proxy echoes the same status in the destination-status header.
func (r *Response) Origin() domain.ErrorOrigin {
	if !r.Proxied || r.IsSuccess() {
		return domain.OriginProcessor
	}
	destination := r.Header.Get(HeaderProxyDestinationStatus)
	if destination == "" || destination != fmt.Sprint(r.StatusCode) {
		return domain.OriginProxy
	}
	return domain.OriginProcessor
}

// JSON decodes a success body. An empty body decodes to nil.
func (r *Response) JSON() (map[string]any, error) {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil, nil
	}
	var out map[string]any
	if err := json.Unmarshal(r.Body, &out); err != nil {
		return nil, &domain.TransportError{Provider: r.Provider, Op: "decode response", Err: err}
	}
	return out, nil
}

// BestEffortJSON decodes an error body, returning nil when it is not a JSON object.
func (r *Response) BestEffortJSON() map[string]any {
	out, err := r.JSON()
	if err != nil {
		return nil
	}
	return out
}
