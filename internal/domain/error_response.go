package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorOrigin identifies which hop rejected a request.
type ErrorOrigin string

const (
	OriginProcessor ErrorOrigin = "processor"
	OriginProxy     ErrorOrigin = "proxy"
)

// ErrorResponse is the canonical failure returned by every adapter.
// It implements error so adapters can return it on the error channel.
type ErrorResponse struct {
	ErrorCodes           []ErrorCode    `json:"error_codes"`
	ProviderErrors       []string       `json:"provider_errors"`
	FullProviderResponse map[string]any `json:"full_provider_response"`
	Origin               ErrorOrigin    `json:"-"`
	StatusCode           int            `json:"-"`
}

func NewErrorResponse(origin ErrorOrigin, statusCode int, codes []ErrorCode, providerErrors []string, full map[string]any) *ErrorResponse {
	if len(codes) == 0 {
		codes = []ErrorCode{DefaultErrorCode}
	}
	if providerErrors == nil {
		providerErrors = []string{}
	}
	return &ErrorResponse{
		ErrorCodes:           codes,
		ProviderErrors:       providerErrors,
		FullProviderResponse: full,
		Origin:               origin,
		StatusCode:           statusCode,
	}
}

func (e *ErrorResponse) Error() string {
	codes := make([]string, 0, len(e.ErrorCodes))
	for _, c := range e.ErrorCodes {
		codes = append(codes, fmt.Sprintf("%s/%s", c.Category, c.Code))
	}
	return fmt.Sprintf("%s rejected request [%s]", e.Origin, strings.Join(codes, ", "))
}

// Primary returns the first error code; every ErrorResponse carries at least one.
func (e *ErrorResponse) Primary() ErrorCode {
	if len(e.ErrorCodes) == 0 {
		return DefaultErrorCode
	}
	return e.ErrorCodes[0]
}

func IsErrorResponse(err error) (*ErrorResponse, bool) {
	var errResp *ErrorResponse
	ok := errors.As(err, &errResp)
	return errResp, ok
}

// TransportError is a failure to reach a provider or to read what it sent back.
type TransportError struct {
	Provider ProviderName
	Op       string
	Err      error
}

func (e *TransportError) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("%s transport error during %s: %v", e.Provider, e.Op, e.Err)
	}
	return fmt.Sprintf("transport error during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsTransportError(err error) (*TransportError, bool) {
	var tErr *TransportError
	ok := errors.As(err, &tErr)
	return tErr, ok
}
