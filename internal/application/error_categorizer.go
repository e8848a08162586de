package application

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/DanielPopoola/payment-orchestrator/internal/domain"
)

// FailureClass says which layer a failure came from, for logging and HTTP mapping.
type FailureClass string

const (
	ClassValidation    FailureClass = "VALIDATION"
	ClassConfiguration FailureClass = "CONFIGURATION"
	ClassProxy         FailureClass = "PROXY"
	ClassProcessor     FailureClass = "PROCESSOR"
	ClassTransport     FailureClass = "TRANSPORT"
	ClassTimeout       FailureClass = "TIMEOUT"
	ClassInternal      FailureClass = "INTERNAL"
)

// CategorizeError buckets an error returned by the orchestrator.
func CategorizeError(err error) FailureClass {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ClassTimeout
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeProviderNotConfigured:
			return ClassConfiguration
		case ErrCodeTimeout:
			return ClassTimeout
		}
	}

	if errResp, ok := domain.IsErrorResponse(err); ok {
		if errResp.Origin == domain.OriginProxy {
			return ClassProxy
		}
		return ClassProcessor
	}

	if _, ok := domain.IsDomainError(err); ok {
		return ClassValidation
	}

	if _, ok := domain.IsTransportError(err); ok {
		return ClassTransport
	}

	return ClassInternal
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	switch CategorizeError(err) {
	case ClassValidation:
		return http.StatusBadRequest
	case ClassConfiguration:
		return http.StatusNotFound
	case ClassProcessor:
		return http.StatusPaymentRequired
	case ClassProxy, ClassTransport:
		return http.StatusBadGateway
	case ClassTimeout:
		return http.StatusGatewayTimeout
	}

	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	if domainErr, ok := domain.IsDomainError(err); ok {
		return domainErr.Code
	}

	if errResp, ok := domain.IsErrorResponse(err); ok {
		return strings.ToUpper(string(errResp.Primary().Code))
	}

	if _, ok := domain.IsTransportError(err); ok {
		return "PROVIDER_UNREACHABLE"
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrCodeTimeout
	}

	return ErrCodeInternal
}
