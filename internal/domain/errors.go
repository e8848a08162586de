package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a rejected canonical request
type DomainError struct {
	Code    string
	Message string
	Field   string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Domain validation errors
const (
	ErrCodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	ErrCodeInvalidField         = "INVALID_FIELD"
	ErrCodeInvalidAmount        = "INVALID_AMOUNT"
	ErrCodeMalformedRequest     = "MALFORMED_REQUEST"
)

func NewMissingRequiredFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingRequiredField,
		Message: fmt.Sprintf("%s is required", field),
		Field:   field,
	}
}

func NewInvalidFieldError(field, reason string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidField,
		Message: fmt.Sprintf("%s is invalid: %s", field, reason),
		Field:   field,
	}
}

func NewInvalidAmountError(amount int64) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: fmt.Sprintf("invalid amount %d", amount),
		Field:   "amount.value",
	}
}

func NewMalformedRequestError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeMalformedRequest,
		Message: "request could not be decoded",
		Err:     err,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// IsDomainError reports whether err is a validation failure raised before any network call
func IsDomainError(err error) (*DomainError, bool) {
	var domainErr *DomainError
	ok := errors.As(err, &domainErr)
	return domainErr, ok
}
