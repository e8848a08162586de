package domain

// ErrorCategory is the coarse bucket of a failure.
type ErrorCategory string

const (
	CategoryProcessingError     ErrorCategory = "processing_error"
	CategoryPaymentMethodError  ErrorCategory = "payment_method_error"
	CategoryFraudDecline        ErrorCategory = "fraud_decline"
	CategoryAuthenticationError ErrorCategory = "authentication_error"
	CategoryOther               ErrorCategory = "other"
	CategoryProxyError          ErrorCategory = "basis_theory_error"
)

// ErrorType is the specific reason for a failure.
type ErrorType string

const (
	ErrorRefused                    ErrorType = "refused"
	ErrorReferral                   ErrorType = "referral"
	ErrorAcquirerError              ErrorType = "acquirer_error"
	ErrorBlockedCard                ErrorType = "blocked_card"
	ErrorExpiredCard                ErrorType = "expired_card"
	ErrorInvalidAmount              ErrorType = "invalid_amount"
	ErrorInvalidCard                ErrorType = "invalid_card"
	ErrorOther                      ErrorType = "other"
	ErrorNotSupported               ErrorType = "not_supported"
	ErrorAuthenticationFailure      ErrorType = "authentication_failure"
	ErrorInsufficientFunds          ErrorType = "insufficient_funds"
	ErrorFraud                      ErrorType = "fraud"
	ErrorPaymentCancelled           ErrorType = "payment_cancelled"
	ErrorPaymentCancelledByConsumer ErrorType = "payment_cancelled_by_consumer"
	ErrorInvalidPin                 ErrorType = "invalid_pin"
	ErrorPinTriesExceeded           ErrorType = "pin_tries_exceeded"
	ErrorCVCInvalid                 ErrorType = "cvc_invalid"
	ErrorRestrictedCard             ErrorType = "restricted_card"
	ErrorStopPayment                ErrorType = "stop_payment"
	ErrorAVSDecline                 ErrorType = "avs_decline"
	ErrorPinRequired                ErrorType = "pin_required"
	ErrorBankError                  ErrorType = "bank_error"
	ErrorContactlessFallback        ErrorType = "contactless_fallback"
	ErrorAuthenticationRequired     ErrorType = "authentication_required"
	ErrorProcessorBlocked           ErrorType = "processor_blocked"
	ErrorInvalidAPIKey              ErrorType = "invalid_api_key"
	ErrorUnauthorized               ErrorType = "unauthorized"
	ErrorConfigurationError         ErrorType = "configuration_error"
	ErrorInvalidSourceToken         ErrorType = "invalid_source_token"
	ErrorRefundDeclined             ErrorType = "refund_declined"
	ErrorRefundExceedsBalance       ErrorType = "refund_amount_exceeds_balance"
	ErrorProxyUnauthenticated       ErrorType = "bt_unauthenticated"
	ErrorProxyUnauthorized          ErrorType = "bt_unauthorized"
	ErrorProxyRequestError          ErrorType = "bt_request_error"
	ErrorProxyUnexpected            ErrorType = "bt_unexpected"
)

// ErrorCode pairs a category with a specific type.
type ErrorCode struct {
	Category ErrorCategory `json:"category"`
	Code     ErrorType     `json:"code"`
}

// DefaultErrorCode is used for any provider code absent from a table.
var DefaultErrorCode = ErrorCode{Category: CategoryOther, Code: ErrorOther}

// ErrorTable maps a provider-specific error code to its canonical pair.
type ErrorTable map[string]ErrorCode

// Resolve never fails; unknown codes fall back to DefaultErrorCode.
func (t ErrorTable) Resolve(code string) ErrorCode {
	if ec, ok := t[code]; ok {
		return ec
	}
	return DefaultErrorCode
}

type TransactionStatusCode string

const (
	StatusAuthorized          TransactionStatusCode = "Authorized"
	StatusPending             TransactionStatusCode = "Pending"
	StatusCardVerified        TransactionStatusCode = "Card Verified"
	StatusDeclined            TransactionStatusCode = "Declined"
	StatusRetryScheduled      TransactionStatusCode = "Retry Scheduled"
	StatusCancelled           TransactionStatusCode = "Cancelled"
	StatusChallengeShopper    TransactionStatusCode = "ChallengeShopper"
	StatusReceived            TransactionStatusCode = "Received"
	StatusPartiallyAuthorized TransactionStatusCode = "PartiallyAuthorised"
	StatusRefunded            TransactionStatusCode = "Refunded"
)

// StatusTable maps a provider status string to a canonical status.
type StatusTable map[string]TransactionStatusCode

// Resolve returns DECLINED for any status the table does not know.
func (t StatusTable) Resolve(status string) TransactionStatusCode {
	if code, ok := t[status]; ok {
		return code
	}
	return StatusDeclined
}

// Status builds the canonical status block, keeping the provider's raw value.
func (t StatusTable) Status(providerStatus string) TransactionStatus {
	return TransactionStatus{
		Code:         t.Resolve(providerStatus),
		ProviderCode: providerStatus,
	}
}
