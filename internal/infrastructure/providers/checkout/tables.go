package checkout

import "github.com/DanielPopoola/payment-orchestrator/internal/domain"

var paymentTypes = map[domain.RecurringType]string{
	domain.RecurringOneTime:      "Regular",
	domain.RecurringCardOnFile:   "CardOnFile",
	domain.RecurringSubscription: "Recurring",
	domain.RecurringUnscheduled:  "Unscheduled",
}

// Statuses maps Checkout.com payment status values.
var Statuses = domain.StatusTable{
	"Authorized":      domain.StatusAuthorized,
	"Pending":         domain.StatusPending,
	"Card Verified":   domain.StatusCardVerified,
	"Declined":        domain.StatusDeclined,
	"Retry Scheduled": domain.StatusRetryScheduled,
}

func code(category domain.ErrorCategory, t domain.ErrorType) domain.ErrorCode {
	return domain.ErrorCode{Category: category, Code: t}
}

var (
	invalidCard    = code(domain.CategoryPaymentMethodError, domain.ErrorInvalidCard)
	notSupported   = code(domain.CategoryProcessingError, domain.ErrorNotSupported)
	avsDecline     = code(domain.CategoryProcessingError, domain.ErrorAVSDecline)
	other          = code(domain.CategoryOther, domain.ErrorOther)
	configuration  = code(domain.CategoryOther, domain.ErrorConfigurationError)
	authentication = code(domain.CategoryAuthenticationError, domain.ErrorAuthenticationFailure)
)

// ErrorCodes maps the error_codes array of Checkout.com 4xx responses.
var ErrorCodes = domain.ErrorTable{
	"card_authorization_failed": code(domain.CategoryProcessingError, domain.ErrorRefused),
	"card_disabled":             code(domain.CategoryPaymentMethodError, domain.ErrorBlockedCard),
	"card_expired":              code(domain.CategoryPaymentMethodError, domain.ErrorExpiredCard),

	"card_expiry_month_invalid":  invalidCard,
	"card_expiry_month_required": invalidCard,
	"card_expiry_year_invalid":   invalidCard,
	"card_expiry_year_required":  invalidCard,
	"expiry_date_format_invalid": invalidCard,
	"card_not_found":             invalidCard,
	"card_number_invalid":        invalidCard,
	"card_number_required":       invalidCard,

	"issuer_network_unavailable": other,

	"card_not_eligible_domestic_money_transfer":         notSupported,
	"card_not_eligible_cross_border_money_transfer":     notSupported,
	"card_not_eligible_domestic_non_money_transfer":     notSupported,
	"card_not_eligible_cross_border_non_money_transfer": notSupported,
	"card_not_eligible_domestic_online_gambling":        notSupported,
	"card_not_eligible_cross_border_online_gambling":    notSupported,

	"3ds_not_enabled_for_card": authentication,
	"3ds_not_supported":        authentication,

	"amount_exceeds_balance":         code(domain.CategoryPaymentMethodError, domain.ErrorInsufficientFunds),
	"amount_limit_exceeded":          code(domain.CategoryPaymentMethodError, domain.ErrorInsufficientFunds),
	"velocity_amount_limit_exceeded": code(domain.CategoryProcessingError, domain.ErrorInsufficientFunds),
	"velocity_count_limit_exceeded":  code(domain.CategoryProcessingError, domain.ErrorInsufficientFunds),

	"payment_expired":  code(domain.CategoryOther, domain.ErrorPaymentCancelled),
	"cvv_invalid":      code(domain.CategoryPaymentMethodError, domain.ErrorCVCInvalid),
	"processing_error": code(domain.CategoryProcessingError, domain.ErrorRefused),

	"address_invalid":                   avsDecline,
	"city_invalid":                      avsDecline,
	"country_address_invalid":           avsDecline,
	"country_invalid":                   avsDecline,
	"country_phone_code_invalid":        avsDecline,
	"country_phone_code_length_invalid": avsDecline,
	"phone_number_invalid":              avsDecline,
	"phone_number_length_invalid":       avsDecline,
	"zip_invalid":                       avsDecline,

	"action_failure_limit_exceeded": code(domain.CategoryProcessingError, domain.ErrorProcessorBlocked),

	"token_expired":                                   other,
	"token_in_use":                                    other,
	"token_invalid":                                   other,
	"token_used":                                      other,
	"capture_value_greater_than_authorized":           other,
	"capture_value_greater_than_remaining_authorized": other,
	"card_holder_invalid":                             other,
	"previous_payment_id_invalid":                     other,

	"processing_channel_id_required": configuration,
	"success_url_required":           configuration,

	"source_token_invalid": code(domain.CategoryPaymentMethodError, domain.ErrorInvalidSourceToken),

	"refund_amount_exceeds_balance": code(domain.CategoryProcessingError, domain.ErrorRefundExceedsBalance),
	"refund_authorization_declined": code(domain.CategoryProcessingError, domain.ErrorRefundDeclined),
}

// DeclineCodes maps the response_code of a payment that came back Declined.
var DeclineCodes = domain.ErrorTable{
	"20001": code(domain.CategoryProcessingError, domain.ErrorReferral),
	"20003": configuration,
	"20005": code(domain.CategoryProcessingError, domain.ErrorRefused),
	"20012": notSupported,
	"20013": code(domain.CategoryOther, domain.ErrorInvalidAmount),
	"20014": invalidCard,
	"20046": code(domain.CategoryPaymentMethodError, domain.ErrorBlockedCard),
	"20051": code(domain.CategoryPaymentMethodError, domain.ErrorInsufficientFunds),
	"20054": code(domain.CategoryPaymentMethodError, domain.ErrorExpiredCard),
	"20055": code(domain.CategoryPaymentMethodError, domain.ErrorInvalidPin),
	"20057": notSupported,
	"20059": code(domain.CategoryFraudDecline, domain.ErrorFraud),
	"20061": code(domain.CategoryProcessingError, domain.ErrorInsufficientFunds),
	"20062": code(domain.CategoryProcessingError, domain.ErrorRestrictedCard),
	"20065": code(domain.CategoryProcessingError, domain.ErrorInsufficientFunds),
	"20075": code(domain.CategoryPaymentMethodError, domain.ErrorPinTriesExceeded),
	"20087": code(domain.CategoryPaymentMethodError, domain.ErrorCVCInvalid),
	"20091": other,
	"20096": other,
	"20154": code(domain.CategoryProcessingError, domain.ErrorAuthenticationRequired),
	"30004": code(domain.CategoryPaymentMethodError, domain.ErrorBlockedCard),
	"30007": code(domain.CategoryFraudDecline, domain.ErrorFraud),
	"30041": code(domain.CategoryPaymentMethodError, domain.ErrorBlockedCard),
	"30043": code(domain.CategoryFraudDecline, domain.ErrorFraud),
	"40101": code(domain.CategoryFraudDecline, domain.ErrorFraud),
}
