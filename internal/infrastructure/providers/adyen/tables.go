package adyen

import "github.com/DanielPopoola/payment-orchestrator/internal/domain"

var recurringModels = map[domain.RecurringType]string{
	domain.RecurringCardOnFile:   "CardOnFile",
	domain.RecurringSubscription: "Subscription",
	domain.RecurringUnscheduled:  "UnscheduledCardOnFile",
}

// Statuses maps Adyen resultCode values.
var Statuses = domain.StatusTable{
	"Authorised":          domain.StatusAuthorized,
	"Pending":             domain.StatusPending,
	"Error":               domain.StatusDeclined,
	"Refused":             domain.StatusDeclined,
	"Cancelled":           domain.StatusCancelled,
	"ChallengeShopper":    domain.StatusChallengeShopper,
	"Received":            domain.StatusReceived,
	"PartiallyAuthorised": domain.StatusPartiallyAuthorized,
}

var refundStatuses = domain.StatusTable{
	"received": domain.StatusReceived,
}

// declinedResults are resultCodes that mean the payment failed, whatever the HTTP status.
var declinedResults = map[string]bool{
	"Refused":   true,
	"Error":     true,
	"Cancelled": true,
}

func code(category domain.ErrorCategory, t domain.ErrorType) domain.ErrorCode {
	return domain.ErrorCode{Category: category, Code: t}
}

// RefusalReasons maps Adyen refusalReasonCode values.
var RefusalReasons = domain.ErrorTable{
	"2":  code(domain.CategoryProcessingError, domain.ErrorRefused),
	"3":  code(domain.CategoryProcessingError, domain.ErrorReferral),
	"4":  code(domain.CategoryOther, domain.ErrorAcquirerError),
	"5":  code(domain.CategoryPaymentMethodError, domain.ErrorBlockedCard),
	"6":  code(domain.CategoryPaymentMethodError, domain.ErrorExpiredCard),
	"7":  code(domain.CategoryOther, domain.ErrorInvalidAmount),
	"8":  code(domain.CategoryPaymentMethodError, domain.ErrorInvalidCard),
	"9":  code(domain.CategoryOther, domain.ErrorOther),
	"10": code(domain.CategoryProcessingError, domain.ErrorNotSupported),
	"11": code(domain.CategoryPaymentMethodError, domain.ErrorAuthenticationFailure),
	"12": code(domain.CategoryPaymentMethodError, domain.ErrorInsufficientFunds),
	"14": code(domain.CategoryFraudDecline, domain.ErrorFraud),
	"15": code(domain.CategoryOther, domain.ErrorPaymentCancelled),
	"16": code(domain.CategoryProcessingError, domain.ErrorPaymentCancelledByConsumer),
	"17": code(domain.CategoryPaymentMethodError, domain.ErrorInvalidPin),
	"18": code(domain.CategoryPaymentMethodError, domain.ErrorPinTriesExceeded),
	"19": code(domain.CategoryPaymentMethodError, domain.ErrorOther),
	"20": code(domain.CategoryFraudDecline, domain.ErrorFraud),
	"21": code(domain.CategoryOther, domain.ErrorOther),
	"22": code(domain.CategoryFraudDecline, domain.ErrorFraud),
	"23": code(domain.CategoryProcessingError, domain.ErrorNotSupported),
	"24": code(domain.CategoryPaymentMethodError, domain.ErrorCVCInvalid),
	"25": code(domain.CategoryProcessingError, domain.ErrorRestrictedCard),
	"26": code(domain.CategoryProcessingError, domain.ErrorStopPayment),
	"27": code(domain.CategoryOther, domain.ErrorOther),
	"28": code(domain.CategoryProcessingError, domain.ErrorInsufficientFunds),
	"29": code(domain.CategoryProcessingError, domain.ErrorInsufficientFunds),
	"31": code(domain.CategoryFraudDecline, domain.ErrorFraud),
	"32": code(domain.CategoryProcessingError, domain.ErrorAVSDecline),
	"33": code(domain.CategoryProcessingError, domain.ErrorPinRequired),
	"34": code(domain.CategoryProcessingError, domain.ErrorBankError),
	"35": code(domain.CategoryProcessingError, domain.ErrorBankError),
	"36": code(domain.CategoryProcessingError, domain.ErrorPinRequired),
	"37": code(domain.CategoryProcessingError, domain.ErrorContactlessFallback),
	"38": code(domain.CategoryProcessingError, domain.ErrorAuthenticationRequired),
	"39": code(domain.CategoryAuthenticationError, domain.ErrorAuthenticationFailure),
	"40": code(domain.CategoryOther, domain.ErrorOther),
	"41": code(domain.CategoryProcessingError, domain.ErrorPinRequired),
	"42": code(domain.CategoryAuthenticationError, domain.ErrorAuthenticationFailure),
	"43": code(domain.CategoryProcessingError, domain.ErrorPinRequired),
	"44": code(domain.CategoryProcessingError, domain.ErrorOther),
	"45": code(domain.CategoryProcessingError, domain.ErrorOther),
	"46": code(domain.CategoryProcessingError, domain.ErrorProcessorBlocked),
}

// APIErrors maps the errorCode of Adyen's non-2xx validation responses.
var APIErrors = domain.ErrorTable{
	"101": code(domain.CategoryPaymentMethodError, domain.ErrorInvalidCard),
	"102": code(domain.CategoryPaymentMethodError, domain.ErrorInvalidCard),
	"103": code(domain.CategoryPaymentMethodError, domain.ErrorCVCInvalid),
	"129": code(domain.CategoryPaymentMethodError, domain.ErrorExpiredCard),
	"137": code(domain.CategoryOther, domain.ErrorInvalidAmount),
	"138": code(domain.CategoryProcessingError, domain.ErrorNotSupported),
	"901": code(domain.CategoryOther, domain.ErrorConfigurationError),
}
