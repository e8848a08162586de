package adyen

type amountDTO struct {
	Value    *int64 `json:"value"`
	Currency string `json:"currency"`
}

type storedMethodDTO struct {
	StoredPaymentMethodID string `json:"storedPaymentMethodId"`
}

type PaymentResponse struct {
	PSPReference      string            `json:"pspReference"`
	MerchantReference string            `json:"merchantReference"`
	ResultCode        string            `json:"resultCode"`
	RefusalReason     string            `json:"refusalReason"`
	RefusalReasonCode string            `json:"refusalReasonCode"`
	Amount            *amountDTO        `json:"amount"`
	AdditionalData    map[string]string `json:"additionalData"`
	Tokenization      storedMethodDTO   `json:"tokenization"`
	PaymentMethod     storedMethodDTO   `json:"paymentMethod"`
}

type RefundResponse struct {
	PSPReference string     `json:"pspReference"`
	Reference    string     `json:"reference"`
	Status       string     `json:"status"`
	Amount       *amountDTO `json:"amount"`
}

// ErrorResponse covers both API validation errors and refusals returned with
// a non-2xx status.
type ErrorResponse struct {
	ErrorCode         string `json:"errorCode"`
	Message           string `json:"message"`
	ResultCode        string `json:"resultCode"`
	RefusalReason     string `json:"refusalReason"`
	RefusalReasonCode string `json:"refusalReasonCode"`
}

func (e ErrorResponse) messages() []string {
	if e.RefusalReason != "" {
		return []string{e.RefusalReason}
	}
	if e.Message != "" {
		return []string{e.Message}
	}
	return []string{}
}
