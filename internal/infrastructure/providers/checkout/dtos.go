package checkout

type PaymentResponse struct {
	ID              string `json:"id"`
	Reference       string `json:"reference"`
	Status          string `json:"status"`
	Approved        *bool  `json:"approved"`
	ResponseCode    string `json:"response_code"`
	ResponseSummary string `json:"response_summary"`
	Amount          *int64 `json:"amount"`
	Currency        string `json:"currency"`
	ProcessedOn     string `json:"processed_on"`
	Source          struct {
		ID string `json:"id"`
	} `json:"source"`
	Processing struct {
		AcquirerTransactionID string `json:"acquirer_transaction_id"`
	} `json:"processing"`
}

type RefundResponse struct {
	ActionID  string `json:"action_id"`
	Reference string `json:"reference"`
}

type ErrorResponse struct {
	RequestID  string   `json:"request_id"`
	ErrorType  string   `json:"error_type"`
	ErrorCodes []string `json:"error_codes"`
}
