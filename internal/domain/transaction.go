package domain

import "time"

type SourceType string

const (
	SourceTypeToken          SourceType = "basis_theory_token"
	SourceTypeTokenIntent    SourceType = "basis_theory_token_intent"
	SourceTypeProcessorToken SourceType = "processor_token"
)

// UsesProxy reports whether requests carrying this source must be sent through
// the tokenization proxy so card fields can be expanded in flight.
func (t SourceType) UsesProxy() bool {
	return t != SourceTypeProcessorToken
}

type RecurringType string

const (
	RecurringOneTime      RecurringType = "ONE_TIME"
	RecurringCardOnFile   RecurringType = "CARD_ON_FILE"
	RecurringSubscription RecurringType = "SUBSCRIPTION"
	RecurringUnscheduled  RecurringType = "UNSCHEDULED"
)

type Source struct {
	Type              SourceType `json:"type"`
	ID                string     `json:"id"`
	StoreWithProvider bool       `json:"store_with_provider"`
	HolderName        string     `json:"holder_name,omitempty"`
}

type Address struct {
	AddressLine1 string `json:"address_line1,omitempty"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Zip          string `json:"zip,omitempty"`
	Country      string `json:"country,omitempty"`
}

// IsEmpty reports whether no sub-field is set.
func (a *Address) IsEmpty() bool {
	return a == nil || *a == Address{}
}

type Customer struct {
	Reference string   `json:"reference,omitempty"`
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	Email     string   `json:"email,omitempty"`
	Address   *Address `json:"address,omitempty"`
}

type StatementDescription struct {
	Name string `json:"name,omitempty"`
	City string `json:"city,omitempty"`
}

func (s *StatementDescription) IsEmpty() bool {
	return s == nil || *s == StatementDescription{}
}

// ThreeDS carries the result of an externally performed 3-D Secure authentication.
type ThreeDS struct {
	ECI                 string `json:"eci,omitempty"`
	AuthenticationValue string `json:"authentication_value,omitempty"`
	XID                 string `json:"xid,omitempty"`
	Version             string `json:"version,omitempty"`
}

func (t *ThreeDS) IsEmpty() bool {
	return t == nil || *t == ThreeDS{}
}

type TransactionRequest struct {
	Amount                     Amount                `json:"amount"`
	Source                     Source                `json:"source"`
	Reference                  string                `json:"reference,omitempty"`
	MerchantInitiated          bool                  `json:"merchant_initiated"`
	Type                       RecurringType         `json:"type,omitempty"`
	Customer                   *Customer             `json:"customer,omitempty"`
	StatementDescription       *StatementDescription `json:"statement_description,omitempty"`
	ThreeDS                    *ThreeDS              `json:"3ds,omitempty"`
	Metadata                   map[string]any        `json:"metadata,omitempty"`
	OverrideProviderProperties map[string]any        `json:"override_provider_properties,omitempty"`
}

type TransactionStatus struct {
	Code         TransactionStatusCode `json:"code"`
	ProviderCode string                `json:"provider_code"`
}

type ProvisionedSource struct {
	ID string `json:"id"`
}

type TransactionSource struct {
	Type        SourceType         `json:"type"`
	ID          string             `json:"id"`
	Provisioned *ProvisionedSource `json:"provisioned,omitempty"`
}

type TransactionResponse struct {
	ID                   string            `json:"id"`
	Reference            string            `json:"reference"`
	Amount               Amount            `json:"amount"`
	Status               TransactionStatus `json:"status"`
	Source               TransactionSource `json:"source"`
	NetworkTransactionID string            `json:"network_transaction_id,omitempty"`
	FullProviderResponse map[string]any    `json:"full_provider_response"`
	CreatedAt            time.Time         `json:"created_at"`
}

type RefundRequest struct {
	Reference string         `json:"reference,omitempty"`
	Amount    *Amount        `json:"amount,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type RefundResponse struct {
	ID                   string            `json:"id"`
	Reference            string            `json:"reference"`
	Amount               *Amount           `json:"amount,omitempty"`
	Status               TransactionStatus `json:"status"`
	FullProviderResponse map[string]any    `json:"full_provider_response"`
	CreatedAt            time.Time         `json:"created_at"`
}
