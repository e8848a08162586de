package domain

// DefaultCurrency is applied when a request omits amount.currency.
const DefaultCurrency = "USD"

// Amount is a value in minor currency units.
type Amount struct {
	Value    int64  `json:"value"`
	Currency string `json:"currency"`
}

func NewAmount(value int64, currency string) (Amount, error) {
	if value < 0 {
		return Amount{}, NewInvalidAmountError(value)
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return Amount{Value: value, Currency: currency}, nil
}

// ProviderName identifies a payment processor adapter.
type ProviderName string

const (
	ProviderAdyen    ProviderName = "adyen"
	ProviderCheckout ProviderName = "checkout"
)
