package checkout

import (
	"strings"

	"github.com/DanielPopoola/payment-orchestrator/internal/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/infrastructure/providers"
)

// BuildPayload renders a /payments request body. Billing data travels on the
// source, as Checkout.com expects.
func (c *Client) BuildPayload(req *domain.TransactionRequest) (providers.Payload, error) {
	src := source(req.Source)

	p := providers.Payload{
		"amount":             req.Amount.Value,
		"currency":           req.Amount.Currency,
		"merchant_initiated": req.MerchantInitiated,
	}
	p.Set("payment_type", paymentTypes[req.Type])
	p.Set("processing_channel_id", c.processingChannel)
	p.Set("reference", req.Reference)
	p.Set("metadata", req.Metadata)

	if cust := req.Customer; cust != nil {
		customer := providers.Payload{}
		customer.Set("name", strings.TrimSpace(cust.FirstName+" "+cust.LastName))
		customer.Set("email", cust.Email)
		p.Set("customer", customer)

		if addr := cust.Address; !addr.IsEmpty() {
			billing := providers.Payload{}
			billing.Set("address_line1", addr.AddressLine1)
			billing.Set("address_line2", addr.AddressLine2)
			billing.Set("city", addr.City)
			billing.Set("state", addr.State)
			billing.Set("zip", addr.Zip)
			billing.Set("country", addr.Country)
			src.Set("billing_address", billing)
		}
	}

	if sd := req.StatementDescription; !sd.IsEmpty() {
		descriptor := providers.Payload{}
		descriptor.Set("name", sd.Name)
		descriptor.Set("city", sd.City)
		src.Set("billing_descriptor", descriptor)
	}

	p["source"] = map[string]any(src)

	if tds := req.ThreeDS; !tds.IsEmpty() {
		threeDS := providers.Payload{}
		threeDS.Set("eci", tds.ECI)
		threeDS.Set("cryptogram", tds.AuthenticationValue)
		threeDS.Set("xid", tds.XID)
		threeDS.Set("version", tds.Version)
		p.Set("3ds", threeDS)
	}

	return providers.ApplyOverrides(p, req.OverrideProviderProperties)
}

func source(src domain.Source) providers.Payload {
	if src.Type == domain.SourceTypeProcessorToken {
		return providers.Payload{"type": "id", "id": src.ID}
	}

	out := providers.Payload{
		"type":                 "card",
		"number":               domain.NewTokenExpression(src, domain.CardNumber),
		"expiry_month":         domain.NewTokenExpression(src, domain.CardExpirationMonth),
		"expiry_year":          domain.NewTokenExpression(src, domain.CardExpirationYear),
		"cvv":                  domain.NewTokenExpression(src, domain.CardCVC),
		"store_for_future_use": src.StoreWithProvider,
	}
	out.Set("name", src.HolderName)
	return out
}
