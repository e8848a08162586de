package adyen

import (
	"github.com/DanielPopoola/payment-orchestrator/internal/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/infrastructure/providers"
)

// BuildPayload renders a /payments request body. Card fields are emitted as
// proxy expressions; a processor token is sent as a stored payment method.
func (c *Client) BuildPayload(req *domain.TransactionRequest) (providers.Payload, error) {
	p := providers.Payload{
		"amount": map[string]any{
			"value":    req.Amount.Value,
			"currency": req.Amount.Currency,
		},
		"merchantAccount":    c.merchantAccount,
		"shopperInteraction": shopperInteraction(req.MerchantInitiated),
		"storePaymentMethod": req.Source.StoreWithProvider,
		"paymentMethod":      paymentMethod(req.Source),
	}

	p.Set("reference", req.Reference)
	p.Set("metadata", req.Metadata)
	if model, ok := recurringModels[req.Type]; ok {
		p["recurringProcessingModel"] = model
	}

	if cust := req.Customer; cust != nil {
		p.Set("shopperReference", cust.Reference)
		p.Set("shopperEmail", cust.Email)

		name := providers.Payload{}
		name.Set("firstName", cust.FirstName)
		name.Set("lastName", cust.LastName)
		p.Set("shopperName", name)

		p.Set("billingAddress", billingAddress(cust.Address))
	}

	if sd := req.StatementDescription; !sd.IsEmpty() {
		p.Set("shopperStatement", sd.Name)
	}

	if tds := req.ThreeDS; !tds.IsEmpty() {
		secure := providers.Payload{}
		secure.Set("eci", tds.ECI)
		secure.Set("authenticationValue", tds.AuthenticationValue)
		secure.Set("xid", tds.XID)
		secure.Set("threeDSVersion", tds.Version)
		p["additionalData"] = map[string]any{"threeDSecure": map[string]any(secure)}
	}

	return providers.ApplyOverrides(p, req.OverrideProviderProperties)
}

func shopperInteraction(merchantInitiated bool) string {
	if merchantInitiated {
		return "ContAuth"
	}
	return "Ecommerce"
}

func paymentMethod(src domain.Source) map[string]any {
	pm := providers.Payload{"type": "scheme"}
	if src.Type == domain.SourceTypeProcessorToken {
		pm["storedPaymentMethodId"] = src.ID
	} else {
		pm["number"] = domain.NewTokenExpression(src, domain.CardNumber)
		pm["expiryMonth"] = domain.NewTokenExpression(src, domain.CardExpirationMonth)
		pm["expiryYear"] = domain.NewTokenExpression(src, domain.CardExpirationYear)
		pm["cvc"] = domain.NewTokenExpression(src, domain.CardCVC)
	}
	pm.Set("holderName", src.HolderName)
	return pm
}

// billingAddress has no slot for a second address line.
func billingAddress(addr *domain.Address) map[string]any {
	if addr == nil {
		return nil
	}
	out := providers.Payload{}
	out.Set("street", addr.AddressLine1)
	out.Set("city", addr.City)
	out.Set("stateOrProvince", addr.State)
	out.Set("postalCode", addr.Zip)
	out.Set("country", addr.Country)
	return out
}
