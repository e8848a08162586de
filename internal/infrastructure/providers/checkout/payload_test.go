package checkout_test

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/DanielPopoola/payment-orchestrator/internal/config"
	"github.com/DanielPopoola/payment-orchestrator/internal/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/infrastructure/providers/checkout"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func payloadClient(channel string) *checkout.Client {
	return checkout.NewClient(config.CheckoutConfig{PrivateKey: "sk_test", ProcessingChannel: channel}, true, nil, discardLogger())
}

func tokenRequest() *domain.TransactionRequest {
	return &domain.TransactionRequest{
		Amount: domain.Amount{Value: 1000, Currency: "USD"},
		Source: domain.Source{Type: domain.SourceTypeToken, ID: "tok_1"},
	}
}

func TestBuildPayload(t *testing.T) {
	t.Run("required fields only", func(t *testing.T) {
		p, err := payloadClient("").BuildPayload(tokenRequest())
		require.NoError(t, err)

		assert.Equal(t, int64(1000), p["amount"])
		assert.Equal(t, "USD", p["currency"])
		assert.Equal(t, false, p["merchant_initiated"])
		for _, key := range []string{"payment_type", "processing_channel_id", "reference", "metadata", "customer", "3ds"} {
			assert.NotContains(t, p, key)
		}

		src := p["source"].(map[string]any)
		assert.Equal(t, "card", src["type"])
		assert.Equal(t, false, src["store_for_future_use"])
		assert.NotContains(t, src, "name")
		assert.NotContains(t, src, "billing_address")
		assert.NotContains(t, src, "billing_descriptor")
	})

	t.Run("card fields are proxy expressions", func(t *testing.T) {
		p, err := payloadClient("").BuildPayload(tokenRequest())
		require.NoError(t, err)

		src := p["source"].(map[string]any)
		assert.Equal(t, "{{ token: tok_1 | json: '$.data.number'}}", src["number"].(domain.TokenExpression).String())
		assert.Equal(t, "{{ token: tok_1 | json: '$.data.expiration_month'}}", src["expiry_month"].(domain.TokenExpression).String())
		assert.Equal(t, "{{ token: tok_1 | json: '$.data.expiration_year'}}", src["expiry_year"].(domain.TokenExpression).String())
		assert.Equal(t, "{{ token: tok_1 | json: '$.data.cvc'}}", src["cvv"].(domain.TokenExpression).String())
	})

	t.Run("token intent", func(t *testing.T) {
		req := tokenRequest()
		req.Source = domain.Source{Type: domain.SourceTypeTokenIntent, ID: "ti_1", StoreWithProvider: true, HolderName: "Ada Lovelace"}

		p, err := payloadClient("").BuildPayload(req)
		require.NoError(t, err)

		src := p["source"].(map[string]any)
		assert.Equal(t, "{{ token_intent: ti_1 | json: '$.data.number'}}", src["number"].(domain.TokenExpression).String())
		assert.Equal(t, true, src["store_for_future_use"])
		assert.Equal(t, "Ada Lovelace", src["name"])
	})

	t.Run("processor token is an id source", func(t *testing.T) {
		req := tokenRequest()
		req.Source = domain.Source{Type: domain.SourceTypeProcessorToken, ID: "src_abc", StoreWithProvider: true}
		req.MerchantInitiated = true
		req.Type = domain.RecurringSubscription

		p, err := payloadClient("pc_1").BuildPayload(req)
		require.NoError(t, err)

		assert.Equal(t, map[string]any{"type": "id", "id": "src_abc"}, p["source"])
		assert.Equal(t, true, p["merchant_initiated"])
		assert.Equal(t, "Recurring", p["payment_type"])
		assert.Equal(t, "pc_1", p["processing_channel_id"])
	})

	t.Run("payment types", func(t *testing.T) {
		tests := map[domain.RecurringType]string{
			domain.RecurringOneTime:      "Regular",
			domain.RecurringCardOnFile:   "CardOnFile",
			domain.RecurringSubscription: "Recurring",
			domain.RecurringUnscheduled:  "Unscheduled",
		}
		for recurring, want := range tests {
			req := tokenRequest()
			req.Type = recurring

			p, err := payloadClient("").BuildPayload(req)
			require.NoError(t, err)
			assert.Equal(t, want, p["payment_type"], string(recurring))
		}
	})

	t.Run("all optional blocks", func(t *testing.T) {
		first, last := gofakeit.FirstName(), gofakeit.LastName()
		email := gofakeit.Email()
		req := tokenRequest()
		req.Reference = "order-7"
		req.Metadata = map[string]any{"cart": "42"}
		req.Customer = &domain.Customer{
			FirstName: first,
			LastName:  last,
			Email:     email,
			Address: &domain.Address{
				AddressLine1: "1 Main St",
				AddressLine2: "Apt 2",
				City:         "Springfield",
				State:        "IL",
				Zip:          "62701",
				Country:      "US",
			},
		}
		req.StatementDescription = &domain.StatementDescription{Name: "ACME", City: "Springfield"}
		req.ThreeDS = &domain.ThreeDS{ECI: "05", AuthenticationValue: "AAAB", XID: "xid_1", Version: "2.2.0"}

		p, err := payloadClient("").BuildPayload(req)
		require.NoError(t, err)

		assert.Equal(t, "order-7", p["reference"])
		assert.Equal(t, map[string]any{"cart": "42"}, p["metadata"])
		assert.Equal(t, map[string]any{"name": first + " " + last, "email": email}, p["customer"])
		assert.Equal(t, map[string]any{"eci": "05", "cryptogram": "AAAB", "xid": "xid_1", "version": "2.2.0"}, p["3ds"])

		src := p["source"].(map[string]any)
		assert.Equal(t, map[string]any{
			"address_line1": "1 Main St",
			"address_line2": "Apt 2",
			"city":          "Springfield",
			"state":         "IL",
			"zip":           "62701",
			"country":       "US",
		}, src["billing_address"])
		assert.Equal(t, map[string]any{"name": "ACME", "city": "Springfield"}, src["billing_descriptor"])
	})

	t.Run("email-only customer has no name and no billing address", func(t *testing.T) {
		req := tokenRequest()
		req.Customer = &domain.Customer{Email: "a@b.co"}

		p, err := payloadClient("").BuildPayload(req)
		require.NoError(t, err)

		assert.Equal(t, map[string]any{"email": "a@b.co"}, p["customer"])
		assert.NotContains(t, p["source"], "billing_address")
	})

	t.Run("empty 3ds block is omitted", func(t *testing.T) {
		req := tokenRequest()
		req.ThreeDS = &domain.ThreeDS{}

		p, err := payloadClient("").BuildPayload(req)
		require.NoError(t, err)
		assert.NotContains(t, p, "3ds")
	})

	t.Run("overrides merge last", func(t *testing.T) {
		req := tokenRequest()
		req.Reference = "order-1"
		req.OverrideProviderProperties = map[string]any{
			"reference": "overridden",
			"source":    map[string]any{"store_for_future_use": true},
			"capture":   false,
		}

		p, err := payloadClient("").BuildPayload(req)
		require.NoError(t, err)

		assert.Equal(t, "overridden", p["reference"])
		assert.Equal(t, false, p["capture"])
		src := p["source"].(map[string]any)
		assert.Equal(t, true, src["store_for_future_use"])
		assert.Equal(t, "card", src["type"])
	})
}

func TestBuildPayload_LeavesRequestUnchanged(t *testing.T) {
	newRequest := func() *domain.TransactionRequest {
		req := tokenRequest()
		req.Metadata = map[string]any{"order": "o-1"}
		req.OverrideProviderProperties = map[string]any{
			"metadata": map[string]any{"injected": "x", "order": map[string]any{"id": "o-2"}},
		}
		return req
	}

	t.Run("metadata override does not leak into the request", func(t *testing.T) {
		req := newRequest()

		p, err := payloadClient("").BuildPayload(req)

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"injected": "x", "order": map[string]any{"id": "o-2"}}, p["metadata"])
		assert.Equal(t, newRequest().Metadata, req.Metadata)
		assert.Equal(t, newRequest().OverrideProviderProperties, req.OverrideProviderProperties)
	})

	t.Run("concurrent builds share one request", func(t *testing.T) {
		client := payloadClient("")
		req := newRequest()

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				p, err := client.BuildPayload(req)
				assert.NoError(t, err)
				assert.Equal(t, "x", p["metadata"].(map[string]any)["injected"])
			}()
		}
		wg.Wait()

		assert.Equal(t, map[string]any{"order": "o-1"}, req.Metadata)
	})
}
