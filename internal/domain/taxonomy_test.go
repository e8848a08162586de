package domain_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/DanielPopoola/payment-orchestrator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTable_Resolve(t *testing.T) {
	table := domain.ErrorTable{
		"6": {Category: domain.CategoryPaymentMethodError, Code: domain.ErrorExpiredCard},
	}

	assert.Equal(t, domain.ErrorCode{Category: domain.CategoryPaymentMethodError, Code: domain.ErrorExpiredCard}, table.Resolve("6"))
	assert.Equal(t, domain.DefaultErrorCode, table.Resolve("999"))
	assert.Equal(t, domain.DefaultErrorCode, table.Resolve(""))
}

func TestStatusTable_Resolve(t *testing.T) {
	table := domain.StatusTable{"Authorised": domain.StatusAuthorized}

	assert.Equal(t, domain.StatusAuthorized, table.Resolve("Authorised"))
	assert.Equal(t, domain.StatusDeclined, table.Resolve("SomethingNew"))
	assert.Equal(t, domain.StatusDeclined, table.Resolve(""))
	assert.Equal(t, domain.TransactionStatus{Code: domain.StatusDeclined, ProviderCode: "Weird"}, table.Status("Weird"))
}

func TestErrorResponse(t *testing.T) {
	t.Run("always carries an error code", func(t *testing.T) {
		resp := domain.NewErrorResponse(domain.OriginProcessor, 422, nil, nil, nil)

		require.Len(t, resp.ErrorCodes, 1)
		assert.Equal(t, domain.DefaultErrorCode, resp.Primary())
		assert.NotNil(t, resp.ProviderErrors)
	})

	t.Run("is found through wrapping", func(t *testing.T) {
		resp := domain.NewErrorResponse(domain.OriginProxy, 401, []domain.ErrorCode{
			{Category: domain.CategoryProxyError, Code: domain.ErrorProxyUnauthenticated},
		}, nil, nil)
		err := fmt.Errorf("charge failed: %w", resp)

		got, ok := domain.IsErrorResponse(err)

		require.True(t, ok)
		assert.Equal(t, domain.OriginProxy, got.Origin)
		assert.Contains(t, err.Error(), "basis_theory_error/bt_unauthenticated")
	})

	t.Run("serializes canonical shape only", func(t *testing.T) {
		resp := domain.NewErrorResponse(domain.OriginProcessor, 422, []domain.ErrorCode{
			{Category: domain.CategoryPaymentMethodError, Code: domain.ErrorExpiredCard},
		}, []string{"Expired Card"}, map[string]any{"resultCode": "Refused"})

		data, err := json.Marshal(resp)
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"error_codes":[{"category":"payment_method_error","code":"expired_card"}],
			"provider_errors":["Expired Card"],
			"full_provider_response":{"resultCode":"Refused"}
		}`, string(data))
	})
}

func TestTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("dispatch: %w", &domain.TransportError{Provider: domain.ProviderAdyen, Op: "send", Err: cause})

	tErr, ok := domain.IsTransportError(err)

	require.True(t, ok)
	assert.Equal(t, domain.ProviderAdyen, tErr.Provider)
	assert.ErrorIs(t, err, cause)
	_, isDecline := domain.IsErrorResponse(err)
	assert.False(t, isDecline)
}
