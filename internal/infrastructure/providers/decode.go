package providers

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/DanielPopoola/payment-orchestrator/internal/domain"
	"github.com/mitchellh/mapstructure"
)

// DecodeBody maps a decoded provider body onto a response DTO tagged with json
// names. Input is weakly typed, so a code sent as 6 reads the same as "6".
func DecodeBody(provider domain.ProviderName, body map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       wholeNumbersOnly,
		WeaklyTypedInput: true,
		TagName:          "json",
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(body); err != nil {
		return &domain.TransportError{Provider: provider, Op: "decode response", Err: err}
	}
	return nil
}

// wholeNumbersOnly keeps mapstructure from truncating 10.5 into 10.
func wholeNumbersOnly(from reflect.Type, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}
	switch v := data.(type) {
	case float64:
		if v != float64(int64(v)) {
			return nil, fmt.Errorf("%v is not a whole number", v)
		}
	case json.Number:
		if _, err := v.Int64(); err != nil {
			return nil, fmt.Errorf("%s is not a whole number", v)
		}
	}
	return data, nil
}
