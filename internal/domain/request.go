package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator"
	"github.com/mitchellh/mapstructure"
)

type rawAmount struct {
	Value    *int64 `mapstructure:"value" validate:"required"`
	Currency string `mapstructure:"currency"`
}

type rawSource struct {
	Type              string `mapstructure:"type" validate:"required,oneof=basis_theory_token basis_theory_token_intent processor_token"`
	ID                string `mapstructure:"id" validate:"required"`
	StoreWithProvider bool   `mapstructure:"store_with_provider"`
	HolderName        string `mapstructure:"holder_name"`
}

type rawAddress struct {
	AddressLine1 string `mapstructure:"address_line1"`
	AddressLine2 string `mapstructure:"address_line2"`
	City         string `mapstructure:"city"`
	State        string `mapstructure:"state"`
	Zip          string `mapstructure:"zip"`
	Country      string `mapstructure:"country"`
}

type rawCustomer struct {
	Reference string      `mapstructure:"reference"`
	FirstName string      `mapstructure:"first_name"`
	LastName  string      `mapstructure:"last_name"`
	Email     string      `mapstructure:"email" validate:"omitempty,email"`
	Address   *rawAddress `mapstructure:"address"`
}

type rawStatementDescription struct {
	Name string `mapstructure:"name"`
	City string `mapstructure:"city"`
}

type rawThreeDS struct {
	ECI                 string `mapstructure:"eci"`
	AuthenticationValue string `mapstructure:"authentication_value"`
	XID                 string `mapstructure:"xid"`
	Version             string `mapstructure:"version"`
}

type rawTransactionRequest struct {
	Amount                     *rawAmount               `mapstructure:"amount" validate:"required"`
	Source                     *rawSource               `mapstructure:"source" validate:"required"`
	Reference                  string                   `mapstructure:"reference"`
	MerchantInitiated          bool                     `mapstructure:"merchant_initiated"`
	Type                       string                   `mapstructure:"type" validate:"omitempty,oneof=ONE_TIME CARD_ON_FILE SUBSCRIPTION UNSCHEDULED"`
	Customer                   *rawCustomer             `mapstructure:"customer"`
	StatementDescription       *rawStatementDescription `mapstructure:"statement_description"`
	ThreeDS                    *rawThreeDS              `mapstructure:"3ds"`
	Metadata                   map[string]any           `mapstructure:"metadata"`
	OverrideProviderProperties map[string]any           `mapstructure:"override_provider_properties"`
}

type rawRefundRequest struct {
	Reference string         `mapstructure:"reference"`
	Amount    *rawAmount     `mapstructure:"amount"`
	Metadata  map[string]any `mapstructure:"metadata"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// ParseTransactionRequest decodes a JSON document into a validated request.
func ParseTransactionRequest(data []byte) (*TransactionRequest, error) {
	raw, err := decodeJSONObject(data)
	if err != nil {
		return nil, err
	}
	return NewTransactionRequest(raw)
}

// NewTransactionRequest validates a caller-supplied structure and fills defaults.
// Unknown fields are ignored.
func NewTransactionRequest(raw map[string]any) (*TransactionRequest, error) {
	var in rawTransactionRequest
	if err := decode(raw, &in); err != nil {
		return nil, err
	}
	if err := validateStruct(&in); err != nil {
		return nil, err
	}

	amount, err := NewAmount(*in.Amount.Value, in.Amount.Currency)
	if err != nil {
		return nil, err
	}

	req := &TransactionRequest{
		Amount: amount,
		Source: Source{
			Type:              SourceType(in.Source.Type),
			ID:                in.Source.ID,
			StoreWithProvider: in.Source.StoreWithProvider,
			HolderName:        in.Source.HolderName,
		},
		Reference:                  in.Reference,
		MerchantInitiated:          in.MerchantInitiated,
		Type:                       RecurringType(in.Type),
		Metadata:                   in.Metadata,
		OverrideProviderProperties: in.OverrideProviderProperties,
	}

	if c := in.Customer; c != nil {
		req.Customer = &Customer{
			Reference: c.Reference,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
		}
		if a := c.Address; a != nil {
			req.Customer.Address = &Address{
				AddressLine1: a.AddressLine1,
				AddressLine2: a.AddressLine2,
				City:         a.City,
				State:        a.State,
				Zip:          a.Zip,
				Country:      a.Country,
			}
		}
	}
	if s := in.StatementDescription; s != nil {
		req.StatementDescription = &StatementDescription{Name: s.Name, City: s.City}
	}
	if t := in.ThreeDS; t != nil {
		req.ThreeDS = &ThreeDS{
			ECI:                 t.ECI,
			AuthenticationValue: t.AuthenticationValue,
			XID:                 t.XID,
			Version:             t.Version,
		}
	}

	return req, nil
}

func ParseRefundRequest(data []byte) (*RefundRequest, error) {
	raw, err := decodeJSONObject(data)
	if err != nil {
		return nil, err
	}
	return NewRefundRequest(raw)
}

// NewRefundRequest validates a refund. A missing amount means a full refund
// where the provider supports it.
func NewRefundRequest(raw map[string]any) (*RefundRequest, error) {
	var in rawRefundRequest
	if err := decode(raw, &in); err != nil {
		return nil, err
	}
	if err := validateStruct(&in); err != nil {
		return nil, err
	}

	req := &RefundRequest{
		Reference: in.Reference,
		Metadata:  in.Metadata,
	}
	if in.Amount != nil {
		amount, err := NewAmount(*in.Amount.Value, in.Amount.Currency)
		if err != nil {
			return nil, err
		}
		req.Amount = &amount
	}
	return req, nil
}

func decodeJSONObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, NewMalformedRequestError(err)
	}
	if raw == nil {
		return nil, NewMalformedRequestError(errors.New("request body must be a JSON object"))
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, NewMalformedRequestError(errors.New("unexpected data after JSON object"))
	}
	return raw, nil
}

func decode(raw map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: rejectFractionalNumbers,
		Result:     out,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return NewMalformedRequestError(err)
	}
	return nil
}

// rejectFractionalNumbers keeps mapstructure from truncating 10.5 into 10.
func rejectFractionalNumbers(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int64 {
		return data, nil
	}
	switch v := data.(type) {
	case float64:
		if v != float64(int64(v)) {
			return nil, fmt.Errorf("%v is not a whole number of minor units", v)
		}
	case json.Number:
		if _, err := v.Int64(); err != nil {
			return nil, fmt.Errorf("%s is not a whole number of minor units", v)
		}
	}
	return data, nil
}

func validateStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return NewMalformedRequestError(err)
	}

	fe := fieldErrs[0]
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return NewMissingRequiredFieldError(field)
	case "oneof":
		return NewInvalidFieldError(field, fmt.Sprintf("must be one of [%s]", fe.Param()))
	case "email":
		return NewInvalidFieldError(field, "must be an email address")
	default:
		return NewInvalidFieldError(field, fe.Tag())
	}
}
