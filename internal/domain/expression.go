package domain

import (
	"encoding/json"
	"fmt"
)

// CardField is a JSON path into a tokenized card record held by the proxy.
type CardField string

const (
	CardNumber          CardField = "$.data.number"
	CardExpirationMonth CardField = "$.data.expiration_month"
	CardExpirationYear  CardField = "$.data.expiration_year"
	CardCVC             CardField = "$.data.cvc"
)

// TokenExpression is a placeholder the tokenization proxy replaces with the
// referenced card field before forwarding a request. Card data never passes
// through this process; only the expression does.
type TokenExpression struct {
	Intent bool
	ID     string
	Field  CardField
}

func NewTokenExpression(source Source, field CardField) TokenExpression {
	return TokenExpression{
		Intent: source.Type == SourceTypeTokenIntent,
		ID:     source.ID,
		Field:  field,
	}
}

func (e TokenExpression) String() string {
	kind := "token"
	if e.Intent {
		kind = "token_intent"
	}
	return fmt.Sprintf("{{ %s: %s | json: '%s'}}", kind, e.ID, e.Field)
}

func (e TokenExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}
