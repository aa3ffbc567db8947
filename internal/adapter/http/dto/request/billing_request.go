package request

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"eagles_transportes/internal/usecase"
)

// EmitBoletoRequest is optional: a missing value falls back to the freight's client
// amount and a missing due date to three days from now.
type EmitBoletoRequest struct {
	Value       decimal.Decimal `json:"value"`
	DueDate     string          `json:"due_date"`
	Description string          `json:"description"`
}

func (r EmitBoletoRequest) ToInput() (usecase.EmitInput, error) {
	due, err := parseOptionalDate(r.DueDate)
	if err != nil {
		return usecase.EmitInput{}, err
	}
	return usecase.EmitInput{
		Value:       r.Value,
		DueDate:     due,
		Description: r.Description,
	}, nil
}

// WebhookRequest is the payment notification sent by the gateway.
type WebhookRequest struct {
	Event   string         `json:"event"`
	Payment WebhookPayment `json:"payment"`
}

type WebhookPayment struct {
	ID PaymentID `json:"id" swaggertype:"string"`
}

// PaymentID accepts the id as a JSON string or number; Mercado Pago sends numbers.
type PaymentID string

func (id *PaymentID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = PaymentID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("payment id must be a string or number: %w", err)
	}
	*id = PaymentID(n.String())
	return nil
}
