package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type BillingIntentState string

const (
	// BillingIntentPending is written before the payment gateway is called.
	BillingIntentPending BillingIntentState = "PENDING"
	// BillingIntentExternalCreated means the boleto exists at the gateway but the
	// freight update did not commit. Operators reconcile these manually.
	BillingIntentExternalCreated BillingIntentState = "EXTERNAL_CREATED"
	BillingIntentCommitted       BillingIntentState = "COMMITTED"
	BillingIntentFailed          BillingIntentState = "FAILED"
)

// BillingIntent records a boleto emission attempt.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (state-index): state
type BillingIntent struct {
	ID         string             `json:"id"`
	FreightID  string             `json:"freight_id"`
	Amount     decimal.Decimal    `json:"amount"`
	DueDate    time.Time          `json:"due_date"`
	State      BillingIntentState `json:"state"`
	ExternalID string             `json:"external_id,omitempty"`
	BoletoURL  string             `json:"boleto_url,omitempty"`
	Error      string             `json:"error,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}
