package response

import (
	"time"

	"github.com/shopspring/decimal"

	"eagles_transportes/internal/domain/entities"
)

type EmitBoletoResponse struct {
	Success   bool            `json:"success"`
	BoletoID  string          `json:"boleto_id"`
	BoletoURL string          `json:"boleto_url"`
	Freight   FreightResponse `json:"freight"`
}

func FromEmittedFreight(f entities.Freight) EmitBoletoResponse {
	return EmitBoletoResponse{
		Success:   true,
		BoletoID:  f.BoletoID,
		BoletoURL: f.BoletoURL,
		Freight:   FromFreight(f),
	}
}

type WebhookResponse struct {
	Received bool `json:"received"`
	Applied  bool `json:"applied"`
}

type SyncResponse struct {
	Updated int `json:"updated"`
}

type BillingIntentResponse struct {
	ID         string          `json:"id"`
	FreightID  string          `json:"freight_id"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    time.Time       `json:"due_date"`
	State      string          `json:"state"`
	ExternalID string          `json:"external_id,omitempty"`
	BoletoURL  string          `json:"boleto_url,omitempty"`
	Error      string          `json:"error,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func FromBillingIntents(list []entities.BillingIntent) []BillingIntentResponse {
	out := make([]BillingIntentResponse, 0, len(list))
	for _, i := range list {
		out = append(out, BillingIntentResponse{
			ID:         i.ID,
			FreightID:  i.FreightID,
			Amount:     i.Amount,
			DueDate:    i.DueDate,
			State:      string(i.State),
			ExternalID: i.ExternalID,
			BoletoURL:  i.BoletoURL,
			Error:      i.Error,
			CreatedAt:  i.CreatedAt,
			UpdatedAt:  i.UpdatedAt,
		})
	}
	return out
}
