package response

import (
	"time"

	"github.com/shopspring/decimal"

	"eagles_transportes/internal/domain/entities"
)

type FreightResponse struct {
	ID               string          `json:"id"`
	ClientID         string          `json:"client_id"`
	DriverID         string          `json:"driver_id,omitempty"`
	Origin           string          `json:"origin"`
	Destination      string          `json:"destination"`
	PickupDate       time.Time       `json:"pickup_date"`
	DeliveryDate     time.Time       `json:"delivery_date"`
	DriverAmount     decimal.Decimal `json:"valor_motorista"`
	ClientAmount     decimal.Decimal `json:"valor_cliente"`
	Status           string          `json:"status"`
	Observation      string          `json:"observation,omitempty"`
	CTENumber        string          `json:"cte_number,omitempty"`
	RejectionReason  string          `json:"rejection_reason,omitempty"`
	AcceptedAt       *time.Time      `json:"accepted_at,omitempty"`
	DeliveredAt      *time.Time      `json:"delivered_at,omitempty"`
	DeliveryPhotos   []string        `json:"delivery_photos"`
	BillingStatus    string          `json:"billing_status"`
	BoletoID         string          `json:"boleto_id,omitempty"`
	BoletoURL        string          `json:"boleto_url,omitempty"`
	BoletoExpiryDate *time.Time      `json:"boleto_expiry_date,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func FromFreight(f entities.Freight) FreightResponse {
	photos := f.DeliveryEvidence
	if photos == nil {
		photos = []string{}
	}
	return FreightResponse{
		ID:               f.ID,
		ClientID:         f.ClientID,
		DriverID:         f.DriverID,
		Origin:           f.Origin,
		Destination:      f.Destination,
		PickupDate:       f.PickupDate,
		DeliveryDate:     f.DeliveryDate,
		DriverAmount:     f.DriverAmount,
		ClientAmount:     f.ClientAmount,
		Status:           string(f.Status),
		Observation:      f.Observation,
		CTENumber:        f.CTENumber,
		RejectionReason:  f.RejectionReason,
		AcceptedAt:       f.AcceptedAt,
		DeliveredAt:      f.DeliveredAt,
		DeliveryPhotos:   photos,
		BillingStatus:    string(f.BillingStatus),
		BoletoID:         f.BoletoID,
		BoletoURL:        f.BoletoURL,
		BoletoExpiryDate: f.BoletoDueDate,
		CreatedAt:        f.CreatedAt,
		UpdatedAt:        f.UpdatedAt,
	}
}

func FromFreights(list []entities.Freight) []FreightResponse {
	out := make([]FreightResponse, 0, len(list))
	for _, f := range list {
		out = append(out, FromFreight(f))
	}
	return out
}

type MessageResponse struct {
	Message string `json:"message"`
}

type DeliveryResponse struct {
	Message string          `json:"message"`
	Photos  []string        `json:"photos"`
	Freight FreightResponse `json:"freight"`
}
