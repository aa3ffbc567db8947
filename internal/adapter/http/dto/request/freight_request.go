package request

import (
	"strings"

	"github.com/shopspring/decimal"

	"eagles_transportes/internal/usecase"
)

// FreightRequest is the create/update payload. Amounts accept JSON numbers or strings.
type FreightRequest struct {
	ClientID     string          `json:"client_id" binding:"required"`
	Origin       string          `json:"origin" binding:"required"`
	Destination  string          `json:"destination" binding:"required"`
	PickupDate   string          `json:"pickup_date" binding:"required"`
	DeliveryDate string          `json:"delivery_date" binding:"required"`
	DriverAmount decimal.Decimal `json:"valor_motorista"`
	ClientAmount decimal.Decimal `json:"valor_cliente"`
	Status       string          `json:"status"`
	Observation  string          `json:"observation"`
	CTENumber    string          `json:"cte_number"`
}

func (r FreightRequest) ToInput() (usecase.FreightInput, error) {
	pickup, err := ParseDate(r.PickupDate)
	if err != nil {
		return usecase.FreightInput{}, err
	}
	delivery, err := ParseDate(r.DeliveryDate)
	if err != nil {
		return usecase.FreightInput{}, err
	}
	return usecase.FreightInput{
		ClientID:     strings.TrimSpace(r.ClientID),
		Origin:       r.Origin,
		Destination:  r.Destination,
		PickupDate:   pickup,
		DeliveryDate: delivery,
		DriverAmount: r.DriverAmount,
		ClientAmount: r.ClientAmount,
		Status:       strings.TrimSpace(r.Status),
		Observation:  r.Observation,
		CTENumber:    r.CTENumber,
	}, nil
}

type RejectFreightRequest struct {
	Reason string `json:"reason"`
}

// StatusRequest carries a raw status. The query parameter form (?status=) is also accepted.
type StatusRequest struct {
	Status string `json:"status"`
}
