package interfaces

import (
	"context"
	"time"

	"eagles_transportes/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// External payment statuses, normalized by the gateway adapter.
const (
	ExternalStatusPending   = "PENDING"
	ExternalStatusReceived  = "RECEIVED"
	ExternalStatusConfirmed = "CONFIRMED"
	ExternalStatusOverdue   = "OVERDUE"
	ExternalStatusRefunded  = "REFUNDED"
)

// BoletoRequest describes a bank slip to be issued.
type BoletoRequest struct {
	CustomerID        string
	Payer             entities.Client
	Amount            decimal.Decimal
	DueDate           time.Time
	Description       string
	ExternalReference string
}

// Boleto is the gateway's answer to a successful issuance.
type Boleto struct {
	ExternalID string
	SlipURL    string
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The billing use case uses it to register the payer, issue a boleto and poll its
// status. Statuses are returned using the ExternalStatus* constants.
type IPaymentGateway interface {
	FindOrCreateCustomer(ctx context.Context, client entities.Client) (string, error)
	CreateBoleto(ctx context.Context, req BoletoRequest) (Boleto, error)
	GetPaymentStatus(ctx context.Context, externalID string) (string, error)
}
