package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// FreightStatus is the physical lifecycle of a freight.
//
// Lifecycle: QUOTED -> RECRUITING -> ASSIGNED -> LOADING -> IN_TRANSIT -> DELIVERED,
// with REJECTED reachable from any pre-delivery state. Manual corrections may store
// any string through a RawOverride, so values outside the constants below can exist.
type FreightStatus string

const (
	FreightStatusQuoted     FreightStatus = "QUOTED"
	FreightStatusRecruiting FreightStatus = "RECRUITING"
	FreightStatusAssigned   FreightStatus = "ASSIGNED"
	FreightStatusLoading    FreightStatus = "LOADING"
	FreightStatusInTransit  FreightStatus = "IN_TRANSIT"
	FreightStatusDelivered  FreightStatus = "DELIVERED"
	FreightStatusRejected   FreightStatus = "REJECTED"
)

// ActiveFreightStatuses are the statuses counted as "in operation" by the dashboard.
var ActiveFreightStatuses = []FreightStatus{
	FreightStatusRecruiting,
	FreightStatusAssigned,
	FreightStatusInTransit,
	FreightStatusLoading,
}

// IsActive reports whether s is one of ActiveFreightStatuses.
func (s FreightStatus) IsActive() bool {
	for _, a := range ActiveFreightStatuses {
		if s == a {
			return true
		}
	}
	return false
}

// BillingStatus is the payment lifecycle of a freight, independent of delivery.
type BillingStatus string

const (
	BillingStatusPending   BillingStatus = "PENDING"
	BillingStatusIssued    BillingStatus = "ISSUED"
	BillingStatusPaid      BillingStatus = "PAID"
	BillingStatusOverdue   BillingStatus = "OVERDUE"
	BillingStatusCancelled BillingStatus = "CANCELLED"
)

// MinDeliveryEvidence is the minimum number of proof files required to deliver.
const MinDeliveryEvidence = 3

// Freight is a single shipment job.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Invariants kept by Apply:
//   - AcceptedAt is set once the freight has been accepted (ASSIGNED).
//   - DeliveredAt and DeliveryEvidence are set only while Status == DELIVERED.
//   - RejectionReason is set only while Status == REJECTED.
type Freight struct {
	ID       string `json:"id"`
	ClientID string `json:"client_id"`
	DriverID string `json:"driver_id,omitempty"`

	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	PickupDate   time.Time `json:"pickup_date"`
	DeliveryDate time.Time `json:"delivery_date"`

	DriverAmount decimal.Decimal `json:"valor_motorista"`
	ClientAmount decimal.Decimal `json:"valor_cliente"`

	Status      FreightStatus `json:"status"`
	Observation string        `json:"observation,omitempty"`
	CTENumber   string        `json:"cte_number,omitempty"`

	RejectionReason  string     `json:"rejection_reason,omitempty"`
	AcceptedAt       *time.Time `json:"accepted_at,omitempty"`
	DeliveredAt      *time.Time `json:"delivered_at,omitempty"`
	DeliveryEvidence []string   `json:"delivery_photos,omitempty"`

	BillingStatus BillingStatus `json:"billing_status"`
	BoletoID      string        `json:"boleto_id,omitempty"`
	BoletoURL     string        `json:"boleto_url,omitempty"`
	BoletoDueDate *time.Time    `json:"boleto_expiry_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasDriver reports whether a driver reference is set.
func (f Freight) HasDriver() bool {
	return f.DriverID != ""
}
