package repository

import (
	"context"

	"eagles_transportes/internal/domain/entities"
	"eagles_transportes/internal/usecase/interfaces"
)

const freightsBoletoIDIndex = "boleto_id-index"

type freightItem struct {
	ID               string   `dynamodbav:"id"`
	ClientID         string   `dynamodbav:"client_id"`
	DriverID         string   `dynamodbav:"driver_id,omitempty"`
	Origin           string   `dynamodbav:"origin"`
	Destination      string   `dynamodbav:"destination"`
	PickupDate       string   `dynamodbav:"pickup_date"`
	DeliveryDate     string   `dynamodbav:"delivery_date"`
	DriverAmount     string   `dynamodbav:"valor_motorista"`
	ClientAmount     string   `dynamodbav:"valor_cliente"`
	Status           string   `dynamodbav:"status"`
	Observation      string   `dynamodbav:"observation,omitempty"`
	CTENumber        string   `dynamodbav:"cte_number,omitempty"`
	RejectionReason  string   `dynamodbav:"rejection_reason,omitempty"`
	AcceptedAt       string   `dynamodbav:"accepted_at,omitempty"`
	DeliveredAt      string   `dynamodbav:"delivered_at,omitempty"`
	DeliveryEvidence []string `dynamodbav:"delivery_photos,omitempty"`
	BillingStatus    string   `dynamodbav:"billing_status"`
	BoletoID         string   `dynamodbav:"boleto_id,omitempty"`
	BoletoURL        string   `dynamodbav:"boleto_url,omitempty"`
	BoletoDueDate    string   `dynamodbav:"boleto_expiry_date,omitempty"`
	CreatedAt        string   `dynamodbav:"created_at"`
	UpdatedAt        string   `dynamodbav:"updated_at"`
}

// FreightDynamoRepository persists Freight entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: boleto_id-index (PK: boleto_id), used by webhook lookups
//
// Find scans the table and evaluates FreightQuery.Matches in memory, so every
// caller (dashboard, drill-down, billing lists) shares one definition of each
// predicate. Only the boleto lookup is pushed down to the index.

type FreightDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IFreightRepository = (*FreightDynamoRepository)(nil)

func NewFreightDynamoRepository(ddb DynamoAPI, tableName string) *FreightDynamoRepository {
	return &FreightDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *FreightDynamoRepository) Create(ctx context.Context, f entities.Freight) (entities.Freight, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toFreightItem(f)); err != nil {
		return entities.Freight{}, err
	}
	return f, nil
}

func (r *FreightDynamoRepository) GetByID(ctx context.Context, id string) (entities.Freight, error) {
	it, found, err := getItem[freightItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.Freight{}, err
	}
	return fromFreightItem(it), nil
}

// Update replaces the stored freight. A zero Freight is returned when the id does not exist.
func (r *FreightDynamoRepository) Update(ctx context.Context, f entities.Freight) (entities.Freight, error) {
	ok, err := putExisting(ctx, r.ddb, r.tableName, toFreightItem(f))
	if err != nil || !ok {
		return entities.Freight{}, err
	}
	return f, nil
}

func (r *FreightDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteExisting(ctx, r.ddb, r.tableName, id)
}

func (r *FreightDynamoRepository) Find(ctx context.Context, q entities.FreightQuery) ([]entities.Freight, error) {
	var (
		items []freightItem
		err   error
	)
	if q.BoletoID != "" {
		items, err = queryIndex[freightItem](ctx, r.ddb, r.tableName, freightsBoletoIDIndex, "boleto_id", q.BoletoID)
	} else {
		items, err = scanAll[freightItem](ctx, r.ddb, r.tableName)
	}
	if err != nil {
		return nil, err
	}

	all := make([]entities.Freight, 0, len(items))
	for _, it := range items {
		all = append(all, fromFreightItem(it))
	}
	return q.Apply(all), nil
}

func toFreightItem(f entities.Freight) freightItem {
	return freightItem{
		ID:               f.ID,
		ClientID:         f.ClientID,
		DriverID:         f.DriverID,
		Origin:           f.Origin,
		Destination:      f.Destination,
		PickupDate:       formatTime(f.PickupDate),
		DeliveryDate:     formatTime(f.DeliveryDate),
		DriverAmount:     decimalToString(f.DriverAmount),
		ClientAmount:     decimalToString(f.ClientAmount),
		Status:           string(f.Status),
		Observation:      f.Observation,
		CTENumber:        f.CTENumber,
		RejectionReason:  f.RejectionReason,
		AcceptedAt:       formatTimePtr(f.AcceptedAt),
		DeliveredAt:      formatTimePtr(f.DeliveredAt),
		DeliveryEvidence: f.DeliveryEvidence,
		BillingStatus:    string(f.BillingStatus),
		BoletoID:         f.BoletoID,
		BoletoURL:        f.BoletoURL,
		BoletoDueDate:    formatTimePtr(f.BoletoDueDate),
		CreatedAt:        formatTime(f.CreatedAt),
		UpdatedAt:        formatTime(f.UpdatedAt),
	}
}

func fromFreightItem(it freightItem) entities.Freight {
	billing := entities.BillingStatus(it.BillingStatus)
	if billing == "" {
		billing = entities.BillingStatusPending
	}
	return entities.Freight{
		ID:               it.ID,
		ClientID:         it.ClientID,
		DriverID:         it.DriverID,
		Origin:           it.Origin,
		Destination:      it.Destination,
		PickupDate:       parseTime(it.PickupDate),
		DeliveryDate:     parseTime(it.DeliveryDate),
		DriverAmount:     parseDecimal(it.DriverAmount),
		ClientAmount:     parseDecimal(it.ClientAmount),
		Status:           entities.FreightStatus(it.Status),
		Observation:      it.Observation,
		CTENumber:        it.CTENumber,
		RejectionReason:  it.RejectionReason,
		AcceptedAt:       parseTimePtr(it.AcceptedAt),
		DeliveredAt:      parseTimePtr(it.DeliveredAt),
		DeliveryEvidence: it.DeliveryEvidence,
		BillingStatus:    billing,
		BoletoID:         it.BoletoID,
		BoletoURL:        it.BoletoURL,
		BoletoDueDate:    parseTimePtr(it.BoletoDueDate),
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
