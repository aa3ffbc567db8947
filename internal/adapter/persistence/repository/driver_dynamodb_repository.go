package repository

import (
	"context"
	"sort"

	"eagles_transportes/internal/domain/entities"
	"eagles_transportes/internal/usecase/interfaces"
)

const driversTaxIDIndex = "tax_id-index"

type driverItem struct {
	ID               string `dynamodbav:"id"`
	Name             string `dynamodbav:"name"`
	Phone            string `dynamodbav:"phone,omitempty"`
	TaxID            string `dynamodbav:"tax_id"`
	ANTT             string `dynamodbav:"antt,omitempty"`
	VehiclePlate     string `dynamodbav:"vehicle_plate,omitempty"`
	VehicleType      string `dynamodbav:"vehicle_type,omitempty"`
	Status           string `dynamodbav:"status"`
	PixKey           string `dynamodbav:"pix_key,omitempty"`
	CNHPath          string `dynamodbav:"cnh_path,omitempty"`
	AddressProofPath string `dynamodbav:"address_proof_path,omitempty"`
	CRLVPath         string `dynamodbav:"crlv_path,omitempty"`
}

// DriverDynamoRepository persists Driver entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tax_id-index (PK: tax_id)

type DriverDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IDriverRepository = (*DriverDynamoRepository)(nil)

func NewDriverDynamoRepository(ddb DynamoAPI, tableName string) *DriverDynamoRepository {
	return &DriverDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *DriverDynamoRepository) Create(ctx context.Context, d entities.Driver) (entities.Driver, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toDriverItem(d)); err != nil {
		return entities.Driver{}, err
	}
	return d, nil
}

func (r *DriverDynamoRepository) GetByID(ctx context.Context, id string) (entities.Driver, error) {
	it, found, err := getItem[driverItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.Driver{}, err
	}
	return fromDriverItem(it), nil
}

func (r *DriverDynamoRepository) GetByTaxID(ctx context.Context, taxID string) (entities.Driver, error) {
	items, err := queryIndex[driverItem](ctx, r.ddb, r.tableName, driversTaxIDIndex, "tax_id", taxID)
	if err != nil || len(items) == 0 {
		return entities.Driver{}, err
	}
	return fromDriverItem(items[0]), nil
}

func (r *DriverDynamoRepository) List(ctx context.Context, offset, limit int) ([]entities.Driver, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return page(all, offset, limit), nil
}

// ListAll returns every driver ordered by name.
func (r *DriverDynamoRepository) ListAll(ctx context.Context) ([]entities.Driver, error) {
	items, err := scanAll[driverItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Driver, 0, len(items))
	for _, it := range items {
		out = append(out, fromDriverItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *DriverDynamoRepository) Update(ctx context.Context, d entities.Driver) (entities.Driver, error) {
	ok, err := putExisting(ctx, r.ddb, r.tableName, toDriverItem(d))
	if err != nil || !ok {
		return entities.Driver{}, err
	}
	return d, nil
}

func (r *DriverDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteExisting(ctx, r.ddb, r.tableName, id)
}

func toDriverItem(d entities.Driver) driverItem {
	return driverItem{
		ID:               d.ID,
		Name:             d.Name,
		Phone:            d.Phone,
		TaxID:            d.TaxID,
		ANTT:             d.ANTT,
		VehiclePlate:     d.VehiclePlate,
		VehicleType:      d.VehicleType,
		Status:           string(d.Status),
		PixKey:           d.PixKey,
		CNHPath:          d.Documents.CNH,
		AddressProofPath: d.Documents.AddressProof,
		CRLVPath:         d.Documents.CRLV,
	}
}

func fromDriverItem(it driverItem) entities.Driver {
	return entities.Driver{
		ID:           it.ID,
		Name:         it.Name,
		Phone:        it.Phone,
		TaxID:        it.TaxID,
		ANTT:         it.ANTT,
		VehiclePlate: it.VehiclePlate,
		VehicleType:  it.VehicleType,
		Status:       entities.DriverStatus(it.Status),
		PixKey:       it.PixKey,
		Documents: entities.DriverDocuments{
			CNH:          it.CNHPath,
			AddressProof: it.AddressProofPath,
			CRLV:         it.CRLVPath,
		},
	}
}
