package repository

import (
	"context"
	"sort"

	"eagles_transportes/internal/domain/entities"
	"eagles_transportes/internal/usecase/interfaces"
)

const clientsTaxIDIndex = "tax_id-index"

type clientItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	TaxID        string `dynamodbav:"tax_id"`
	Email        string `dynamodbav:"email,omitempty"`
	Phone        string `dynamodbav:"phone,omitempty"`
	PostalCode   string `dynamodbav:"cep,omitempty"`
	Street       string `dynamodbav:"street,omitempty"`
	Number       string `dynamodbav:"number,omitempty"`
	Complement   string `dynamodbav:"complement,omitempty"`
	Neighborhood string `dynamodbav:"neighborhood,omitempty"`
	City         string `dynamodbav:"city,omitempty"`
	State        string `dynamodbav:"state,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// ClientDynamoRepository persists Client entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tax_id-index (PK: tax_id)

type ClientDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb DynamoAPI, tableName string) *ClientDynamoRepository {
	return &ClientDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toClientItem(c)); err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	it, found, err := getItem[clientItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) GetByTaxID(ctx context.Context, taxID string) (entities.Client, error) {
	items, err := queryIndex[clientItem](ctx, r.ddb, r.tableName, clientsTaxIDIndex, "tax_id", taxID)
	if err != nil || len(items) == 0 {
		return entities.Client{}, err
	}
	return fromClientItem(items[0]), nil
}

// List returns clients ordered by name.
func (r *ClientDynamoRepository) List(ctx context.Context, offset, limit int) ([]entities.Client, error) {
	items, err := scanAll[clientItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Client, 0, len(items))
	for _, it := range items {
		out = append(out, fromClientItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return page(out, offset, limit), nil
}

func (r *ClientDynamoRepository) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	ok, err := putExisting(ctx, r.ddb, r.tableName, toClientItem(c))
	if err != nil || !ok {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteExisting(ctx, r.ddb, r.tableName, id)
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:           c.ID,
		Name:         c.Name,
		TaxID:        c.TaxID,
		Email:        c.Email,
		Phone:        c.Phone,
		PostalCode:   c.Address.PostalCode,
		Street:       c.Address.Street,
		Number:       c.Address.Number,
		Complement:   c.Address.Complement,
		Neighborhood: c.Address.Neighborhood,
		City:         c.Address.City,
		State:        c.Address.State,
		CreatedAt:    formatTime(c.CreatedAt),
		UpdatedAt:    formatTime(c.UpdatedAt),
	}
}

func fromClientItem(it clientItem) entities.Client {
	return entities.Client{
		ID:    it.ID,
		Name:  it.Name,
		TaxID: it.TaxID,
		Email: it.Email,
		Phone: it.Phone,
		Address: entities.Address{
			PostalCode:   it.PostalCode,
			Street:       it.Street,
			Number:       it.Number,
			Complement:   it.Complement,
			Neighborhood: it.Neighborhood,
			City:         it.City,
			State:        it.State,
		},
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
