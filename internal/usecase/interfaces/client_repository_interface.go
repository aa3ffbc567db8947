package interfaces

import (
	"context"

	"eagles_transportes/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.
//
// GetByTaxID backs the tax-id uniqueness rule (GSI on the normalized digits).

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	GetByTaxID(ctx context.Context, taxID string) (entities.Client, error)
	List(ctx context.Context, offset, limit int) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) (bool, error)
}
