package interfaces

import (
	"context"

	"eagles_transportes/internal/domain/entities"
)

type IDriverRepository interface {
	Create(ctx context.Context, d entities.Driver) (entities.Driver, error)
	GetByID(ctx context.Context, id string) (entities.Driver, error)
	GetByTaxID(ctx context.Context, taxID string) (entities.Driver, error)
	List(ctx context.Context, offset, limit int) ([]entities.Driver, error)
	ListAll(ctx context.Context) ([]entities.Driver, error)
	Update(ctx context.Context, d entities.Driver) (entities.Driver, error)
	Delete(ctx context.Context, id string) (bool, error)
}
