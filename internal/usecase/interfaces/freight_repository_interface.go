package interfaces

import (
	"context"

	"eagles_transportes/internal/domain/entities"
)

// IFreightRepository abstracts DynamoDB persistence for Freight.
//
// Lookups return a zero-value Freight (empty ID) when the item does not exist;
// the use cases translate that into a not-found error.

type IFreightRepository interface {
	Create(ctx context.Context, f entities.Freight) (entities.Freight, error)
	GetByID(ctx context.Context, id string) (entities.Freight, error)
	Update(ctx context.Context, f entities.Freight) (entities.Freight, error)
	Delete(ctx context.Context, id string) (bool, error)
	Find(ctx context.Context, q entities.FreightQuery) ([]entities.Freight, error)
}
