package interfaces

import (
	"context"

	"eagles_transportes/internal/domain/entities"
)

// IBillingIntentRepository persists boleto emission attempts so that a boleto
// created at the gateway is never lost when the local commit fails.

type IBillingIntentRepository interface {
	Create(ctx context.Context, i entities.BillingIntent) (entities.BillingIntent, error)
	Update(ctx context.Context, i entities.BillingIntent) (entities.BillingIntent, error)
	ListByState(ctx context.Context, state entities.BillingIntentState) ([]entities.BillingIntent, error)
}
