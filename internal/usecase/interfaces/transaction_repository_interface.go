package interfaces

import (
	"context"
	"time"

	"eagles_transportes/internal/domain/entities"
)

// TransactionFilter narrows financial transaction listings.
// Empty fields are ignored; From is inclusive and Before exclusive.
type TransactionFilter struct {
	Type   entities.TransactionType
	Status entities.TransactionStatus
	From   time.Time
	Before time.Time
	Offset int
	Limit  int
}

// ITransactionRepository abstracts DynamoDB persistence for FinancialTransaction.
//
// Table requirements:
//   - PK: id
//   - GSI: related_freight_id-index

type ITransactionRepository interface {
	Create(ctx context.Context, t entities.FinancialTransaction) (entities.FinancialTransaction, error)
	GetByID(ctx context.Context, id string) (entities.FinancialTransaction, error)
	GetByFreightID(ctx context.Context, freightID string) (entities.FinancialTransaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]entities.FinancialTransaction, error)
	Update(ctx context.Context, t entities.FinancialTransaction) (entities.FinancialTransaction, error)
	Delete(ctx context.Context, id string) (bool, error)
}
