package repository

import (
	"context"
	"sort"

	"eagles_transportes/internal/domain/entities"
	"eagles_transportes/internal/usecase/interfaces"
)

const transactionsFreightIndex = "related_freight_id-index"

type transactionItem struct {
	ID               string `dynamodbav:"id"`
	Type             string `dynamodbav:"type"`
	Category         string `dynamodbav:"category,omitempty"`
	Description      string `dynamodbav:"description,omitempty"`
	Amount           string `dynamodbav:"amount"`
	Date             string `dynamodbav:"date"`
	Status           string `dynamodbav:"status"`
	RelatedFreightID string `dynamodbav:"related_freight_id,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// TransactionDynamoRepository persists FinancialTransaction entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: related_freight_id-index (PK: related_freight_id)

type TransactionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb DynamoAPI, tableName string) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, t entities.FinancialTransaction) (entities.FinancialTransaction, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toTransactionItem(t)); err != nil {
		return entities.FinancialTransaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.FinancialTransaction, error) {
	it, found, err := getItem[transactionItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.FinancialTransaction{}, err
	}
	return fromTransactionItem(it), nil
}

// GetByFreightID returns the most recent transaction linked to the freight.
func (r *TransactionDynamoRepository) GetByFreightID(ctx context.Context, freightID string) (entities.FinancialTransaction, error) {
	items, err := queryIndex[transactionItem](ctx, r.ddb, r.tableName, transactionsFreightIndex, "related_freight_id", freightID)
	if err != nil || len(items) == 0 {
		return entities.FinancialTransaction{}, err
	}
	latest := fromTransactionItem(items[0])
	for _, it := range items[1:] {
		t := fromTransactionItem(it)
		if t.CreatedAt.After(latest.CreatedAt) {
			latest = t
		}
	}
	return latest, nil
}

// List returns the filtered transactions, newest date first.
func (r *TransactionDynamoRepository) List(ctx context.Context, filter interfaces.TransactionFilter) ([]entities.FinancialTransaction, error) {
	items, err := scanAll[transactionItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.FinancialTransaction, 0, len(items))
	for _, it := range items {
		t := fromTransactionItem(it)
		if matchesTransaction(t, filter) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID < out[j].ID
		}
		return out[i].Date.After(out[j].Date)
	})
	return page(out, filter.Offset, filter.Limit), nil
}

func (r *TransactionDynamoRepository) Update(ctx context.Context, t entities.FinancialTransaction) (entities.FinancialTransaction, error) {
	ok, err := putExisting(ctx, r.ddb, r.tableName, toTransactionItem(t))
	if err != nil || !ok {
		return entities.FinancialTransaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteExisting(ctx, r.ddb, r.tableName, id)
}

func matchesTransaction(t entities.FinancialTransaction, f interfaces.TransactionFilter) bool {
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if !f.From.IsZero() && t.Date.Before(f.From) {
		return false
	}
	if !f.Before.IsZero() && !t.Date.Before(f.Before) {
		return false
	}
	return true
}

func toTransactionItem(t entities.FinancialTransaction) transactionItem {
	return transactionItem{
		ID:               t.ID,
		Type:             string(t.Type),
		Category:         t.Category,
		Description:      t.Description,
		Amount:           decimalToString(t.Amount),
		Date:             formatTime(t.Date),
		Status:           string(t.Status),
		RelatedFreightID: t.RelatedFreightID,
		CreatedAt:        formatTime(t.CreatedAt),
		UpdatedAt:        formatTime(t.UpdatedAt),
	}
}

func fromTransactionItem(it transactionItem) entities.FinancialTransaction {
	return entities.FinancialTransaction{
		ID:               it.ID,
		Type:             entities.TransactionType(it.Type),
		Category:         it.Category,
		Description:      it.Description,
		Amount:           parseDecimal(it.Amount),
		Date:             parseTime(it.Date),
		Status:           entities.TransactionStatus(it.Status),
		RelatedFreightID: it.RelatedFreightID,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
