package usecase

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"eagles_transportes/internal/domain/entities"
	"eagles_transportes/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultHistoryMonths = 12
	maxHistoryMonths     = 60
	uncategorized        = "Uncategorized"
)

// TransactionInput carries a new bookkeeping entry. Status defaults to PENDING
// and Date to now.
type TransactionInput struct {
	Type             string
	Category         string
	Description      string
	Amount           decimal.Decimal
	Date             time.Time
	Status           string
	RelatedFreightID string
}

// TransactionPatch updates only the fields that are set.
type TransactionPatch struct {
	Category    *string
	Description *string
	Amount      *decimal.Decimal
	Date        *time.Time
	Status      *string
}

// TransactionListFilter narrows ListTransactions; empty fields are ignored.
type TransactionListFilter struct {
	Type   string
	Status string
	Offset int
	Limit  int
}

type IFinancialUseCase interface {
	CreateTransaction(ctx context.Context, in TransactionInput) (entities.FinancialTransaction, error)
	GetTransaction(ctx context.Context, id string) (entities.FinancialTransaction, error)
	ListTransactions(ctx context.Context, filter TransactionListFilter) ([]entities.FinancialTransaction, error)
	UpdateTransaction(ctx context.Context, id string, patch TransactionPatch) (entities.FinancialTransaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	Summary(ctx context.Context, month, year int) (entities.FinancialSummary, error)
	History(ctx context.Context, months int, asOf time.Time) ([]entities.MonthlyBalance, error)
}

type FinancialUseCase struct {
	repo interfaces.ITransactionRepository
	now  func() time.Time
}

var _ IFinancialUseCase = (*FinancialUseCase)(nil)

func NewFinancialUseCase(repo interfaces.ITransactionRepository) *FinancialUseCase {
	return &FinancialUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *FinancialUseCase) CreateTransaction(ctx context.Context, in TransactionInput) (entities.FinancialTransaction, error) {
	now := u.now()
	t := entities.FinancialTransaction{
		ID:               uuid.NewString(),
		Type:             entities.TransactionType(strings.ToUpper(strings.TrimSpace(in.Type))),
		Category:         strings.TrimSpace(in.Category),
		Description:      strings.TrimSpace(in.Description),
		Amount:           in.Amount.Round(2),
		Date:             in.Date,
		Status:           entities.TransactionStatus(strings.ToUpper(strings.TrimSpace(in.Status))),
		RelatedFreightID: strings.TrimSpace(in.RelatedFreightID),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if t.Status == "" {
		t.Status = entities.TransactionStatusPending
	}
	if t.Date.IsZero() {
		t.Date = now
	}
	if err := validateTransaction(t); err != nil {
		return entities.FinancialTransaction{}, err
	}

	created, err := u.repo.Create(ctx, t)
	if err != nil {
		log.Printf("[financial][usecase] create failed type=%s err=%v", t.Type, err)
		return entities.FinancialTransaction{}, err
	}
	log.Printf("[financial][usecase] created transaction_id=%s type=%s amount=%s", created.ID, created.Type, created.Amount.String())
	return created, nil
}

func (u *FinancialUseCase) GetTransaction(ctx context.Context, id string) (entities.FinancialTransaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FinancialTransaction{}, ErrInvalidTransactionID
	}
	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.FinancialTransaction{}, err
	}
	if t.ID == "" {
		return entities.FinancialTransaction{}, ErrTransactionNotFound
	}
	return t, nil
}

func (u *FinancialUseCase) ListTransactions(ctx context.Context, filter TransactionListFilter) ([]entities.FinancialTransaction, error) {
	offset, limit := pageBounds(filter.Offset, filter.Limit)
	return u.repo.List(ctx, interfaces.TransactionFilter{
		Type:   entities.TransactionType(strings.ToUpper(strings.TrimSpace(filter.Type))),
		Status: entities.TransactionStatus(strings.ToUpper(strings.TrimSpace(filter.Status))),
		Offset: offset,
		Limit:  limit,
	})
}

func (u *FinancialUseCase) UpdateTransaction(ctx context.Context, id string, patch TransactionPatch) (entities.FinancialTransaction, error) {
	t, err := u.GetTransaction(ctx, id)
	if err != nil {
		return entities.FinancialTransaction{}, err
	}
	if patch.Category != nil {
		t.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.Description != nil {
		t.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Amount != nil {
		t.Amount = patch.Amount.Round(2)
	}
	if patch.Date != nil {
		t.Date = *patch.Date
	}
	if patch.Status != nil {
		t.Status = entities.TransactionStatus(strings.ToUpper(strings.TrimSpace(*patch.Status)))
	}
	if err := validateTransaction(t); err != nil {
		return entities.FinancialTransaction{}, err
	}
	t.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, t)
	if err != nil {
		return entities.FinancialTransaction{}, err
	}
	if updated.ID == "" {
		return entities.FinancialTransaction{}, ErrTransactionNotFound
	}
	return updated, nil
}

func (u *FinancialUseCase) DeleteTransaction(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidTransactionID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTransactionNotFound
	}
	return nil
}

// Summary totals the transactions dated in the given month of year. A zero
// month covers the whole year; zero for both covers every transaction.
func (u *FinancialUseCase) Summary(ctx context.Context, month, year int) (entities.FinancialSummary, error) {
	filter, err := summaryPeriod(month, year)
	if err != nil {
		return entities.FinancialSummary{}, err
	}
	txs, err := u.repo.List(ctx, filter)
	if err != nil {
		return entities.FinancialSummary{}, err
	}

	s := entities.FinancialSummary{
		TotalIncome:     decimal.Zero,
		TotalExpense:    decimal.Zero,
		TotalPayable:    decimal.Zero,
		TotalReceivable: decimal.Zero,
	}
	categories := map[string]decimal.Decimal{}
	for _, t := range txs {
		switch t.Type {
		case entities.TransactionTypeIncome:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
			if t.Status == entities.TransactionStatusPending {
				s.TotalReceivable = s.TotalReceivable.Add(t.Amount)
			}
		case entities.TransactionTypeExpense:
			s.TotalExpense = s.TotalExpense.Add(t.Amount)
			if t.Status == entities.TransactionStatusPending {
				s.TotalPayable = s.TotalPayable.Add(t.Amount)
			}
			cat := t.Category
			if cat == "" {
				cat = uncategorized
			}
			categories[cat] = categories[cat].Add(t.Amount)
		}
	}
	s.Balance = s.TotalIncome.Sub(s.TotalExpense)

	s.Categories = make([]entities.AmountBucket, 0, len(categories))
	for name, v := range categories {
		s.Categories = append(s.Categories, entities.AmountBucket{Name: name, Value: v})
	}
	sort.Slice(s.Categories, func(i, j int) bool {
		if s.Categories[i].Value.Equal(s.Categories[j].Value) {
			return s.Categories[i].Name < s.Categories[j].Name
		}
		return s.Categories[i].Value.GreaterThan(s.Categories[j].Value)
	})
	log.Printf("[financial][usecase] summary month=%d year=%d transactions=%d", month, year, len(txs))
	return s, nil
}

// History returns one point per calendar month, oldest first, ending at asOf's
// month. Months without transactions are reported with zero totals.
func (u *FinancialUseCase) History(ctx context.Context, months int, asOf time.Time) ([]entities.MonthlyBalance, error) {
	if months <= 0 {
		months = defaultHistoryMonths
	}
	if months > maxHistoryMonths {
		return nil, ErrInvalidPeriod
	}
	end := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location()).AddDate(0, 1, 0)
	start := end.AddDate(0, -months, 0)

	txs, err := u.repo.List(ctx, interfaces.TransactionFilter{From: start, Before: end})
	if err != nil {
		return nil, err
	}

	out := make([]entities.MonthlyBalance, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		key := start.AddDate(0, i, 0).Format("2006-01")
		out[i] = entities.MonthlyBalance{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
		index[key] = i
	}
	for _, t := range txs {
		i, ok := index[t.Date.In(asOf.Location()).Format("2006-01")]
		if !ok {
			continue
		}
		switch t.Type {
		case entities.TransactionTypeIncome:
			out[i].Income = out[i].Income.Add(t.Amount)
		case entities.TransactionTypeExpense:
			out[i].Expense = out[i].Expense.Add(t.Amount)
		}
	}
	return out, nil
}

func summaryPeriod(month, year int) (interfaces.TransactionFilter, error) {
	switch {
	case month < 0 || month > 12 || year < 0:
		return interfaces.TransactionFilter{}, ErrInvalidPeriod
	case month > 0 && year == 0:
		return interfaces.TransactionFilter{}, ErrInvalidPeriod
	case year == 0:
		return interfaces.TransactionFilter{}, nil
	case month == 0:
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return interfaces.TransactionFilter{From: start, Before: start.AddDate(1, 0, 0)}, nil
	default:
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		return interfaces.TransactionFilter{From: start, Before: start.AddDate(0, 1, 0)}, nil
	}
}

func validateTransaction(t entities.FinancialTransaction) error {
	switch t.Type {
	case entities.TransactionTypeIncome, entities.TransactionTypeExpense:
	default:
		return ErrInvalidTransaction
	}
	switch t.Status {
	case entities.TransactionStatusPending, entities.TransactionStatusPaid,
		entities.TransactionStatusOverdue, entities.TransactionStatusCompleted:
	default:
		return ErrInvalidTransaction
	}
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}
