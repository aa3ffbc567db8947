package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"eagles_transportes/internal/domain/entities"
	"eagles_transportes/internal/usecase/interfaces"
	mock_interfaces "eagles_transportes/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func txFixture(typ entities.TransactionType, status entities.TransactionStatus, category string, amount int64, date time.Time) entities.FinancialTransaction {
	return entities.FinancialTransaction{
		ID:       category + date.Format("0102"),
		Type:     typ,
		Status:   status,
		Category: category,
		Amount:   decimal.NewFromInt(amount),
		Date:     date,
	}
}

func TestFinancialUseCase_Summary(t *testing.T) {
	t.Run("totals for a month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewFinancialUseCase(repo)

		d := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().List(gomock.Any(), interfaces.TransactionFilter{
			From:   time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			Before: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		}).Return([]entities.FinancialTransaction{
			txFixture(entities.TransactionTypeIncome, entities.TransactionStatusPending, "Frete", 1000, d),
			txFixture(entities.TransactionTypeIncome, entities.TransactionStatusCompleted, "Frete", 500, d),
			txFixture(entities.TransactionTypeExpense, entities.TransactionStatusPending, "Diesel", 300, d),
			txFixture(entities.TransactionTypeExpense, entities.TransactionStatusPaid, "", 100, d),
		}, nil)

		s, err := uc.Summary(context.Background(), 3, 2025)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		checks := map[string][2]decimal.Decimal{
			"income":     {s.TotalIncome, decimal.NewFromInt(1500)},
			"expense":    {s.TotalExpense, decimal.NewFromInt(400)},
			"balance":    {s.Balance, decimal.NewFromInt(1100)},
			"payable":    {s.TotalPayable, decimal.NewFromInt(300)},
			"receivable": {s.TotalReceivable, decimal.NewFromInt(1000)},
		}
		for name, c := range checks {
			if !c[0].Equal(c[1]) {
				t.Fatalf("%s: expected %s, got %s", name, c[1], c[0])
			}
		}
		if len(s.Categories) != 2 || s.Categories[0].Name != "Diesel" || s.Categories[1].Name != uncategorized {
			t.Fatalf("unexpected categories: %+v", s.Categories)
		}
	})

	t.Run("invalid period", func(t *testing.T) {
		uc := NewFinancialUseCase(nil)
		for _, p := range [][2]int{{13, 2025}, {3, 0}, {-1, 2025}} {
			if _, err := uc.Summary(context.Background(), p[0], p[1]); !errors.Is(err, ErrInvalidPeriod) {
				t.Fatalf("expected ErrInvalidPeriod for %v, got %v", p, err)
			}
		}
	})
}

func TestFinancialUseCase_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockITransactionRepository(ctrl)
	uc := NewFinancialUseCase(repo)

	asOf := time.Date(2025, time.March, 31, 12, 0, 0, 0, time.UTC)
	repo.EXPECT().List(gomock.Any(), interfaces.TransactionFilter{
		From:   time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		Before: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
	}).Return([]entities.FinancialTransaction{
		txFixture(entities.TransactionTypeIncome, entities.TransactionStatusCompleted, "Frete", 800, time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)),
		txFixture(entities.TransactionTypeExpense, entities.TransactionStatusPaid, "Diesel", 200, time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)),
	}, nil)

	h, err := uc.History(context.Background(), 3, asOf)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(h) != 3 || h[0].Month != "2025-01" || h[1].Month != "2025-02" || h[2].Month != "2025-03" {
		t.Fatalf("unexpected months: %+v", h)
	}
	if !h[0].Income.Equal(decimal.NewFromInt(800)) || !h[1].Income.IsZero() || !h[2].Expense.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("unexpected history: %+v", h)
	}
}

func TestFinancialUseCase_Transactions(t *testing.T) {
	t.Run("create defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewFinancialUseCase(repo)
		uc.now = func() time.Time { return fixedNow }

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in entities.FinancialTransaction) (entities.FinancialTransaction, error) {
			return in, nil
		})

		created, err := uc.CreateTransaction(context.Background(), TransactionInput{Type: "expense", Category: "Pedágio", Amount: decimal.RequireFromString("12.345")})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if created.Status != entities.TransactionStatusPending || !created.Date.Equal(fixedNow) || created.Amount.String() != "12.35" {
			t.Fatalf("unexpected transaction: %+v", created)
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		uc := NewFinancialUseCase(nil)
		_, err := uc.CreateTransaction(context.Background(), TransactionInput{Type: "GIFT", Amount: decimal.NewFromInt(1)})
		if !errors.Is(err, ErrInvalidTransaction) {
			t.Fatalf("expected ErrInvalidTransaction, got %v", err)
		}
	})

	t.Run("patch only changes given fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewFinancialUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "tx-1").Return(entities.FinancialTransaction{
			ID: "tx-1", Type: entities.TransactionTypeExpense, Status: entities.TransactionStatusPending,
			Category: "Diesel", Amount: decimal.NewFromInt(50),
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in entities.FinancialTransaction) (entities.FinancialTransaction, error) {
			return in, nil
		})

		status := "paid"
		updated, err := uc.UpdateTransaction(context.Background(), "tx-1", TransactionPatch{Status: &status})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if updated.Status != entities.TransactionStatusPaid || updated.Category != "Diesel" {
			t.Fatalf("unexpected transaction: %+v", updated)
		}
	})
}
