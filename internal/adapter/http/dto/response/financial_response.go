package response

import (
	"time"

	"github.com/shopspring/decimal"

	"eagles_transportes/internal/domain/entities"
)

type TransactionResponse struct {
	ID               string          `json:"id"`
	Type             string          `json:"type"`
	Category         string          `json:"category"`
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"`
	Date             time.Time       `json:"date"`
	Status           string          `json:"status"`
	RelatedFreightID string          `json:"related_freight_id,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func FromTransaction(t entities.FinancialTransaction) TransactionResponse {
	return TransactionResponse{
		ID:               t.ID,
		Type:             string(t.Type),
		Category:         t.Category,
		Description:      t.Description,
		Amount:           t.Amount,
		Date:             t.Date,
		Status:           string(t.Status),
		RelatedFreightID: t.RelatedFreightID,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func FromTransactions(list []entities.FinancialTransaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, FromTransaction(t))
	}
	return out
}

type CategoryResponse struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

type SummaryResponse struct {
	TotalIncome     decimal.Decimal    `json:"total_income"`
	TotalExpense    decimal.Decimal    `json:"total_expense"`
	Balance         decimal.Decimal    `json:"balance"`
	TotalPayable    decimal.Decimal    `json:"total_payable"`
	TotalReceivable decimal.Decimal    `json:"total_receivable"`
	Categories      []CategoryResponse `json:"categories"`
}

func FromSummary(s entities.FinancialSummary) SummaryResponse {
	cats := make([]CategoryResponse, 0, len(s.Categories))
	for _, c := range s.Categories {
		cats = append(cats, CategoryResponse{Name: c.Name, Value: c.Value})
	}
	return SummaryResponse{
		TotalIncome:     s.TotalIncome,
		TotalExpense:    s.TotalExpense,
		Balance:         s.Balance,
		TotalPayable:    s.TotalPayable,
		TotalReceivable: s.TotalReceivable,
		Categories:      cats,
	}
}

type MonthlyBalanceResponse struct {
	Date    string          `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

func FromHistory(list []entities.MonthlyBalance) []MonthlyBalanceResponse {
	out := make([]MonthlyBalanceResponse, 0, len(list))
	for _, m := range list {
		out = append(out, MonthlyBalanceResponse{Date: m.Month, Income: m.Income, Expense: m.Expense})
	}
	return out
}
