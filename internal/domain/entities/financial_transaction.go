package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusPaid      TransactionStatus = "PAID"
	TransactionStatusOverdue   TransactionStatus = "OVERDUE"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
)

// TransactionCategoryFreight is the category used for receivables generated by billing.
const TransactionCategoryFreight = "Frete"

// FinancialTransaction is a bookkeeping entry.
//
// Entries created by billing point back to the freight through RelatedFreightID;
// deleting the freight does not cascade here.
type FinancialTransaction struct {
	ID               string            `json:"id"`
	Type             TransactionType   `json:"type"`
	Category         string            `json:"category"`
	Description      string            `json:"description"`
	Amount           decimal.Decimal   `json:"amount"`
	Date             time.Time         `json:"date"`
	Status           TransactionStatus `json:"status"`
	RelatedFreightID string            `json:"related_freight_id,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// FinancialSummary aggregates transactions for a period.
type FinancialSummary struct {
	TotalIncome     decimal.Decimal `json:"total_income"`
	TotalExpense    decimal.Decimal `json:"total_expense"`
	Balance         decimal.Decimal `json:"balance"`
	TotalPayable    decimal.Decimal `json:"total_payable"`
	TotalReceivable decimal.Decimal `json:"total_receivable"`
	Categories      []AmountBucket  `json:"categories"`
}

// AmountBucket is a named monetary total.
type AmountBucket struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// MonthlyBalance is one point of the income/expense history.
type MonthlyBalance struct {
	Month   string          `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}
