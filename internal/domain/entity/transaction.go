// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the type of transaction (income or expense).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// MaxTransactionTitleLength is the maximum allowed length for transaction titles.
const MaxTransactionTitleLength = 80

// Transaction represents a financial transaction in the Financy system.
// Amounts are stored as non-negative integer cents; the Type carries the
// sign contribution (income adds, expense subtracts).
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	AmountCents int64
	Type        TransactionType
	OccurredAt  time.Time
	CategoryID  *uuid.UUID // Optional, weak reference
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	title string,
	amountCents int64,
	transactionType TransactionType,
	occurredAt time.Time,
	categoryID *uuid.UUID,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		AmountCents: amountCents,
		Type:        transactionType,
		OccurredAt:  occurredAt,
		CategoryID:  categoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TransactionWithCategory represents a transaction with its associated category.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*TransactionWithCategory
	Total        int64
}

// TransactionPeriod represents a calendar month that holds at least one of
// the user's transactions, with the number of transactions in it.
type TransactionPeriod struct {
	Period string // YYYY-MM
	Count  int64
}
