// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/financy/backend/internal/application/adapter"
	"github.com/financy/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID uuid.UUID
	Query  Query
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Items []*entity.TransactionWithCategory
	Total int64
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	filter, window, err := BuildQuery(input.UserID, input.Query)
	if err != nil {
		return nil, err
	}

	result, err := uc.transactionRepo.FindByFilter(ctx, filter, window)
	if err != nil {
		return nil, err
	}

	return &ListTransactionsOutput{
		Items: result.Transactions,
		Total: result.Total,
	}, nil
}
