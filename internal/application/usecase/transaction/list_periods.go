// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/financy/backend/internal/application/adapter"
	"github.com/financy/backend/internal/domain/entity"
)

// ListPeriodsInput represents the input for listing transaction periods.
type ListPeriodsInput struct {
	UserID uuid.UUID
}

// ListPeriodsOutput represents the output of listing transaction periods.
type ListPeriodsOutput struct {
	Periods []entity.TransactionPeriod
}

// ListPeriodsUseCase lists the calendar months that hold the user's
// transactions, so clients can offer a period selector without guessing.
type ListPeriodsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListPeriodsUseCase creates a new ListPeriodsUseCase instance.
func NewListPeriodsUseCase(transactionRepo adapter.TransactionRepository) *ListPeriodsUseCase {
	return &ListPeriodsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the period listing, most recent month first.
func (uc *ListPeriodsUseCase) Execute(ctx context.Context, input ListPeriodsInput) (*ListPeriodsOutput, error) {
	periods, err := uc.transactionRepo.ListPeriods(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction periods: %w", err)
	}

	return &ListPeriodsOutput{Periods: periods}, nil
}
