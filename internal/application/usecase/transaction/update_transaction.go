// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/financy/backend/internal/application/adapter"
	domainerror "github.com/financy/backend/internal/domain/error"
	"github.com/financy/backend/internal/domain/entity"
	"github.com/financy/backend/internal/domain/valueobject"
)

// UpdateTransactionInput represents the input for updating a transaction.
// Nil fields are left unchanged. CategoryID distinguishes "leave alone"
// (SetCategory false) from "clear" (SetCategory true, CategoryID nil).
type UpdateTransactionInput struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       *string
	Amount      *float64
	Type        *entity.TransactionType
	OccurredAt  *time.Time
	SetCategory bool
	CategoryID  *uuid.UUID
}

// UpdateTransactionOutput represents the output of updating a transaction.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
	Category    *entity.Category
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title, err := validateTitle(*input.Title)
		if err != nil {
			return nil, err
		}
		transaction.Title = title
	}

	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, domainerror.NewMoneyError(
				domainerror.ErrCodeInvalidAmount,
				"amount must be greater than 0",
				domainerror.ErrInvalidAmount,
			)
		}
		amountCents, err := valueobject.ToCents(*input.Amount)
		if err != nil {
			return nil, err
		}
		transaction.AmountCents = amountCents
	}

	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"type must be INCOME or EXPENSE",
				domainerror.ErrInvalidTransactionType,
			)
		}
		transaction.Type = *input.Type
	}

	if input.OccurredAt != nil {
		transaction.OccurredAt = input.OccurredAt.UTC()
	}

	var category *entity.Category
	if input.SetCategory {
		if input.CategoryID != nil {
			category, err = uc.ensureCategoryOwnership(ctx, *input.CategoryID, input.UserID)
			if err != nil {
				return nil, err
			}
		}
		transaction.CategoryID = input.CategoryID
	} else if transaction.CategoryID != nil {
		// Keep the response's category payload in sync with the unchanged
		// reference; a concurrently deleted category is simply omitted.
		category, err = uc.categoryRepo.FindByID(ctx, *transaction.CategoryID, input.UserID)
		if err != nil && !errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, fmt.Errorf("failed to load category: %w", err)
		}
	}

	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: transaction,
		Category:    category,
	}, nil
}

func (uc *UpdateTransactionUseCase) ensureCategoryOwnership(ctx context.Context, categoryID, userID uuid.UUID) (*entity.Category, error) {
	category, err := uc.categoryRepo.FindByID(ctx, categoryID, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryInvalid,
				"invalid categoryId",
				domainerror.ErrTxnCategoryInvalid,
			)
		}
		return nil, fmt.Errorf("failed to check category ownership: %w", err)
	}
	return category, nil
}
