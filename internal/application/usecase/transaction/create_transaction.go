// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/financy/backend/internal/application/adapter"
	domainerror "github.com/financy/backend/internal/domain/error"
	"github.com/financy/backend/internal/domain/entity"
	"github.com/financy/backend/internal/domain/valueobject"
)

// CreateTransactionInput represents the input for creating a transaction.
type CreateTransactionInput struct {
	UserID     uuid.UUID
	Title      string
	Amount     float64
	Type       entity.TransactionType
	OccurredAt *time.Time // Optional, defaults to now (UTC)
	CategoryID *uuid.UUID // Optional
}

// CreateTransactionOutput represents the output of creating a transaction.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
	Category    *entity.Category
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return nil, err
	}

	if !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be INCOME or EXPENSE",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if input.Amount <= 0 {
		return nil, domainerror.NewMoneyError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be greater than 0",
			domainerror.ErrInvalidAmount,
		)
	}
	amountCents, err := valueobject.ToCents(input.Amount)
	if err != nil {
		return nil, err
	}

	var category *entity.Category
	if input.CategoryID != nil {
		category, err = uc.ensureCategoryOwnership(ctx, *input.CategoryID, input.UserID)
		if err != nil {
			return nil, err
		}
	}

	occurredAt := time.Now().UTC()
	if input.OccurredAt != nil {
		occurredAt = input.OccurredAt.UTC()
	}

	transaction := entity.NewTransaction(
		input.UserID,
		title,
		amountCents,
		input.Type,
		occurredAt,
		input.CategoryID,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: transaction,
		Category:    category,
	}, nil
}

// ensureCategoryOwnership resolves a category for the user. A category that
// exists but belongs to someone else is reported exactly like a missing one.
func (uc *CreateTransactionUseCase) ensureCategoryOwnership(ctx context.Context, categoryID, userID uuid.UUID) (*entity.Category, error) {
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

// validateTitle trims and bounds-checks a transaction title.
func validateTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionTitle,
			"title is required",
			domainerror.ErrTransactionTitleRequired,
		)
	}
	if len(title) > entity.MaxTransactionTitleLength {
		return "", domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionTitle,
			fmt.Sprintf("title must not exceed %d characters", entity.MaxTransactionTitleLength),
			domainerror.ErrTransactionTitleTooLong,
		)
	}
	return title, nil
}
