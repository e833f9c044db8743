// Package category contains category-related use cases.
package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/financy/backend/internal/application/adapter"
)

// DeleteCategoryInput represents the input for deleting a category.
type DeleteCategoryInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteCategoryUseCase handles category deletion logic.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category deletion. Transactions that referenced the
// category survive with the reference nulled; the category holds no
// ownership over them.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	return uc.categoryRepo.Delete(ctx, input.ID, input.UserID)
}
