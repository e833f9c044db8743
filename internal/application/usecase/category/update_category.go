// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/financy/backend/internal/application/adapter"
	domainerror "github.com/financy/backend/internal/domain/error"
	"github.com/financy/backend/internal/domain/entity"
)

// UpdateCategoryInput represents the input for updating a category.
// Nil fields are left unchanged; SetDescription distinguishes "leave alone"
// from "clear".
type UpdateCategoryInput struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           *string
	SetDescription bool
	Description    *string
	IconKey        *string
	ColorKey       *string
}

// UpdateCategoryOutput represents the output of updating a category.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category update. A category owned by another user is
// reported as not found.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name, err := validateName(*input.Name)
		if err != nil {
			return nil, err
		}

		normalized := entity.NormalizeTitle(name)
		if normalized != category.NormalizedTitle {
			exists, err := uc.categoryRepo.ExistsByNormalizedTitle(ctx, input.UserID, normalized, &category.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check category name existence: %w", err)
			}
			if exists {
				return nil, domainerror.NewCategoryError(
					domainerror.ErrCodeCategoryNameExists,
					"a category with this name already exists",
					domainerror.ErrCategoryNameExists,
				)
			}
		}

		category.Name = name
		category.NormalizedTitle = normalized
	}

	if input.SetDescription {
		description, err := validateDescription(input.Description)
		if err != nil {
			return nil, err
		}
		category.Description = description
	}

	if input.IconKey != nil {
		category.IconKey = *input.IconKey
	}
	if input.ColorKey != nil {
		category.ColorKey = *input.ColorKey
	}
	if err := validateKeys(category.IconKey, category.ColorKey); err != nil {
		return nil, err
	}

	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}
