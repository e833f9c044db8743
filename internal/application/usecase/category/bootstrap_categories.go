// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/financy/backend/internal/application/adapter"
	"github.com/financy/backend/internal/domain/entity"
)

// BootstrapCategoriesInput represents the input for bootstrapping a user's catalog.
type BootstrapCategoriesInput struct {
	UserID uuid.UUID
}

// BootstrapCategoriesOutput reports how many templates were copied.
type BootstrapCategoriesOutput struct {
	CreatedCount  int
	TemplateCount int
}

// BootstrapCategoriesUseCase copies the global category templates into a
// user's catalog. It is idempotent: templates whose normalized title the
// user already has are skipped, so re-running after a partial failure is
// safe.
type BootstrapCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewBootstrapCategoriesUseCase creates a new BootstrapCategoriesUseCase instance.
func NewBootstrapCategoriesUseCase(categoryRepo adapter.CategoryRepository) *BootstrapCategoriesUseCase {
	return &BootstrapCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the bootstrap.
func (uc *BootstrapCategoriesUseCase) Execute(ctx context.Context, input BootstrapCategoriesInput) (*BootstrapCategoriesOutput, error) {
	templates, err := uc.categoryRepo.Templates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load category templates: %w", err)
	}
	if len(templates) == 0 {
		return &BootstrapCategoriesOutput{}, nil
	}

	existing, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing categories: %w", err)
	}

	existingTitles := make(map[string]struct{}, len(existing))
	for _, category := range existing {
		existingTitles[category.NormalizedTitle] = struct{}{}
	}

	toCreate := make([]*entity.Category, 0, len(templates))
	for _, template := range templates {
		if _, ok := existingTitles[template.NormalizedTitle]; ok {
			continue
		}
		toCreate = append(toCreate, entity.NewCategory(
			input.UserID,
			template.Name,
			template.Description,
			template.IconKey,
			template.ColorKey,
		))
	}

	if len(toCreate) > 0 {
		if err := uc.categoryRepo.CreateMany(ctx, toCreate); err != nil {
			return nil, fmt.Errorf("failed to bootstrap categories: %w", err)
		}
	}

	return &BootstrapCategoriesOutput{
		CreatedCount:  len(toCreate),
		TemplateCount: len(templates),
	}, nil
}
