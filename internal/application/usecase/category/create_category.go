// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/financy/backend/internal/application/adapter"
	domainerror "github.com/financy/backend/internal/domain/error"
	"github.com/financy/backend/internal/domain/entity"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID      uuid.UUID
	Name        string
	Description *string
	IconKey     string // Optional, defaults to DefaultCategoryIconKey
	ColorKey    string // Optional, defaults to DefaultCategoryColorKey
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}

	description, err := validateDescription(input.Description)
	if err != nil {
		return nil, err
	}

	iconKey := input.IconKey
	if iconKey == "" {
		iconKey = entity.DefaultCategoryIconKey
	}
	colorKey := input.ColorKey
	if colorKey == "" {
		colorKey = entity.DefaultCategoryColorKey
	}
	if err := validateKeys(iconKey, colorKey); err != nil {
		return nil, err
	}

	// Duplicate detection runs on the normalized title so "Saúde" and
	// "saude" collide.
	exists, err := uc.categoryRepo.ExistsByNormalizedTitle(ctx, input.UserID, entity.NormalizeTitle(name), nil)
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

	category := entity.NewCategory(input.UserID, name, description, iconKey, colorKey)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

// validateName trims and bounds-checks a category name.
func validateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryName,
			"name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}
	if len(name) > entity.MaxCategoryNameLength {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryName,
			fmt.Sprintf("name must not exceed %d characters", entity.MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}
	return name, nil
}

// validateDescription bounds-checks an optional description, normalizing
// blank to absent.
func validateDescription(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	description := strings.TrimSpace(*raw)
	if description == "" {
		return nil, nil
	}
	if len(description) > entity.MaxCategoryDescriptionLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryDescription,
			fmt.Sprintf("description must not exceed %d characters", entity.MaxCategoryDescriptionLength),
			domainerror.ErrCategoryDescriptionTooLong,
		)
	}
	return &description, nil
}

// validateKeys checks icon and color keys against the renderable sets.
func validateKeys(iconKey, colorKey string) error {
	if !entity.IsValidCategoryIconKey(iconKey) {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidIconKey,
			fmt.Sprintf("unknown icon key %q", iconKey),
			domainerror.ErrInvalidIconKey,
		)
	}
	if !entity.IsValidCategoryColorKey(colorKey) {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidColorKey,
			fmt.Sprintf("unknown color key %q", colorKey),
			domainerror.ErrInvalidColorKey,
		)
	}
	return nil
}
