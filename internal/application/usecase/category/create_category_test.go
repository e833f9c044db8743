package category

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	domainerror "github.com/financy/backend/internal/domain/error"
	"github.com/financy/backend/internal/domain/entity"
)

// memoryCategoryRepo is an in-memory CategoryRepository for use case tests.
type memoryCategoryRepo struct {
	categories []*entity.Category
	templates  []*entity.CategoryTemplate
}

func (r *memoryCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.categories = append(r.categories, category)
	return nil
}

func (r *memoryCategoryRepo) CreateMany(_ context.Context, categories []*entity.Category) error {
	r.categories = append(r.categories, categories...)
	return nil
}

func (r *memoryCategoryRepo) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id && c.UserID == userID {
			return c, nil
		}
	}
	return nil, domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNotFound,
		"category not found",
		domainerror.ErrCategoryNotFound,
	)
}

func (r *memoryCategoryRepo) FindByIDs(_ context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, id := range ids {
		for _, c := range r.categories {
			if c.ID == id && c.UserID == userID {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (r *memoryCategoryRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memoryCategoryRepo) ExistsByNormalizedTitle(_ context.Context, userID uuid.UUID, normalizedTitle string, excludeID *uuid.UUID) (bool, error) {
	for _, c := range r.categories {
		if excludeID != nil && c.ID == *excludeID {
			continue
		}
		if c.UserID == userID && c.NormalizedTitle == normalizedTitle {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	for i, c := range r.categories {
		if c.ID == category.ID {
			r.categories[i] = category
			return nil
		}
	}
	return domainerror.ErrCategoryNotFound
}

func (r *memoryCategoryRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	for i, c := range r.categories {
		if c.ID == id && c.UserID == userID {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrCategoryNotFound
}

func (r *memoryCategoryRepo) Templates(_ context.Context) ([]*entity.CategoryTemplate, error) {
	return r.templates, nil
}

func TestCreateCategoryUseCase(t *testing.T) {
	userID := uuid.New()

	t.Run("creates category with defaults", func(t *testing.T) {
		repo := &memoryCategoryRepo{}
		uc := NewCreateCategoryUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateCategoryInput{
			UserID: userID,
			Name:   "  Mercado  ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		category := output.Category
		if category.Name != "Mercado" {
			t.Errorf("expected trimmed name Mercado, got %q", category.Name)
		}
		if category.NormalizedTitle != "mercado" {
			t.Errorf("expected normalized title mercado, got %q", category.NormalizedTitle)
		}
		if category.IconKey != entity.DefaultCategoryIconKey {
			t.Errorf("expected default icon key, got %q", category.IconKey)
		}
		if category.ColorKey != entity.DefaultCategoryColorKey {
			t.Errorf("expected default color key, got %q", category.ColorKey)
		}
		if category.Description != nil {
			t.Errorf("expected nil description, got %q", *category.Description)
		}
		if len(repo.categories) != 1 {
			t.Errorf("expected 1 persisted category, got %d", len(repo.categories))
		}
	})

	t.Run("rejects duplicate names across accents and case", func(t *testing.T) {
		repo := &memoryCategoryRepo{}
		uc := NewCreateCategoryUseCase(repo)

		if _, err := uc.Execute(context.Background(), CreateCategoryInput{UserID: userID, Name: "Saúde"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := uc.Execute(context.Background(), CreateCategoryInput{UserID: userID, Name: "SAUDE"})
		if !errors.Is(err, domainerror.ErrCategoryNameExists) {
			t.Errorf("expected ErrCategoryNameExists, got %v", err)
		}

		var categoryErr *domainerror.CategoryError
		if !errors.As(err, &categoryErr) || categoryErr.Code != domainerror.ErrCodeCategoryNameExists {
			t.Errorf("expected code %s, got %v", domainerror.ErrCodeCategoryNameExists, err)
		}
	})

	t.Run("same name is allowed for different users", func(t *testing.T) {
		repo := &memoryCategoryRepo{}
		uc := NewCreateCategoryUseCase(repo)

		if _, err := uc.Execute(context.Background(), CreateCategoryInput{UserID: userID, Name: "Transporte"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Execute(context.Background(), CreateCategoryInput{UserID: uuid.New(), Name: "Transporte"}); err != nil {
			t.Errorf("unexpected error for second user: %v", err)
		}
	})

	t.Run("rejects blank and oversized names", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(&memoryCategoryRepo{})

		_, err := uc.Execute(context.Background(), CreateCategoryInput{UserID: userID, Name: "   "})
		if !errors.Is(err, domainerror.ErrCategoryNameRequired) {
			t.Errorf("expected ErrCategoryNameRequired, got %v", err)
		}

		_, err = uc.Execute(context.Background(), CreateCategoryInput{
			UserID: userID,
			Name:   strings.Repeat("a", entity.MaxCategoryNameLength+1),
		})
		if !errors.Is(err, domainerror.ErrCategoryNameTooLong) {
			t.Errorf("expected ErrCategoryNameTooLong, got %v", err)
		}
	})

	t.Run("blank description normalizes to absent", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(&memoryCategoryRepo{})
		blank := "   "

		output, err := uc.Execute(context.Background(), CreateCategoryInput{
			UserID:      userID,
			Name:        "Lazer",
			Description: &blank,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Description != nil {
			t.Errorf("expected nil description, got %q", *output.Category.Description)
		}
	})

	t.Run("rejects unknown icon and color keys", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(&memoryCategoryRepo{})

		_, err := uc.Execute(context.Background(), CreateCategoryInput{UserID: userID, Name: "Pets", IconKey: "dragon"})
		if !errors.Is(err, domainerror.ErrInvalidIconKey) {
			t.Errorf("expected ErrInvalidIconKey, got %v", err)
		}

		_, err = uc.Execute(context.Background(), CreateCategoryInput{UserID: userID, Name: "Pets", ColorKey: "mauve"})
		if !errors.Is(err, domainerror.ErrInvalidColorKey) {
			t.Errorf("expected ErrInvalidColorKey, got %v", err)
		}
	})
}

func TestUpdateCategoryUseCase(t *testing.T) {
	userID := uuid.New()

	seed := func(t *testing.T) (*memoryCategoryRepo, *entity.Category) {
		t.Helper()
		repo := &memoryCategoryRepo{}
		description := "Contas da casa"
		category := entity.NewCategory(userID, "Utilidades", &description, "tool-case", "yellow")
		repo.categories = append(repo.categories, category)
		return repo, category
	}

	t.Run("renames and renormalizes", func(t *testing.T) {
		repo, category := seed(t)
		uc := NewUpdateCategoryUseCase(repo)
		name := "Educação"

		output, err := uc.Execute(context.Background(), UpdateCategoryInput{
			ID:     category.ID,
			UserID: userID,
			Name:   &name,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Name != "Educação" {
			t.Errorf("expected renamed category, got %q", output.Category.Name)
		}
		if output.Category.NormalizedTitle != "educacao" {
			t.Errorf("expected normalized title educacao, got %q", output.Category.NormalizedTitle)
		}
	})

	t.Run("rename to own title is not a duplicate", func(t *testing.T) {
		repo, category := seed(t)
		uc := NewUpdateCategoryUseCase(repo)
		name := "UTILIDADES"

		output, err := uc.Execute(context.Background(), UpdateCategoryInput{
			ID:     category.ID,
			UserID: userID,
			Name:   &name,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Name != "UTILIDADES" {
			t.Errorf("expected recased name, got %q", output.Category.Name)
		}
	})

	t.Run("rename onto another category collides", func(t *testing.T) {
		repo, category := seed(t)
		repo.categories = append(repo.categories, entity.NewCategory(userID, "Saúde", nil, "heart", "red"))
		uc := NewUpdateCategoryUseCase(repo)
		name := "saude"

		_, err := uc.Execute(context.Background(), UpdateCategoryInput{
			ID:     category.ID,
			UserID: userID,
			Name:   &name,
		})
		if !errors.Is(err, domainerror.ErrCategoryNameExists) {
			t.Errorf("expected ErrCategoryNameExists, got %v", err)
		}
	})

	t.Run("clears description when asked", func(t *testing.T) {
		repo, category := seed(t)
		uc := NewUpdateCategoryUseCase(repo)

		output, err := uc.Execute(context.Background(), UpdateCategoryInput{
			ID:             category.ID,
			UserID:         userID,
			SetDescription: true,
			Description:    nil,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Description != nil {
			t.Errorf("expected cleared description, got %q", *output.Category.Description)
		}
	})

	t.Run("leaves description alone by default", func(t *testing.T) {
		repo, category := seed(t)
		uc := NewUpdateCategoryUseCase(repo)
		icon := "heart"

		output, err := uc.Execute(context.Background(), UpdateCategoryInput{
			ID:      category.ID,
			UserID:  userID,
			IconKey: &icon,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Description == nil || *output.Category.Description != "Contas da casa" {
			t.Errorf("expected description untouched, got %v", output.Category.Description)
		}
		if output.Category.IconKey != "heart" {
			t.Errorf("expected icon key heart, got %q", output.Category.IconKey)
		}
	})

	t.Run("another user's category is not found", func(t *testing.T) {
		repo, category := seed(t)
		uc := NewUpdateCategoryUseCase(repo)
		name := "Outro"

		_, err := uc.Execute(context.Background(), UpdateCategoryInput{
			ID:     category.ID,
			UserID: uuid.New(),
			Name:   &name,
		})
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}

func TestBootstrapCategoriesUseCase(t *testing.T) {
	userID := uuid.New()

	template := func(name, iconKey, colorKey string) *entity.CategoryTemplate {
		return &entity.CategoryTemplate{
			ID:              uuid.New(),
			Name:            name,
			NormalizedTitle: entity.NormalizeTitle(name),
			IconKey:         iconKey,
			ColorKey:        colorKey,
		}
	}
	templates := []*entity.CategoryTemplate{
		template("Mercado", "shopping-cart", "orange"),
		template("Saúde", "heart", "red"),
		template("Transporte", "car", "purple"),
	}

	t.Run("copies all templates for a fresh user", func(t *testing.T) {
		repo := &memoryCategoryRepo{templates: templates}
		uc := NewBootstrapCategoriesUseCase(repo)

		output, err := uc.Execute(context.Background(), BootstrapCategoriesInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.CreatedCount != 3 || output.TemplateCount != 3 {
			t.Errorf("expected 3 created of 3, got %d of %d", output.CreatedCount, output.TemplateCount)
		}
		if len(repo.categories) != 3 {
			t.Errorf("expected 3 persisted categories, got %d", len(repo.categories))
		}
	})

	t.Run("skips titles the user already has", func(t *testing.T) {
		repo := &memoryCategoryRepo{templates: templates}
		repo.categories = append(repo.categories, entity.NewCategory(userID, "saude", nil, "tag", "blue"))
		uc := NewBootstrapCategoriesUseCase(repo)

		output, err := uc.Execute(context.Background(), BootstrapCategoriesInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.CreatedCount != 2 {
			t.Errorf("expected 2 created, got %d", output.CreatedCount)
		}
	})

	t.Run("rerun creates nothing", func(t *testing.T) {
		repo := &memoryCategoryRepo{templates: templates}
		uc := NewBootstrapCategoriesUseCase(repo)

		if _, err := uc.Execute(context.Background(), BootstrapCategoriesInput{UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output, err := uc.Execute(context.Background(), BootstrapCategoriesInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.CreatedCount != 0 {
			t.Errorf("expected 0 created on rerun, got %d", output.CreatedCount)
		}
	})

	t.Run("empty template table is a no-op", func(t *testing.T) {
		uc := NewBootstrapCategoriesUseCase(&memoryCategoryRepo{})

		output, err := uc.Execute(context.Background(), BootstrapCategoriesInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.CreatedCount != 0 || output.TemplateCount != 0 {
			t.Errorf("expected empty output, got %+v", output)
		}
	})
}
