package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/financy/backend/internal/domain/entity"
	domainerror "github.com/financy/backend/internal/domain/error"
)

func TestCategoryRepositoryFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	groceries := entity.NewCategory(userID, "Mercado", nil, "shopping-cart", "orange")
	if err := repo.Create(ctx, groceries); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	t.Run("finds by id for the owner", func(t *testing.T) {
		found, err := repo.FindByID(ctx, groceries.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Name != "Mercado" || found.NormalizedTitle != "mercado" {
			t.Errorf("unexpected category: %+v", found)
		}
	})

	t.Run("hides other users' categories", func(t *testing.T) {
		_, err := repo.FindByID(ctx, groceries.ID, uuid.New())
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("finds by id set skipping missing ids", func(t *testing.T) {
		found, err := repo.FindByIDs(ctx, userID, []uuid.UUID{groceries.ID, uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 1 || found[0].ID != groceries.ID {
			t.Errorf("expected only the groceries category, got %d rows", len(found))
		}
	})

	t.Run("empty id set short-circuits", func(t *testing.T) {
		found, err := repo.FindByIDs(ctx, userID, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 0 {
			t.Errorf("expected no rows, got %d", len(found))
		}
	})
}

func TestCategoryRepositoryFindByUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	older := entity.NewCategory(userID, "Transporte", nil, "car", "purple")
	older.CreatedAt = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	newer := entity.NewCategory(userID, "Saúde", nil, "heart", "red")
	newer.CreatedAt = time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

	if err := repo.CreateMany(ctx, []*entity.Category{older, newer}); err != nil {
		t.Fatalf("failed to create categories: %v", err)
	}
	if err := repo.Create(ctx, entity.NewCategory(uuid.New(), "Alheia", nil, "tag", "blue")); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	categories, err := repo.FindByUser(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if categories[0].Name != "Saúde" || categories[1].Name != "Transporte" {
		t.Errorf("expected newest first, got %q then %q", categories[0].Name, categories[1].Name)
	}
}

func TestCategoryRepositoryExistsByNormalizedTitle(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	health := entity.NewCategory(userID, "Saúde", nil, "heart", "red")
	if err := repo.Create(ctx, health); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	t.Run("matches the normalized title", func(t *testing.T) {
		exists, err := repo.ExistsByNormalizedTitle(ctx, userID, "saude", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Error("expected a match for saude")
		}
	})

	t.Run("scopes to the user", func(t *testing.T) {
		exists, err := repo.ExistsByNormalizedTitle(ctx, uuid.New(), "saude", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected no match for another user")
		}
	})

	t.Run("exclusion ignores the category itself", func(t *testing.T) {
		exists, err := repo.ExistsByNormalizedTitle(ctx, userID, "saude", &health.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Error("expected the excluded category not to count")
		}
	})
}

func TestCategoryRepositoryDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	transactionRepo := NewTransactionRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	groceries := entity.NewCategory(userID, "Mercado", nil, "shopping-cart", "orange")
	if err := repo.Create(ctx, groceries); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	occurredAt := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	transaction := newTestTransaction(userID, "Feira", 5000, entity.TransactionTypeExpense, occurredAt, &groceries.ID)
	if err := transactionRepo.Create(ctx, transaction); err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}

	t.Run("enforces the category foreign key", func(t *testing.T) {
		missing := uuid.New()
		dangling := newTestTransaction(userID, "Sem categoria", 100, entity.TransactionTypeExpense, occurredAt, &missing)
		if err := transactionRepo.Create(ctx, dangling); err == nil {
			t.Fatal("expected a constraint violation for a missing category")
		}
	})

	t.Run("rejects another user's delete", func(t *testing.T) {
		err := repo.Delete(ctx, groceries.ID, uuid.New())
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}

		stored, err := transactionRepo.FindByID(ctx, transaction.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.CategoryID == nil {
			t.Error("expected the transaction to keep its category")
		}
	})

	t.Run("deletes and detaches transactions", func(t *testing.T) {
		if err := repo.Delete(ctx, groceries.ID, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := repo.FindByID(ctx, groceries.ID, userID)
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}

		stored, err := transactionRepo.FindByID(ctx, transaction.ID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.CategoryID != nil {
			t.Errorf("expected detached transaction, got category %s", *stored.CategoryID)
		}
	})
}

func TestSeedCategoryTemplates(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	if err := SeedCategoryTemplates(ctx, db); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	templates, err := repo.Templates(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(templates) != 8 {
		t.Fatalf("expected 8 seed templates, got %d", len(templates))
	}

	byTitle := make(map[string]*entity.CategoryTemplate, len(templates))
	for _, template := range templates {
		byTitle[template.NormalizedTitle] = template
	}
	salary, ok := byTitle["salario"]
	if !ok {
		t.Fatal("expected a salary template")
	}
	if salary.IconKey != "briefcase" || salary.ColorKey != "green" {
		t.Errorf("unexpected salary template keys: %s/%s", salary.IconKey, salary.ColorKey)
	}

	t.Run("reseeding is a no-op", func(t *testing.T) {
		if err := SeedCategoryTemplates(ctx, db); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		again, err := repo.Templates(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(again) != 8 {
			t.Errorf("expected 8 templates after reseed, got %d", len(again))
		}
	})
}
