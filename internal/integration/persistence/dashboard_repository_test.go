package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/financy/backend/internal/application/usecase/dashboard"
	"github.com/financy/backend/internal/domain/entity"
)

func TestDashboardRepositorySumByType(t *testing.T) {
	db := newTestDB(t)
	repo := NewDashboardRepository(db)
	transactionRepo := NewTransactionRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	jan := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)

	seed := []*entity.Transaction{
		newTestTransaction(userID, "Salário", 500000, entity.TransactionTypeIncome, jan, nil),
		newTestTransaction(userID, "Mercado", 30000, entity.TransactionTypeExpense, jan, nil),
		newTestTransaction(userID, "Freela", 80000, entity.TransactionTypeIncome, feb, nil),
		newTestTransaction(uuid.New(), "Alheio", 999900, entity.TransactionTypeIncome, jan, nil),
	}
	for _, transaction := range seed {
		if err := transactionRepo.Create(ctx, transaction); err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}
	}

	t.Run("all-time sums with nil bounds", func(t *testing.T) {
		sums, err := repo.SumByType(ctx, userID, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sums.IncomeCents != 580000 {
			t.Errorf("expected income 580000, got %d", sums.IncomeCents)
		}
		if sums.ExpenseCents != 30000 {
			t.Errorf("expected expense 30000, got %d", sums.ExpenseCents)
		}
	})

	t.Run("bounded sums", func(t *testing.T) {
		from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
		before := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
		sums, err := repo.SumByType(ctx, userID, &from, &before)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sums.IncomeCents != 500000 || sums.ExpenseCents != 30000 {
			t.Errorf("expected January sums 500000/30000, got %d/%d", sums.IncomeCents, sums.ExpenseCents)
		}
	})

	t.Run("empty range sums to zero", func(t *testing.T) {
		from := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
		before := time.Date(2030, time.February, 1, 0, 0, 0, 0, time.UTC)
		sums, err := repo.SumByType(ctx, userID, &from, &before)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sums.IncomeCents != 0 || sums.ExpenseCents != 0 {
			t.Errorf("expected zero sums, got %d/%d", sums.IncomeCents, sums.ExpenseCents)
		}
	})
}

func TestDashboardRepositoryGroupByCategoryAndType(t *testing.T) {
	db := newTestDB(t)
	repo := NewDashboardRepository(db)
	transactionRepo := NewTransactionRepository(db)
	categoryRepo := NewCategoryRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	groceries := entity.NewCategory(userID, "Mercado", nil, "shopping-cart", "orange")
	if err := categoryRepo.Create(ctx, groceries); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	jan := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	seed := []*entity.Transaction{
		newTestTransaction(userID, "Feira", 10000, entity.TransactionTypeExpense, jan, &groceries.ID),
		newTestTransaction(userID, "Mercado do mês", 25000, entity.TransactionTypeExpense, jan, &groceries.ID),
		newTestTransaction(userID, "Reembolso", 5000, entity.TransactionTypeIncome, jan, &groceries.ID),
		newTestTransaction(userID, "Sem categoria", 7777, entity.TransactionTypeExpense, jan, nil),
		// A corrupted type must stay out of the grouped rows entirely,
		// counts included.
		newTestTransaction(userID, "Tipo corrompido", 4000, entity.TransactionType("REFUND"), jan, &groceries.ID),
	}
	for _, transaction := range seed {
		if err := transactionRepo.Create(ctx, transaction); err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}
	}

	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

	rows, err := repo.GroupByCategoryAndType(ctx, userID, from, before)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	byType := make(map[entity.TransactionType]dashboard.CategoryTypeRow, len(rows))
	for _, row := range rows {
		if row.CategoryID != groceries.ID {
			t.Errorf("unexpected category %s in row", row.CategoryID)
		}
		byType[row.Type] = row
	}
	if expense := byType[entity.TransactionTypeExpense]; expense.Count != 2 || expense.SumCents != 35000 {
		t.Errorf("expected expense row 2/35000, got %d/%d", expense.Count, expense.SumCents)
	}
	if income := byType[entity.TransactionTypeIncome]; income.Count != 1 || income.SumCents != 5000 {
		t.Errorf("expected income row 1/5000, got %d/%d", income.Count, income.SumCents)
	}
}

func TestDashboardRepositoryFindRecent(t *testing.T) {
	db := newTestDB(t)
	repo := NewDashboardRepository(db)
	transactionRepo := NewTransactionRepository(db)
	categoryRepo := NewCategoryRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	groceries := entity.NewCategory(userID, "Mercado", nil, "shopping-cart", "orange")
	if err := categoryRepo.Create(ctx, groceries); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	base := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	for day := 1; day <= 7; day++ {
		occurredAt := base.AddDate(0, 0, day)
		categoryID := &groceries.ID
		if day%2 == 0 {
			categoryID = nil
		}
		if err := transactionRepo.Create(ctx, newTestTransaction(userID, "Compra", int64(day*100), entity.TransactionTypeExpense, occurredAt, categoryID)); err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}
	}

	recent, err := repo.FindRecent(ctx, userID, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(recent) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(recent))
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].Transaction.OccurredAt.After(recent[i-1].Transaction.OccurredAt) {
			t.Errorf("recent transactions out of order at position %d", i)
		}
	}
	// Newest row is day 7, an odd day, so its category must be preloaded.
	if recent[0].Category == nil || recent[0].Category.ID != groceries.ID {
		t.Error("expected preloaded category on the newest transaction")
	}
}
