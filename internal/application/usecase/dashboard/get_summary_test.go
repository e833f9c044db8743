package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/financy/backend/internal/domain/error"
	"github.com/financy/backend/internal/domain/entity"
)

// fakeDashboardRepo returns canned aggregation results and records the
// bounds it was called with.
type fakeDashboardRepo struct {
	allTimeSums TypeSums
	periodSums  TypeSums
	recent      []*entity.TransactionWithCategory
	grouped     []CategoryTypeRow

	err error

	recentLimit  int
	periodFrom   time.Time
	periodBefore time.Time
}

func (f *fakeDashboardRepo) SumByType(_ context.Context, _ uuid.UUID, from, before *time.Time) (TypeSums, error) {
	if f.err != nil {
		return TypeSums{}, f.err
	}
	if from == nil && before == nil {
		return f.allTimeSums, nil
	}
	return f.periodSums, nil
}

func (f *fakeDashboardRepo) GroupByCategoryAndType(_ context.Context, _ uuid.UUID, from, before time.Time) ([]CategoryTypeRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.periodFrom = from
	f.periodBefore = before
	return f.grouped, nil
}

func (f *fakeDashboardRepo) FindRecent(_ context.Context, _ uuid.UUID, limit int) ([]*entity.TransactionWithCategory, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.recentLimit = limit
	return f.recent, nil
}

// fakeCategoryRepo serves a fixed catalog; only FindByIDs matters here.
type fakeCategoryRepo struct {
	catalog map[uuid.UUID]*entity.Category
}

func (f *fakeCategoryRepo) Create(context.Context, *entity.Category) error        { return nil }
func (f *fakeCategoryRepo) CreateMany(context.Context, []*entity.Category) error  { return nil }
func (f *fakeCategoryRepo) Update(context.Context, *entity.Category) error        { return nil }
func (f *fakeCategoryRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error    { return nil }
func (f *fakeCategoryRepo) Templates(context.Context) ([]*entity.CategoryTemplate, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id, _ uuid.UUID) (*entity.Category, error) {
	if c, ok := f.catalog[id]; ok {
		return c, nil
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) FindByIDs(_ context.Context, _ uuid.UUID, ids []uuid.UUID) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, id := range ids {
		if c, ok := f.catalog[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) ExistsByNormalizedTitle(context.Context, uuid.UUID, string, *uuid.UUID) (bool, error) {
	return false, nil
}

func newCategory(name string) *entity.Category {
	return entity.NewCategory(uuid.New(), name, nil, entity.DefaultCategoryIconKey, entity.DefaultCategoryColorKey)
}

func TestGetSummaryUseCase(t *testing.T) {
	userID := uuid.New()
	groceries := newCategory("Mercado")
	salary := newCategory("Salário")

	t.Run("composes balance, period sums, and buckets", func(t *testing.T) {
		dashboardRepo := &fakeDashboardRepo{
			allTimeSums: TypeSums{IncomeCents: 1000000, ExpenseCents: 400000},
			periodSums:  TypeSums{IncomeCents: 500000, ExpenseCents: 120000},
			grouped: []CategoryTypeRow{
				{CategoryID: groceries.ID, Type: entity.TransactionTypeExpense, Count: 3, SumCents: 90000},
				{CategoryID: salary.ID, Type: entity.TransactionTypeIncome, Count: 1, SumCents: 500000},
			},
		}
		categoryRepo := &fakeCategoryRepo{catalog: map[uuid.UUID]*entity.Category{
			groceries.ID: groceries,
			salary.ID:    salary,
		}}

		uc := NewGetSummaryUseCase(dashboardRepo, categoryRepo)
		output, err := uc.Execute(context.Background(), GetSummaryInput{
			UserID: userID,
			Period: "2025-05",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Period != "2025-05" {
			t.Errorf("expected period 2025-05, got %s", output.Period)
		}
		if got := output.BalanceTotal.String(); got != "6000" {
			t.Errorf("expected balance 6000, got %s", got)
		}
		if got := output.MonthIncome.String(); got != "5000" {
			t.Errorf("expected month income 5000, got %s", got)
		}
		if got := output.MonthExpense.String(); got != "1200" {
			t.Errorf("expected month expense 1200, got %s", got)
		}

		if len(output.Categories) != 2 {
			t.Fatalf("expected 2 category summaries, got %d", len(output.Categories))
		}
		// Expense-heavy category sorts first.
		if output.Categories[0].Category.ID != groceries.ID {
			t.Errorf("expected groceries first, got %s", output.Categories[0].Category.Name)
		}
		if got := output.Categories[0].Expense.String(); got != "900" {
			t.Errorf("expected groceries expense 900, got %s", got)
		}
		if got := output.Categories[0].Total.String(); got != "-900" {
			t.Errorf("expected groceries total -900, got %s", got)
		}
		if got := output.Categories[1].Total.String(); got != "5000" {
			t.Errorf("expected salary total 5000, got %s", got)
		}

		wantFrom := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
		wantBefore := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
		if !dashboardRepo.periodFrom.Equal(wantFrom) || !dashboardRepo.periodBefore.Equal(wantBefore) {
			t.Errorf("expected bounds [%v, %v), got [%v, %v)",
				wantFrom, wantBefore, dashboardRepo.periodFrom, dashboardRepo.periodBefore)
		}
	})

	t.Run("drops buckets whose category disappeared", func(t *testing.T) {
		deleted := uuid.New()
		dashboardRepo := &fakeDashboardRepo{
			grouped: []CategoryTypeRow{
				{CategoryID: groceries.ID, Type: entity.TransactionTypeExpense, Count: 2, SumCents: 5000},
				{CategoryID: deleted, Type: entity.TransactionTypeExpense, Count: 1, SumCents: 99999},
			},
		}
		categoryRepo := &fakeCategoryRepo{catalog: map[uuid.UUID]*entity.Category{
			groceries.ID: groceries,
		}}

		uc := NewGetSummaryUseCase(dashboardRepo, categoryRepo)
		output, err := uc.Execute(context.Background(), GetSummaryInput{UserID: userID, Period: "2025-05"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Categories) != 1 {
			t.Fatalf("expected 1 category summary, got %d", len(output.Categories))
		}
		if output.Categories[0].Category.ID != groceries.ID {
			t.Errorf("expected groceries, got %s", output.Categories[0].Category.ID)
		}
	})

	t.Run("defaults the recent limit", func(t *testing.T) {
		dashboardRepo := &fakeDashboardRepo{}
		uc := NewGetSummaryUseCase(dashboardRepo, &fakeCategoryRepo{})

		if _, err := uc.Execute(context.Background(), GetSummaryInput{UserID: userID, Period: "2025-05"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dashboardRepo.recentLimit != DefaultRecentLimit {
			t.Errorf("expected recent limit %d, got %d", DefaultRecentLimit, dashboardRepo.recentLimit)
		}
	})

	t.Run("rejects out-of-range recent limits", func(t *testing.T) {
		uc := NewGetSummaryUseCase(&fakeDashboardRepo{}, &fakeCategoryRepo{})
		for _, limit := range []int{0, -1, MaxRecentLimit + 1} {
			l := limit
			_, err := uc.Execute(context.Background(), GetSummaryInput{
				UserID:      userID,
				Period:      "2025-05",
				RecentLimit: &l,
			})
			if err == nil {
				t.Errorf("recentLimit %d: expected error", limit)
			}
		}
	})

	t.Run("rejects malformed periods", func(t *testing.T) {
		uc := NewGetSummaryUseCase(&fakeDashboardRepo{}, &fakeCategoryRepo{})
		_, err := uc.Execute(context.Background(), GetSummaryInput{UserID: userID, Period: "2025-99"})
		if !errors.Is(err, domainerror.ErrInvalidPeriod) {
			t.Errorf("expected ErrInvalidPeriod, got %v", err)
		}
	})

	t.Run("storage failure surfaces as error", func(t *testing.T) {
		dashboardRepo := &fakeDashboardRepo{err: errors.New("connection reset")}
		uc := NewGetSummaryUseCase(dashboardRepo, &fakeCategoryRepo{})

		_, err := uc.Execute(context.Background(), GetSummaryInput{UserID: userID, Period: "2025-05"})
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("inconsistent stored sums surface as internal error", func(t *testing.T) {
		dashboardRepo := &fakeDashboardRepo{
			allTimeSums: TypeSums{IncomeCents: -10},
		}
		uc := NewGetSummaryUseCase(dashboardRepo, &fakeCategoryRepo{})

		_, err := uc.Execute(context.Background(), GetSummaryInput{UserID: userID, Period: "2025-05"})
		if !errors.Is(err, domainerror.ErrInternalInconsistency) {
			t.Errorf("expected ErrInternalInconsistency, got %v", err)
		}
	})
}
