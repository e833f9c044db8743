// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/financy/backend/internal/application/adapter"
	domainerror "github.com/financy/backend/internal/domain/error"
	"github.com/financy/backend/internal/domain/entity"
	"github.com/financy/backend/internal/domain/valueobject"
)

const (
	// DefaultRecentLimit is the number of recent transactions returned when
	// the caller does not ask for a specific count.
	DefaultRecentLimit = 5
	// MaxRecentLimit bounds the recent transactions request.
	MaxRecentLimit = 50
)

// GetSummaryInput represents the input for the dashboard summary.
type GetSummaryInput struct {
	UserID      uuid.UUID
	Period      string // Optional YYYY-MM token; blank means current month
	RecentLimit *int   // Optional, defaults to DefaultRecentLimit
}

// CategorySummary is one category's aggregated view for the period.
// Total is signed: positive when the category netted income, negative when
// it netted expense.
type CategorySummary struct {
	Category          *entity.Category
	TransactionsCount int64
	Total             decimal.Decimal
	Income            decimal.Decimal
	Expense           decimal.Decimal
}

// GetSummaryOutput is the consolidated dashboard view.
type GetSummaryOutput struct {
	Period             string
	BalanceTotal       decimal.Decimal
	MonthIncome        decimal.Decimal
	MonthExpense       decimal.Decimal
	RecentTransactions []*entity.TransactionWithCategory
	Categories         []CategorySummary
}

// GetSummaryUseCase composes the dashboard summary: period resolution,
// fan-out aggregation, and category enrichment. It holds no state between
// requests.
type GetSummaryUseCase struct {
	dashboardRepo Repository
	categoryRepo  adapter.CategoryRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(dashboardRepo Repository, categoryRepo adapter.CategoryRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		dashboardRepo: dashboardRepo,
		categoryRepo:  categoryRepo,
	}
}

// Execute builds the dashboard summary for one user and period.
//
// The four aggregate reads have no data dependency on each other and are
// issued concurrently; the first failure cancels the rest via the group
// context and surfaces as the request error.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	period, err := valueobject.ResolvePeriod(input.Period)
	if err != nil {
		return nil, err
	}

	recentLimit := DefaultRecentLimit
	if input.RecentLimit != nil {
		recentLimit = *input.RecentLimit
	}
	if recentLimit < 1 || recentLimit > MaxRecentLimit {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionInput,
			fmt.Sprintf("recentLimit must be between 1 and %d", MaxRecentLimit),
			domainerror.ErrInvalidPagination,
		)
	}

	var (
		allTimeSums TypeSums
		periodSums  TypeSums
		recent      []*entity.TransactionWithCategory
		grouped     []CategoryTypeRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		allTimeSums, err = uc.dashboardRepo.SumByType(gctx, input.UserID, nil, nil)
		return err
	})
	g.Go(func() error {
		var err error
		periodSums, err = uc.dashboardRepo.SumByType(gctx, input.UserID, &period.Start, &period.End)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = uc.dashboardRepo.FindRecent(gctx, input.UserID, recentLimit)
		return err
	})
	g.Go(func() error {
		var err error
		grouped, err = uc.dashboardRepo.GroupByCategoryAndType(gctx, input.UserID, period.Start, period.End)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to aggregate dashboard data: %w", err)
	}

	if err := checkTypeSums(allTimeSums); err != nil {
		return nil, err
	}
	if err := checkTypeSums(periodSums); err != nil {
		return nil, err
	}

	buckets, err := foldCategoryRows(grouped)
	if err != nil {
		return nil, err
	}

	categories, err := uc.enrich(ctx, input.UserID, buckets)
	if err != nil {
		return nil, err
	}

	return &GetSummaryOutput{
		Period:             period.Label,
		BalanceTotal:       valueobject.FromCents(balanceCents(allTimeSums)),
		MonthIncome:        valueobject.FromCents(periodSums.IncomeCents),
		MonthExpense:       valueobject.FromCents(periodSums.ExpenseCents),
		RecentTransactions: recent,
		Categories:         categories,
	}, nil
}

// enrich joins aggregation buckets with the user's category catalog.
// A bucket whose category was deleted between aggregation and this lookup
// is dropped silently: deletions race safely with in-flight summaries.
func (uc *GetSummaryUseCase) enrich(ctx context.Context, userID uuid.UUID, buckets []Bucket) ([]CategorySummary, error) {
	if len(buckets) == 0 {
		return []CategorySummary{}, nil
	}

	ids := make([]uuid.UUID, len(buckets))
	for i, b := range buckets {
		ids[i] = b.CategoryID
	}

	catalog, err := uc.categoryRepo.FindByIDs(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	byID := make(map[uuid.UUID]*entity.Category, len(catalog))
	for _, c := range catalog {
		byID[c.ID] = c
	}

	summaries := make([]CategorySummary, 0, len(buckets))
	for _, b := range buckets {
		category, ok := byID[b.CategoryID]
		if !ok {
			continue
		}
		summaries = append(summaries, CategorySummary{
			Category:          category,
			TransactionsCount: b.Count,
			Total:             valueobject.FromCents(b.NetCents()),
			Income:            valueobject.FromCents(b.IncomeCents),
			Expense:           valueobject.FromCents(b.ExpenseCents),
		})
	}

	return summaries, nil
}
