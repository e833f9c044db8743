// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/financy/backend/internal/domain/entity"
)

// TypeSums holds the cents totals of a transaction set split by type.
// The two sums are kept separate because the UI needs both signs.
type TypeSums struct {
	IncomeCents  int64
	ExpenseCents int64
}

// CategoryTypeRow is one raw group-by row from storage: the cents total and
// row count for one (category, type) pair. Rows exist only for non-null
// categories.
type CategoryTypeRow struct {
	CategoryID uuid.UUID
	Type       entity.TransactionType
	Count      int64
	SumCents   int64
}

// Repository defines the storage primitives the dashboard needs: filtered
// sums, a category group-by, and a recent-rows lookup. The dashboard never
// issues anything beyond these.
type Repository interface {
	// SumByType returns income and expense cents totals for the user's
	// transactions within [from, before). Nil bounds mean all-time.
	SumByType(ctx context.Context, userID uuid.UUID, from, before *time.Time) (TypeSums, error)

	// GroupByCategoryAndType returns one row per (category, type) pair for
	// the user's categorized transactions within [from, before).
	// Uncategorized transactions are excluded here (they still count toward
	// SumByType totals).
	GroupByCategoryAndType(ctx context.Context, userID uuid.UUID, from, before time.Time) ([]CategoryTypeRow, error)

	// FindRecent returns the user's most recent transactions with their
	// categories, newest first, regardless of period.
	FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.TransactionWithCategory, error)
}
