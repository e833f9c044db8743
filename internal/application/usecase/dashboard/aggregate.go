// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/financy/backend/internal/domain/entity"
	domainerror "github.com/financy/backend/internal/domain/error"
	"github.com/financy/backend/internal/domain/valueobject"
)

// Bucket accumulates count, income, and expense cents for one category
// during aggregation. Sums only ever grow; they are never negative.
type Bucket struct {
	CategoryID   uuid.UUID
	Count        int64
	IncomeCents  int64
	ExpenseCents int64
}

// NetCents returns the signed net of the bucket (income minus expense).
func (b Bucket) NetCents() int64 {
	return b.IncomeCents - b.ExpenseCents
}

// balanceCents computes the all-time balance from type sums: income minus
// expense, still in cents. Conversion to decimal happens once, at the end.
func balanceCents(sums TypeSums) int64 {
	return sums.IncomeCents - sums.ExpenseCents
}

// checkTypeSums validates sums read back from storage. Malformed stored
// data surfaces as an internal inconsistency, never as a silent zero.
func checkTypeSums(sums TypeSums) error {
	if err := valueobject.CheckStoredCents(sums.IncomeCents); err != nil {
		return fmt.Errorf("income sum: %w", err)
	}
	if err := valueobject.CheckStoredCents(sums.ExpenseCents); err != nil {
		return fmt.Errorf("expense sum: %w", err)
	}
	return nil
}

// foldCategoryRows reduces raw (category, type) group-by rows into one
// bucket per category, sorted by expense cents descending. The sort is
// stable: categories with equal expense keep their fold order, so repeated
// runs over identical input produce identical output.
func foldCategoryRows(rows []CategoryTypeRow) ([]Bucket, error) {
	byCategory := make(map[uuid.UUID]int, len(rows))
	buckets := make([]Bucket, 0, len(rows))

	for _, row := range rows {
		if err := valueobject.CheckStoredCents(row.SumCents); err != nil {
			return nil, fmt.Errorf("category %s %s sum: %w", row.CategoryID, row.Type, err)
		}

		idx, ok := byCategory[row.CategoryID]
		if !ok {
			idx = len(buckets)
			byCategory[row.CategoryID] = idx
			buckets = append(buckets, Bucket{CategoryID: row.CategoryID})
		}

		buckets[idx].Count += row.Count
		switch row.Type {
		case entity.TransactionTypeIncome:
			buckets[idx].IncomeCents += row.SumCents
		case entity.TransactionTypeExpense:
			buckets[idx].ExpenseCents += row.SumCents
		default:
			// An unrecognized type means corrupted rows; dropping the cents
			// here would understate the sums without a trace.
			return nil, fmt.Errorf("category %s: unknown type %q: %w",
				row.CategoryID, row.Type, domainerror.ErrInternalInconsistency)
		}
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].ExpenseCents > buckets[j].ExpenseCents
	})

	return buckets, nil
}
