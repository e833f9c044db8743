package transaction

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/financy/backend/internal/domain/error"
	"github.com/financy/backend/internal/domain/entity"
)

func intPtr(v int) *int { return &v }

func TestBuildQuery(t *testing.T) {
	userID := uuid.New()

	t.Run("empty query applies defaults", func(t *testing.T) {
		filter, window, err := BuildQuery(userID, Query{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if filter.UserID != userID {
			t.Errorf("expected user %s, got %s", userID, filter.UserID)
		}
		if filter.Search != "" || filter.Type != nil || filter.CategoryID != nil {
			t.Error("expected no filters for an empty query")
		}
		if filter.OccurredFrom != nil || filter.OccurredBefore != nil {
			t.Error("expected no period bounds for an empty query")
		}
		if window.Skip != 0 || window.Take != DefaultPerPage {
			t.Errorf("expected window {0, %d}, got {%d, %d}", DefaultPerPage, window.Skip, window.Take)
		}
	})

	t.Run("computes the pagination window", func(t *testing.T) {
		// Page 2 of 27 records at 10 per page: records 11-20.
		_, window, err := BuildQuery(userID, Query{Page: intPtr(2), PerPage: intPtr(10)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if window.Skip != 10 || window.Take != 10 {
			t.Errorf("expected window {10, 10}, got {%d, %d}", window.Skip, window.Take)
		}
	})

	t.Run("caps perPage at the maximum", func(t *testing.T) {
		_, window, err := BuildQuery(userID, Query{Page: intPtr(2), PerPage: intPtr(500)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if window.Take != MaxPerPage {
			t.Errorf("expected take %d, got %d", MaxPerPage, window.Take)
		}
		if window.Skip != MaxPerPage {
			t.Errorf("expected skip %d, got %d", MaxPerPage, window.Skip)
		}
	})

	t.Run("rejects page or perPage below one", func(t *testing.T) {
		cases := []Query{
			{Page: intPtr(0)},
			{Page: intPtr(-1)},
			{PerPage: intPtr(0)},
			{PerPage: intPtr(-5)},
		}
		for _, q := range cases {
			_, _, err := BuildQuery(userID, q)
			if !errors.Is(err, domainerror.ErrInvalidPagination) {
				t.Errorf("BuildQuery(%+v): expected ErrInvalidPagination, got %v", q, err)
			}
		}
	})

	t.Run("normalizes the search term", func(t *testing.T) {
		filter, _, err := BuildQuery(userID, Query{Search: "  coffee   shop "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if filter.Search != "coffee shop" {
			t.Errorf("expected %q, got %q", "coffee shop", filter.Search)
		}
	})

	t.Run("whitespace-only search means no filter", func(t *testing.T) {
		filter, _, err := BuildQuery(userID, Query{Search: "   "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if filter.Search != "" {
			t.Errorf("expected empty search, got %q", filter.Search)
		}
	})

	t.Run("all sentinel disables type and category filters", func(t *testing.T) {
		filter, _, err := BuildQuery(userID, Query{Type: "all", CategoryID: "all"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if filter.Type != nil {
			t.Error("expected no type filter for the all sentinel")
		}
		if filter.CategoryID != nil {
			t.Error("expected no category filter for the all sentinel")
		}
	})

	t.Run("type filter is case-insensitive", func(t *testing.T) {
		filter, _, err := BuildQuery(userID, Query{Type: "income"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if filter.Type == nil || *filter.Type != entity.TransactionTypeIncome {
			t.Errorf("expected INCOME filter, got %v", filter.Type)
		}
	})

	t.Run("rejects unknown type tokens", func(t *testing.T) {
		_, _, err := BuildQuery(userID, Query{Type: "TRANSFER"})
		if !errors.Is(err, domainerror.ErrInvalidTransactionType) {
			t.Errorf("expected ErrInvalidTransactionType, got %v", err)
		}
	})

	t.Run("parses a category id filter", func(t *testing.T) {
		categoryID := uuid.New()
		filter, _, err := BuildQuery(userID, Query{CategoryID: categoryID.String()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if filter.CategoryID == nil || *filter.CategoryID != categoryID {
			t.Errorf("expected category %s, got %v", categoryID, filter.CategoryID)
		}
	})

	t.Run("rejects malformed category ids", func(t *testing.T) {
		_, _, err := BuildQuery(userID, Query{CategoryID: "not-a-uuid"})
		if !errors.Is(err, domainerror.ErrInvalidCategoryFilter) {
			t.Errorf("expected ErrInvalidCategoryFilter, got %v", err)
		}
	})

	t.Run("period resolves to half-open bounds", func(t *testing.T) {
		filter, _, err := BuildQuery(userID, Query{Period: "2025-02"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantFrom := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
		wantBefore := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
		if filter.OccurredFrom == nil || !filter.OccurredFrom.Equal(wantFrom) {
			t.Errorf("expected from %v, got %v", wantFrom, filter.OccurredFrom)
		}
		if filter.OccurredBefore == nil || !filter.OccurredBefore.Equal(wantBefore) {
			t.Errorf("expected before %v, got %v", wantBefore, filter.OccurredBefore)
		}
	})

	t.Run("rejects malformed period tokens", func(t *testing.T) {
		_, _, err := BuildQuery(userID, Query{Period: "2025-13"})
		if !errors.Is(err, domainerror.ErrInvalidPeriod) {
			t.Errorf("expected ErrInvalidPeriod, got %v", err)
		}
	})
}
