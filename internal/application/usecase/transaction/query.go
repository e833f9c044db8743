// Package transaction contains transaction-related use cases.
package transaction

import (
	"strings"

	"github.com/google/uuid"

	"github.com/financy/backend/internal/application/adapter"
	domainerror "github.com/financy/backend/internal/domain/error"
	"github.com/financy/backend/internal/domain/entity"
	"github.com/financy/backend/internal/domain/valueobject"
)

const (
	// DefaultPerPage is the page size applied when the caller does not ask
	// for one.
	DefaultPerPage = 10
	// MaxPerPage caps the page size regardless of what the caller asks for.
	MaxPerPage = 100

	// FilterAll is the client-side sentinel meaning "no filter" for the
	// type and category selectors. It is not a real id.
	FilterAll = "all"
)

// Query is the raw transaction listing filter as received from the caller.
// All fields are optional; nil pagination fields take the defaults.
type Query struct {
	Search     string
	Type       string
	CategoryID string
	Period     string
	Page       *int
	PerPage    *int
}

// BuildQuery normalizes a Query into a storage predicate and pagination
// window scoped to the given user. It is a pure transformation: no storage
// calls, no side effects. Execution order guarantees (occurred_at descending,
// insertion-order tie-break) are the repository's contract.
func BuildQuery(userID uuid.UUID, q Query) (adapter.TransactionFilter, adapter.TransactionWindow, error) {
	filter := adapter.TransactionFilter{UserID: userID}
	window := adapter.TransactionWindow{}

	filter.Search = normalizeSearch(q.Search)

	if typeToken := strings.TrimSpace(q.Type); typeToken != "" && typeToken != FilterAll {
		transactionType := entity.TransactionType(strings.ToUpper(typeToken))
		if !transactionType.IsValid() {
			return filter, window, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"type must be INCOME or EXPENSE",
				domainerror.ErrInvalidTransactionType,
			)
		}
		filter.Type = &transactionType
	}

	if categoryToken := strings.TrimSpace(q.CategoryID); categoryToken != "" && categoryToken != FilterAll {
		categoryID, err := uuid.Parse(categoryToken)
		if err != nil {
			return filter, window, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidCategoryFilter,
				"categoryId must be a valid id or \"all\"",
				domainerror.ErrInvalidCategoryFilter,
			)
		}
		filter.CategoryID = &categoryID
	}

	if strings.TrimSpace(q.Period) != "" {
		period, err := valueobject.ResolvePeriod(q.Period)
		if err != nil {
			return filter, window, err
		}
		filter.OccurredFrom = &period.Start
		filter.OccurredBefore = &period.End
	}

	page := 1
	if q.Page != nil {
		page = *q.Page
	}
	perPage := DefaultPerPage
	if q.PerPage != nil {
		perPage = *q.PerPage
	}
	if page < 1 || perPage < 1 {
		return filter, window, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidPagination,
			"page and perPage must be at least 1",
			domainerror.ErrInvalidPagination,
		)
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	window.Skip = (page - 1) * perPage
	window.Take = perPage

	return filter, window, nil
}

// normalizeSearch trims the search term and collapses inner whitespace;
// an empty result means no search filter.
func normalizeSearch(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}
