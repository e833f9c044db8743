// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/financy/backend/internal/domain/entity"
)

// TransactionFilter is the normalized predicate for transaction queries.
// Every field except UserID is optional; nil/empty means "no filter".
// It is produced by the transaction query builder and consumed verbatim by
// the storage layer, so that filtering semantics live in exactly one place.
type TransactionFilter struct {
	UserID         uuid.UUID
	Search         string // Case-insensitive substring match on title
	Type           *entity.TransactionType
	CategoryID     *uuid.UUID
	OccurredFrom   *time.Time // Inclusive
	OccurredBefore *time.Time // Exclusive
}

// TransactionWindow is the pagination window for transaction queries.
type TransactionWindow struct {
	Skip int
	Take int
}

// TransactionRepository defines the interface for transaction persistence
// operations. Every read and write is scoped to the owning user.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID for the given user.
	// A transaction owned by another user is reported as not found.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, ordered by
	// occurred_at descending with ties broken by insertion order, plus the
	// total match count ignoring the window.
	FindByFilter(ctx context.Context, filter TransactionFilter, window TransactionWindow) (*entity.TransactionListResult, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database with an ownership check.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// ListPeriods returns the distinct YYYY-MM months holding the user's
	// transactions with per-month counts, most recent month first.
	ListPeriods(ctx context.Context, userID uuid.UUID) ([]entity.TransactionPeriod, error)
}
