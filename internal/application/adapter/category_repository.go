// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/financy/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence
// operations. Every read and write is scoped to the owning user.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// CreateMany creates several categories in a single operation.
	CreateMany(ctx context.Context, categories []*entity.Category) error

	// FindByID retrieves a category by its ID for the given user.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error)

	// FindByIDs retrieves the user's categories matching the given ID set.
	// IDs that no longer exist are simply absent from the result.
	FindByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*entity.Category, error)

	// FindByUser retrieves all categories for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// ExistsByNormalizedTitle checks whether the user already has a category
	// with the given normalized title, optionally excluding one category
	// (the one being renamed).
	ExistsByNormalizedTitle(ctx context.Context, userID uuid.UUID, normalizedTitle string, excludeID *uuid.UUID) (bool, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category with an ownership check. Transactions that
	// reference it keep existing with a nulled category reference; the two
	// writes happen in one database transaction.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// Templates returns the global seed category templates, oldest first.
	Templates(ctx context.Context) ([]*entity.CategoryTemplate, error)
}
