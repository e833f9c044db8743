// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/financy/backend/internal/application/usecase/dashboard"
	"github.com/financy/backend/internal/domain/entity"
	"github.com/financy/backend/internal/integration/persistence/model"
)

// dashboardRepository implements the dashboard.Repository interface.
// All aggregation happens in SQL; only the folded rows cross the wire.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.Repository {
	return &dashboardRepository{
		db: db,
	}
}

// SumByType returns income and expense cents totals for the user's
// transactions within [from, before). Nil bounds mean all-time.
func (r *dashboardRepository) SumByType(ctx context.Context, userID uuid.UUID, from, before *time.Time) (dashboard.TypeSums, error) {
	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("user_id = ?", userID)

	if from != nil {
		query = query.Where("occurred_at >= ?", *from)
	}
	if before != nil {
		query = query.Where("occurred_at < ?", *before)
	}

	var row struct {
		IncomeCents  int64
		ExpenseCents int64
	}
	result := query.
		Select(
			"COALESCE(SUM(CASE WHEN type = ? THEN amount_cents ELSE 0 END), 0) AS income_cents, "+
				"COALESCE(SUM(CASE WHEN type = ? THEN amount_cents ELSE 0 END), 0) AS expense_cents",
			string(entity.TransactionTypeIncome), string(entity.TransactionTypeExpense),
		).
		Scan(&row)
	if result.Error != nil {
		return dashboard.TypeSums{}, result.Error
	}

	return dashboard.TypeSums{
		IncomeCents:  row.IncomeCents,
		ExpenseCents: row.ExpenseCents,
	}, nil
}

// GroupByCategoryAndType returns one row per (category, type) pair for the
// user's categorized transactions within [from, before). Uncategorized
// transactions and rows with an unrecognized type are excluded here.
func (r *dashboardRepository) GroupByCategoryAndType(ctx context.Context, userID uuid.UUID, from, before time.Time) ([]dashboard.CategoryTypeRow, error) {
	var rows []struct {
		CategoryID uuid.UUID
		Type       string
		Count      int64
		SumCents   int64
	}
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("category_id, type, COUNT(*) AS count, COALESCE(SUM(amount_cents), 0) AS sum_cents").
		Where("user_id = ? AND category_id IS NOT NULL", userID).
		Where("type IN ?", []string{
			string(entity.TransactionTypeIncome),
			string(entity.TransactionTypeExpense),
		}).
		Where("occurred_at >= ? AND occurred_at < ?", from, before).
		Group("category_id, type").
		Order("category_id, type").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	out := make([]dashboard.CategoryTypeRow, len(rows))
	for i, row := range rows {
		out[i] = dashboard.CategoryTypeRow{
			CategoryID: row.CategoryID,
			Type:       entity.TransactionType(row.Type),
			Count:      row.Count,
			SumCents:   row.SumCents,
		}
	}
	return out, nil
}

// FindRecent returns the user's most recent transactions with their
// categories, newest first, regardless of period.
func (r *dashboardRepository) FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.TransactionWithCategory, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Order(transactionOrder).
		Limit(limit).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.TransactionWithCategory, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntityWithCategory()
	}
	return transactions, nil
}
