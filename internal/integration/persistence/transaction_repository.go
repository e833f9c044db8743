// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/financy/backend/internal/application/adapter"
	"github.com/financy/backend/internal/domain/entity"
	domainerror "github.com/financy/backend/internal/domain/error"
	"github.com/financy/backend/internal/domain/valueobject"
	"github.com/financy/backend/internal/integration/persistence/model"
)

// transactionOrder is the stable listing order. The id tie-break keeps
// pagination deterministic when timestamps collide.
const transactionOrder = "occurred_at DESC, created_at DESC, id"

// likeEscaper neutralizes LIKE metacharacters so search terms match
// literally instead of acting as wildcards.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	return result.Error
}

// FindByID retrieves a transaction by its ID for the given user. A
// transaction owned by another user is reported as not found.
func (r *transactionRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByFilter retrieves transactions matching the filter plus the total
// match count ignoring the window.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, window adapter.TransactionWindow) (*entity.TransactionListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.TransactionModel{})

	query = query.Where("user_id = ?", filter.UserID)

	if filter.Search != "" {
		searchPattern := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		query = query.Where("LOWER(title) LIKE ? ESCAPE '\\'", searchPattern)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.OccurredFrom != nil {
		query = query.Where("occurred_at >= ?", *filter.OccurredFrom)
	}
	if filter.OccurredBefore != nil {
		query = query.Where("occurred_at < ?", *filter.OccurredBefore)
	}

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	var transactionModels []model.TransactionModel
	result := query.
		Preload("Category").
		Order(transactionOrder).
		Offset(window.Skip).
		Limit(window.Take).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.TransactionWithCategory, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntityWithCategory()
	}

	return &entity.TransactionListResult{
		Transactions: transactions,
		Total:        total,
	}, nil
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	// Save skips nil pointer fields, so clearing the category needs an
	// explicit column update.
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ? AND user_id = ?", transaction.ID, transaction.UserID).
		Select("title", "amount_cents", "type", "occurred_at", "category_id", "updated_at").
		Updates(map[string]any{
			"title":        transactionModel.Title,
			"amount_cents": transactionModel.AmountCents,
			"type":         transactionModel.Type,
			"occurred_at":  transactionModel.OccurredAt,
			"category_id":  transactionModel.CategoryID,
			"updated_at":   transactionModel.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction from the database with an ownership check.
func (r *transactionRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.TransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// ListPeriods returns the distinct YYYY-MM months holding the user's
// transactions with per-month counts, most recent month first. Months are
// derived in Go from the UTC timestamp so the grouping matches period
// resolution regardless of the database's date formatting dialect.
func (r *transactionRepository) ListPeriods(ctx context.Context, userID uuid.UUID) ([]entity.TransactionPeriod, error) {
	var rows []struct {
		OccurredAt time.Time
		Count      int64
	}
	// Grouping by the raw timestamp first keeps the transferred row count
	// at one per distinct instant rather than one per transaction.
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("occurred_at, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("occurred_at").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	counts := make(map[string]int64)
	for _, row := range rows {
		counts[valueobject.FormatPeriod(row.OccurredAt)] += row.Count
	}

	periods := make([]entity.TransactionPeriod, 0, len(counts))
	for label, count := range counts {
		periods = append(periods, entity.TransactionPeriod{Period: label, Count: count})
	}
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period > periods[j].Period
	})
	return periods, nil
}
