package persistence

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/financy/backend/internal/domain/entity"
	"github.com/financy/backend/internal/integration/persistence/model"
)

// newTestDB opens an in-memory database with the full schema migrated.
// Foreign keys are switched on so constraint ordering bugs fail here the
// same way they would on Postgres.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.CategoryModel{},
		&model.CategoryTemplateModel{},
		&model.TransactionModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// newTestTransaction builds a transaction with a fixed creation timestamp so
// ordering tests stay deterministic.
func newTestTransaction(userID uuid.UUID, title string, amountCents int64, transactionType entity.TransactionType, occurredAt time.Time, categoryID *uuid.UUID) *entity.Transaction {
	transaction := entity.NewTransaction(userID, title, amountCents, transactionType, occurredAt, categoryID)
	transaction.CreatedAt = occurredAt
	transaction.UpdatedAt = occurredAt
	return transaction
}
