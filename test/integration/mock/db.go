// Package mock provides shared test doubles for the integration suite.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/financy/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory database holding the full application schema.
// One connection is kept open for the whole suite so the in-memory store
// survives between scenarios; Reset clears the rows instead.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens the shared test database, migrating the schema on first use.
func NewDb() *Db {
	dbOnce.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		panic(err)
	}
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDb := &Db{
		DbConn: dbConn,
		models: []any{
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.CategoryModel{},
			&model.CategoryTemplateModel{},
			&model.TransactionModel{},
		},
	}

	if err := dbConn.AutoMigrate(newDb.models...); err != nil {
		panic(fmt.Sprintf("failed to migrate test database. err: %s", err.Error()))
	}
	for _, m := range newDb.models {
		if !dbConn.Migrator().HasTable(m) {
			panic(fmt.Sprintf("table for model %T was not created", m))
		}
	}

	return newDb
}

// Reset removes every row from every table, keeping the schema. Tables are
// cleared in reverse declaration order so referencing rows go first.
func (d *Db) Reset() error {
	for i := len(d.models) - 1; i >= 0; i-- {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(d.models[i]).Error
		if err != nil {
			return err
		}
	}
	return nil
}
