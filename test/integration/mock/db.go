// Package mock provides in-process test doubles for integration tests.
package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory sqlite connection. The test server and the
// step assertions must see the same rows, so the connection is a singleton
// limited to a single open conn.
type Db struct {
	Conn   *gorm.DB
	models []any
}

// NewDb opens the shared in-memory database and migrates the given models.
// Subsequent calls return the same instance regardless of arguments.
func NewDb(models ...any) *Db {
	dbOnce.Do(func() {
		db = open(models)
	})
	return db
}

func open(models []any) *Db {
	sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	sqlDB.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to open test database. err: " + err.Error())
	}

	if err := conn.AutoMigrate(models...); err != nil {
		panic("failed to migrate test database. err: " + err.Error())
	}

	return &Db{
		Conn:   conn,
		models: models,
	}
}

// Reset deletes every row from every registered model's table.
func (d *Db) Reset() error {
	for _, m := range d.models {
		err := d.Conn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of rows in the given model's table.
func (d *Db) Count(model any) (int64, error) {
	var count int64
	if err := d.Conn.Model(model).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
