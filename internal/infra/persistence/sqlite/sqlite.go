// Package sqlite opens the embedded database used for local development and tests.
package sqlite

import (
	"ucsbapi/internal/errors"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MemoryDSN is a private in-memory database that lives as long as its connection.
const MemoryDSN = "file::memory:"

// Open opens the SQLite database at dsn. GORM translates driver errors so
// constraint violations surface as gorm.ErrDuplicatedKey and friends.
func Open(dsn string, gormLogger logger.Interface) (*gorm.DB, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}

	cfg := &gorm.Config{TranslateError: true}
	if gormLogger != nil {
		cfg.Logger = gormLogger
	}

	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database %s", dsn)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sqlite sql.DB")
	}
	// SQLite allows a single writer, and each :memory: connection is its own database.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
