package postgres

import (
	"ucsbapi/config"
	"ucsbapi/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

// Open connects to the PostgreSQL primary and any configured read replicas.
func Open(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	return db, nil
}
