// Package persistence selects and manages the database connection shared by the repositories.
package persistence

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"ucsbapi/config"
	"ucsbapi/internal/domain/lifecycle"
	"ucsbapi/internal/errors"
	"ucsbapi/internal/infra/persistence/model"
	"ucsbapi/internal/infra/persistence/postgres"
	"ucsbapi/internal/infra/persistence/sqlite"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured database and ties its lifetime to the fx app.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrapf(err, "failed to ping %s", params.Config.Database.Driver)
			}

			if params.Config.Database.AutoMigrate {
				if err := Migrate(ctx, db); err != nil {
					return err
				}
				params.Logger.Info("Database schema migrated", slog.String("driver", params.Config.Database.Driver))
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects to the driver named in cfg.Database without lifecycle hooks.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	gormLogger := postgres.NewGormLogger(logger, cfg.Env.Debug)

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err = sqlite.Open(cfg.Database.SQLitePath, gormLogger)
	case config.DriverPostgres, "":
		db, err = postgres.Open(cfg)
	default:
		return nil, errors.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, err
	}

	return db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// Multi-step operations use explicit transactions via TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 gormLogger,
	}), nil
}

// Migrate creates or updates the tables of every resource.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate database schema")
	}

	return nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Database pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Database pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
