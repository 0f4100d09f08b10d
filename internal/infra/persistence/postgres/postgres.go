// Package postgres keeps session pointers in PostgreSQL through GORM.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"cambaeats/config"
	"cambaeats/internal/domain/lifecycle"
	"cambaeats/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const poolStatsInterval = 30 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL connection and makes sure the session_pointers table exists
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is required for the postgres session provider")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Every write is a single upsert.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	statsCtx, stopStats := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if err := db.WithContext(ctx).AutoMigrate(&model.SessionPointerModel{}); err != nil {
				return errors.Wrap(err, "failed to migrate session_pointers")
			}

			go logPoolStats(statsCtx, params.Logger, sqlDB, poolStatsInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopStats()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// logPoolStats reports pool pressure whenever callers had to wait for a connection.
func logPoolStats(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prevWaits := sqlDB.Stats().WaitCount
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := sqlDB.Stats()
			if waits := stats.WaitCount - prevWaits; waits > 0 {
				logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool saturated",
					slog.Int64("waits", waits),
					slog.Int("open", stats.OpenConnections),
					slog.Int("in_use", stats.InUse),
					slog.Int("max_open", stats.MaxOpenConnections),
				)
			}
			prevWaits = stats.WaitCount
		}
	}
}
