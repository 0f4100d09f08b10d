// Package persistence selects where session pointers are kept.
package persistence

import (
	"context"
	"log/slog"

	"cambaeats/config"
	"cambaeats/internal/domain/repository"
	blobstore "cambaeats/internal/infra/persistence/blob"
	"cambaeats/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
)

// ProviderParams holds dependencies for the session pointer provider, injected by Fx
type ProviderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewSessionPointerProvider opens the configured store
func NewSessionPointerProvider(params ProviderParams) (repository.SessionPointerProvider, error) {
	cfg := params.Config.Session
	logger := params.Logger

	switch cfg.Provider {
	case "", config.SessionProviderBlob:
		bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
		}
		logger.Info("Using blob session pointer store",
			slog.String("bucket_url", cfg.BucketURL),
			slog.String("key", cfg.Key),
		)

		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				logger.Info("Closing session pointer bucket")

				return bucket.Close()
			},
		})

		return blobstore.NewSessionPointerProvider(bucket, cfg.Key), nil

	case config.SessionProviderPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Using postgres session pointer store", slog.String("key", cfg.Key))

		return postgres.NewSessionPointerProvider(db, cfg.Key), nil

	default:
		return nil, errors.Errorf("unknown session provider: %s", cfg.Provider)
	}
}

// Module provides the session pointer FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSessionPointerProvider),
)
