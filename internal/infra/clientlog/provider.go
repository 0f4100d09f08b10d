// Package clientlog forwards client log entries to a remote observability sink.
package clientlog

import (
	"context"
	"log/slog"

	"cambaeats/config"
	"cambaeats/internal/domain/constants"
	"cambaeats/internal/domain/service"
	"cambaeats/internal/infra/backend"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopLogger only mirrors entries to the local log when no sink is configured
type noopLogger struct {
	logger *slog.Logger
}

func (l *noopLogger) Log(ctx context.Context, entry service.ClientLogEntry) {
	l.logger.Debug("[NoopClientLog] Remote logging disabled, skipping",
		slog.String("level", string(entry.Level)),
		slog.String("message", entry.Message),
	)
}

func (l *noopLogger) Close() error {
	return nil
}

// LoggerParams holds dependencies for ClientLogger, injected by Fx
type LoggerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Backend *backend.Client
}

// NewClientLogger creates a ClientLogger based on configuration
func NewClientLogger(params LoggerParams) (service.ClientLogger, error) {
	cfg := params.Config.ClientLog
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Client log sink not configured, using no-op logger")

		return &noopLogger{logger: logger}, nil
	}

	var (
		clientLogger service.ClientLogger
		err          error
	)

	switch cfg.Provider {
	case constants.ClientLogProviderHTTP:
		logger.Info("Using backend HTTP client log sink")

		clientLogger = NewHTTPLogger(params.Backend, logger)

	case constants.ClientLogProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub client log sink",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		clientLogger, err = NewGooglePubSubLogger(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown client log provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing client log sink")

			return clientLogger.Close()
		},
	})

	return clientLogger, nil
}

// Module provides the client log FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewClientLogger),
)
