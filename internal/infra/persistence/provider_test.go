package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"cambaeats/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewSessionPointerProvider_Blob(t *testing.T) {
	cfg := &config.Config{}
	cfg.Session = config.SessionConfig{Provider: config.SessionProviderBlob, BucketURL: "mem://", Key: "cart-storage"}
	lc := fxtest.NewLifecycle(t)

	provider, err := NewSessionPointerProvider(ProviderParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	lc.RequireStart()
	defer lc.RequireStop()

	store := provider.ForSession("s-1")
	require.NoError(t, store.Save(context.Background(), "cart-1"))
	cartID, ok, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "cart-1", cartID)
}

func TestNewSessionPointerProvider_Unknown(t *testing.T) {
	cfg := &config.Config{}
	cfg.Session.Provider = "redis"

	_, err := NewSessionPointerProvider(ProviderParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.ErrorContains(t, err, "unknown session provider")
}

func TestNewSessionPointerProvider_PostgresRequiresConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Session.Provider = config.SessionProviderPostgres

	_, err := NewSessionPointerProvider(ProviderParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.Error(t, err)
}
