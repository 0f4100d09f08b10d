package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(pgDriver.New(pgDriver.Config{
		DSN: "host=localhost user=cambaeats dbname=cambaeats sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db
}

func TestSessionPointerRepository_UpsertSQL(t *testing.T) {
	db := newDryRunDB(t)
	repo := &sessionPointerRepository{db: db, key: "cart-storage/s-1"}
	cartID := "cart-1"

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return repo.upsert(tx, &cartID)
	})

	assert.Contains(t, sql, `INSERT INTO "session_pointers"`)
	assert.Contains(t, sql, `'cart-storage/s-1'`)
	assert.Contains(t, sql, `'cart-1'`)
	assert.Contains(t, sql, `ON CONFLICT ("session_key") DO UPDATE SET`)
	assert.Contains(t, sql, `"cart_id"="excluded"."cart_id"`)
}

func TestSessionPointerRepository_ClearWritesNull(t *testing.T) {
	db := newDryRunDB(t)
	repo := &sessionPointerRepository{db: db, key: "cart-storage/s-1"}

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return repo.upsert(tx, nil)
	})

	assert.Contains(t, sql, "NULL")
}

func TestSessionPointerProvider_ScopesKeys(t *testing.T) {
	provider := NewSessionPointerProvider(newDryRunDB(t), "cart-storage")

	store, ok := provider.ForSession("s-42").(*sessionPointerRepository)

	require.True(t, ok)
	assert.Equal(t, "cart-storage/s-42", store.key)
}
