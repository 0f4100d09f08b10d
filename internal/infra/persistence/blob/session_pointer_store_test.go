package blob

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestSessionPointerStore_RoundTrip(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := NewSessionPointerStore(bucket, "cart-storage")
	ctx := context.Background()

	_, ok, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, "cart-1"))

	cartID, ok, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "cart-1", cartID)

	raw, err := bucket.ReadAll(ctx, "cart-storage.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"cartId": "cart-1"}`, string(raw))

	require.NoError(t, store.Clear(ctx))

	_, ok, err = store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	raw, err = bucket.ReadAll(ctx, "cart-storage.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"cartId": null}`, string(raw))
}

func TestSessionPointerStore_CorruptObject(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	ctx := context.Background()
	require.NoError(t, bucket.WriteAll(ctx, "cart-storage.json", []byte("not json"), nil))

	_, _, err := NewSessionPointerStore(bucket, "cart-storage").Load(ctx)

	assert.Error(t, err)
}

func TestSessionPointerProvider_IsolatesSessions(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	provider := NewSessionPointerProvider(bucket, "cart-storage")
	ctx := context.Background()

	require.NoError(t, provider.ForSession("s-1").Save(ctx, "cart-1"))

	_, ok, err := provider.ForSession("s-2").Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	cartID, ok, err := provider.ForSession("s-1").Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "cart-1", cartID)

	exists, err := bucket.Exists(ctx, "cart-storage/s-1.json")
	require.NoError(t, err)
	assert.True(t, exists)
}
