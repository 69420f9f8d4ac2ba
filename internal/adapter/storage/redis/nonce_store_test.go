package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNonceStore(t *testing.T) *NonceStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewNonceStore(client)
}

func TestNonceStore_CheckAndSet_NewNonce(t *testing.T) {
	store := newNonceStore(t)

	ok, err := store.CheckAndSet(context.Background(), "nfc", "tx-abc", 24*time.Hour)
	require.NoError(t, err)
	assert.True(t, ok, "new payload id should return true")
}

func TestNonceStore_CheckAndSet_Replay(t *testing.T) {
	store := newNonceStore(t)
	ctx := context.Background()

	ok, err := store.CheckAndSet(ctx, "nfc", "tx-xyz", 24*time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.CheckAndSet(ctx, "nfc", "tx-xyz", 24*time.Hour)
	require.NoError(t, err)
	assert.False(t, ok, "replayed payload id should return false")
}

func TestNonceStore_CheckAndSet_ScopesAreIndependent(t *testing.T) {
	store := newNonceStore(t)
	ctx := context.Background()

	ok, err := store.CheckAndSet(ctx, "nfc", "tx-123", 24*time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.CheckAndSet(ctx, "bluetooth", "tx-123", 24*time.Hour)
	require.NoError(t, err)
	assert.True(t, ok, "same id under a different scope should be valid")
}

func TestNonceStore_CheckAndSet_ExpiredNonce(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()
	store := NewNonceStore(client)
	ctx := context.Background()

	ok, err := store.CheckAndSet(ctx, "nfc", "tx-expire", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(2 * time.Second)

	ok, err = store.CheckAndSet(ctx, "nfc", "tx-expire", time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "expired id should be accepted again")
}
