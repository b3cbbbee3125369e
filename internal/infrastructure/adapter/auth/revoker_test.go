package auth

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	timeprovider "github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/time"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRevoker(t *testing.T) {
	ctx := context.Background()
	clock := timeprovider.NewFrozenTimeProvider(epoch)
	r := NewMemoryRevoker(time.Hour, clock)

	revoked, err := r.IsRevoked(ctx, "u1", epoch)
	require.NoError(t, err)
	assert.False(t, revoked)

	clock.Advance(10 * time.Second)
	require.NoError(t, r.RevokeAll(ctx, "u1"))

	revoked, _ = r.IsRevoked(ctx, "u1", epoch)
	assert.True(t, revoked, "token issued before revocation")

	revoked, _ = r.IsRevoked(ctx, "u1", epoch.Add(10*time.Second))
	assert.True(t, revoked, "token issued in the same second")

	revoked, _ = r.IsRevoked(ctx, "u1", epoch.Add(11*time.Second))
	assert.False(t, revoked, "token issued afterwards")

	revoked, _ = r.IsRevoked(ctx, "u2", epoch)
	assert.False(t, revoked)
}

func TestMemoryRevoker_PrunesExpired(t *testing.T) {
	ctx := context.Background()
	clock := timeprovider.NewFrozenTimeProvider(epoch)
	r := NewMemoryRevoker(time.Minute, clock)

	require.NoError(t, r.RevokeAll(ctx, "old"))
	clock.Advance(2 * time.Minute)
	require.NoError(t, r.RevokeAll(ctx, "new"))

	r.mu.RLock()
	defer r.mu.RUnlock()
	assert.NotContains(t, r.revoked, "old")
	assert.Contains(t, r.revoked, "new")
}

func newTestRedisRevoker(t *testing.T, clock *timeprovider.FrozenTimeProvider) (*RedisRevoker, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	r, err := NewRedisRevoker(context.Background(), RedisOptions{Addr: mr.Addr(), KeyPrefix: "test:"}, time.Hour, clock)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r, mr
}

func TestRedisRevoker(t *testing.T) {
	ctx := context.Background()
	clock := timeprovider.NewFrozenTimeProvider(epoch)
	r, mr := newTestRedisRevoker(t, clock)

	revoked, err := r.IsRevoked(ctx, "u1", epoch)
	require.NoError(t, err)
	assert.False(t, revoked)

	clock.Advance(5 * time.Second)
	require.NoError(t, r.RevokeAll(ctx, "u1"))

	assert.True(t, mr.Exists("test:revoked:u1"))
	assert.Equal(t, time.Hour, mr.TTL("test:revoked:u1"))

	revoked, err = r.IsRevoked(ctx, "u1", epoch)
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = r.IsRevoked(ctx, "u1", epoch.Add(6*time.Second))
	require.NoError(t, err)
	assert.False(t, revoked)

	mr.FastForward(2 * time.Hour)
	revoked, err = r.IsRevoked(ctx, "u1", epoch)
	require.NoError(t, err)
	assert.False(t, revoked, "revocation expires with the token ttl")
}

func TestRedisRevoker_CorruptValue(t *testing.T) {
	ctx := context.Background()
	clock := timeprovider.NewFrozenTimeProvider(epoch)
	r, mr := newTestRedisRevoker(t, clock)

	require.NoError(t, mr.Set("test:revoked:u1", "yesterday"))

	_, err := r.IsRevoked(ctx, "u1", epoch)
	assert.Error(t, err)
}

func TestNewRedisRevoker_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := NewRedisRevoker(ctx, RedisOptions{Addr: "127.0.0.1:1"}, time.Hour, timeprovider.NewFrozenTimeProvider(epoch))
	assert.Error(t, err)
}

func TestRedisRevoker_WithClient(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := NewRedisRevokerWithClient(client, "", time.Minute, timeprovider.NewFrozenTimeProvider(epoch))
	defer r.Close()

	require.NoError(t, r.RevokeAll(context.Background(), "u9"))
	assert.True(t, mr.Exists("revoked:u9"))
}
