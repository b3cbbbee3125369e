package auth

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/identity"
	"github.com/redis/go-redis/v9"
)

// revokedBefore reports whether a token issued at issuedAt predates the
// revocation. Token timestamps have second precision, so a token from the
// same second as the revocation counts as revoked.
func revokedBefore(issuedAt, revokedAt time.Time) bool {
	return !issuedAt.Truncate(time.Second).After(revokedAt.Truncate(time.Second))
}

// MemoryRevoker keeps revocations in process memory. Entries older than the
// token ttl can no longer match a live token and are pruned on write.
type MemoryRevoker struct {
	mu           sync.RWMutex
	revoked      map[string]time.Time
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

var _ identity.SessionRevoker = (*MemoryRevoker)(nil)

// NewMemoryRevoker creates a new MemoryRevoker
func NewMemoryRevoker(ttl time.Duration, timeProvider coreport.TimeProvider) *MemoryRevoker {
	return &MemoryRevoker{
		revoked:      make(map[string]time.Time),
		ttl:          ttl,
		timeProvider: timeProvider,
	}
}

// RevokeAll invalidates every token issued to uid up to now
func (r *MemoryRevoker) RevokeAll(_ context.Context, uid string) error {
	now := r.timeProvider.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	for k, at := range r.revoked {
		if now.Sub(at) > r.ttl {
			delete(r.revoked, k)
		}
	}
	r.revoked[uid] = now
	return nil
}

// IsRevoked reports whether a token issued at issuedAt was revoked
func (r *MemoryRevoker) IsRevoked(_ context.Context, uid string, issuedAt time.Time) (bool, error) {
	r.mu.RLock()
	at, ok := r.revoked[uid]
	r.mu.RUnlock()
	return ok && revokedBefore(issuedAt, at), nil
}

// RedisRevoker shares revocations between instances. Keys expire with the
// token ttl.
type RedisRevoker struct {
	client       redis.UniversalClient
	prefix       string
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

var _ identity.SessionRevoker = (*RedisRevoker)(nil)

// RedisOptions configures the redis connection
type RedisOptions struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// NewRedisRevoker connects to redis and checks the connection
func NewRedisRevoker(ctx context.Context, opts RedisOptions, ttl time.Duration, timeProvider coreport.TimeProvider) (*RedisRevoker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", opts.Addr, err)
	}
	return NewRedisRevokerWithClient(client, opts.KeyPrefix, ttl, timeProvider), nil
}

// NewRedisRevokerWithClient wraps an existing client
func NewRedisRevokerWithClient(client redis.UniversalClient, prefix string, ttl time.Duration, timeProvider coreport.TimeProvider) *RedisRevoker {
	return &RedisRevoker{
		client:       client,
		prefix:       prefix,
		ttl:          ttl,
		timeProvider: timeProvider,
	}
}

func (r *RedisRevoker) key(uid string) string {
	return r.prefix + "revoked:" + uid
}

// RevokeAll invalidates every token issued to uid up to now
func (r *RedisRevoker) RevokeAll(ctx context.Context, uid string) error {
	now := r.timeProvider.Now().Unix()
	if err := r.client.Set(ctx, r.key(uid), now, r.ttl).Err(); err != nil {
		return fmt.Errorf("storing revocation for %s: %w", uid, err)
	}
	return nil
}

// IsRevoked reports whether a token issued at issuedAt was revoked
func (r *RedisRevoker) IsRevoked(ctx context.Context, uid string, issuedAt time.Time) (bool, error) {
	val, err := r.client.Get(ctx, r.key(uid)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading revocation for %s: %w", uid, err)
	}

	secs, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return false, fmt.Errorf("corrupt revocation for %s: %w", uid, err)
	}
	return revokedBefore(issuedAt, time.Unix(secs, 0)), nil
}

// Close releases the redis connection
func (r *RedisRevoker) Close() error {
	return r.client.Close()
}
