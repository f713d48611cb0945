package snapshot

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/abstractlayout/laf/pkg/laf"
)

// RedisStore is a Store backed by Redis, for deployments sharing snapshots
// across multiple CLI/server processes rather than a single machine's
// filesystem.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing redis client. The caller owns the
// client's lifecycle beyond Close, which only closes the connection this
// Store was given.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Put stores data for runID/phase with the given expiration (zero means
// no expiration).
func (s *RedisStore) Put(ctx context.Context, runID string, phase laf.PhaseID, data []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key(runID, phase), data, ttl).Err()
}

// Get retrieves the snapshot for runID/phase, returning (nil, false, nil)
// on a miss.
func (s *RedisStore) Get(ctx context.Context, runID string, phase laf.PhaseID) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, key(runID, phase)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Close closes the underlying redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
