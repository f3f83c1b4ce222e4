package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on Redis, for deployments where the
// service runs more than one replica behind the broker. Redis expires
// the key natively; the embedded ExpiresAt is still checked on read so
// behaviour matches the in-memory store exactly.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(redisURL string, ttl time.Duration) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

// pendingKey generates the Redis key for a session's staged action.
func (r *RedisStore) pendingKey(sessionID string) string {
	return fmt.Sprintf("pending:%s", sessionID)
}

// Stage overwrites the session's slot; SET with TTL makes the
// overwrite atomic per key.
func (r *RedisStore) Stage(ctx context.Context, sessionID string, action *PendingAction) error {
	now := time.Now()
	action.CreatedAt = now
	action.ExpiresAt = now.Add(r.ttl)

	data, err := json.Marshal(action)
	if err != nil {
		return fmt.Errorf("failed to marshal pending action: %w", err)
	}

	if err := r.client.Set(ctx, r.pendingKey(sessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save pending action to Redis: %w", err)
	}
	return nil
}

// Peek returns the session's pending action, or nil when the key is
// missing or the embedded expiry has passed.
func (r *RedisStore) Peek(ctx context.Context, sessionID string) (*PendingAction, error) {
	data, err := r.client.Get(ctx, r.pendingKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load pending action from Redis: %w", err)
	}

	var action PendingAction
	if err := json.Unmarshal([]byte(data), &action); err != nil {
		return nil, fmt.Errorf("failed to parse pending action: %w", err)
	}

	if !time.Now().Before(action.ExpiresAt) {
		_ = r.client.Del(ctx, r.pendingKey(sessionID)).Err()
		return nil, nil
	}
	return &action, nil
}

// Clear removes the session's slot.
func (r *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.pendingKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear pending action: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

// Ping verifies the Redis connection is alive.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
