package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Store wraps the Redis client with the JSON record conventions shared by
// every repository: one JSON document per key, no TTL (content is permanent),
// an id list per kind for enumeration.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis-backed content store.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// getJSON reads and unmarshals one key. Absence is a normal outcome reported
// through the boolean, not an error.
func (s *Store) getJSON(ctx context.Context, key string, dest any) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}

// setJSON marshals and writes one key, overwriting any previous value.
func (s *Store) setJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// mgetRaw bulk-reads keys, returning nil entries for absent ones.
func (s *Store) mgetRaw(ctx context.Context, keys []string) ([][]byte, error) {
	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to multi-get records: %w", err)
	}
	out := make([][]byte, len(vals))
	for i, v := range vals {
		if str, ok := v.(string); ok {
			out[i] = []byte(str)
		}
	}
	return out, nil
}
