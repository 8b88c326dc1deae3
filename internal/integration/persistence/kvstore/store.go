// Package kvstore implements the repository interfaces over a Redis
// key-value store. The whole collection lives under one fixed key as a
// serialized JSON array; every mutation rebuilds and rewrites the full
// array, so array order is insertion order and readers never observe a
// partially written entity. An absent key means an empty collection.
package kvstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Fixed keys for the persisted collections.
const (
	habitsKey   = "tracker:habits"
	projectsKey = "tracker:projects"
	digestsKey  = "tracker:digests"
)

// Store wraps the Redis client shared by the key-value repositories.
type Store struct {
	client *redis.Client
}

// NewStore creates a new key-value store over the given Redis client.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// get reads the raw serialized collection under key. A missing key is not
// an error; it reports found=false.
func (s *Store) get(ctx context.Context, key string) (data []byte, found bool, err error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return raw, true, nil
}

// set rewrites the full serialized collection under key.
func (s *Store) set(ctx context.Context, key string, data []byte) error {
	return s.client.Set(ctx, key, data, 0).Err()
}
