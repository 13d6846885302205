package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/suk-6/pickr-server/domain"
)

// NewRedis creates a redis client for the volatile store
func NewRedis(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
}

// RedisStore implements domain.VolatileStore on a redis client. Expiry is
// delegated to redis key TTLs, so expired values simply read as absent.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new redis-backed volatile store
func NewRedisStore(client *redis.Client) domain.VolatileStore {
	return &RedisStore{client: client}
}

// Set implements domain.VolatileStore
func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

// Get implements domain.VolatileStore
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", domain.ErrValueNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Delete implements domain.VolatileStore
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
