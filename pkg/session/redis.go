package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStorage keeps items as plain redis strings under a key prefix, so
// several CLI hosts can share one signed-in session.
type RedisStorage struct {
	client *redis.Client
	prefix string
}

// NewRedisStorage wraps an existing client.
func NewRedisStorage(client *redis.Client, prefix string) *RedisStorage {
	return &RedisStorage{client: client, prefix: prefix}
}

func (r *RedisStorage) GetItem(ctx context.Context, key string) (string, error) {
	if r.client == nil {
		return "", ErrNotFound
	}
	v, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("redis get %s: %w", r.key(key), err)
	}
	return v, nil
}

func (r *RedisStorage) SetItem(ctx context.Context, key, value string) error {
	if r.client == nil {
		return errors.New("redis session storage has no client")
	}
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key(key), err)
	}
	return nil
}

func (r *RedisStorage) RemoveItem(ctx context.Context, key string) error {
	if r.client == nil {
		return nil
	}
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("redis delete %s: %w", r.key(key), err)
	}
	return nil
}

// Close releases the underlying connection.
func (r *RedisStorage) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}

func (r *RedisStorage) key(key string) string {
	return r.prefix + key
}
