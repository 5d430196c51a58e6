package session

import (
	"context"
	"fmt"

	"github.com/noah-isme/unigov-client/pkg/cache"
	"github.com/noah-isme/unigov-client/pkg/config"
)

// Open builds the storage selected by cfg.Session.Driver.
func Open(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.Session.Driver {
	case "", config.SessionDriverFile:
		return NewFileStorage(cfg.Session.File), nil
	case config.SessionDriverMemory:
		return NewMemoryStorage(), nil
	case config.SessionDriverRedis:
		client, err := cache.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect session redis: %w", err)
		}
		return NewRedisStorage(client, cfg.Session.RedisPrefix), nil
	default:
		return nil, fmt.Errorf("unknown session driver %q", cfg.Session.Driver)
	}
}
