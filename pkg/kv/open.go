package kv

import (
	"context"
	"fmt"

	"github.com/angelmondragon/activitycart/pkg/config"
	"github.com/angelmondragon/activitycart/pkg/db"
	"github.com/angelmondragon/activitycart/pkg/logger"
	"github.com/angelmondragon/activitycart/pkg/redis"
)

// Backend is an opened Store plus the SQL client when the backend is sql, so
// callers can run migrations against it.
type Backend struct {
	Store Store
	Name  string
	DB    *db.Client
}

// Open builds the Store selected by cfg.Cart.Backend.
func Open(ctx context.Context, cfg *config.Config, logg *logger.Logger) (*Backend, error) {
	name := cfg.Cart.NormalizedBackend()
	if logg != nil {
		ctx = logg.WithBackend(ctx, name)
	}

	switch name {
	case config.BackendMemory:
		return &Backend{Store: NewMemory(), Name: name}, nil

	case config.BackendFile:
		store, err := NewFile(cfg.Cart.FileDir)
		if err != nil {
			return nil, err
		}
		return &Backend{Store: store, Name: name}, nil

	case config.BackendRedis:
		client, err := redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			return nil, fmt.Errorf("bootstrap redis: %w", err)
		}
		return &Backend{Store: NewRedis(client), Name: name}, nil

	case config.BackendSQL:
		client, err := db.New(ctx, cfg.DB, logg)
		if err != nil {
			return nil, fmt.Errorf("bootstrap database: %w", err)
		}
		return &Backend{Store: NewSQL(client), Name: name, DB: client}, nil
	}

	return nil, fmt.Errorf("unsupported kv backend %q", cfg.Cart.Backend)
}
