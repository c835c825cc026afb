package kv

import (
	"context"
	"errors"
	"time"

	"github.com/angelmondragon/activitycart/pkg/redis"
)

type redisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	SlotKey(name string) string
	Ping(ctx context.Context) error
	Close() error
}

// Redis keeps slots in Redis under the client's slot namespace, without expiry.
type Redis struct {
	client redisClient
}

func NewRedis(client redisClient) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, r.client.SlotKey(key))
	if errors.Is(err, redis.ErrNil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, r.client.SlotKey(key), value, 0)
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.client.SlotKey(key))
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx)
}

func (r *Redis) Close() error {
	return r.client.Close()
}
