package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

type redisImpl struct {
	client *goredis.Client
}

func (r *redisImpl) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisImpl) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == goredis.Nil {
		return "", ErrNotFound
	}
	return val, err
}

func (r *redisImpl) Delete(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}

func (r *redisImpl) Exists(ctx context.Context, key string) (bool, error) {
	count, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *redisImpl) Publish(ctx context.Context, channel string, payload interface{}) error {
	return r.client.Publish(ctx, channel, payload).Err()
}

func (r *redisImpl) Subscribe(ctx context.Context, channels ...string) *goredis.PubSub {
	return r.client.Subscribe(ctx, channels...)
}

func (r *redisImpl) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisImpl) Close() error {
	return r.client.Close()
}

func (r *redisImpl) GetClient() *goredis.Client {
	return r.client
}
