package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/azaliaz/ruboni/internal/config"
	"github.com/azaliaz/ruboni/internal/domain/consts"
	"github.com/azaliaz/ruboni/internal/logger"
	storerrors "github.com/azaliaz/ruboni/internal/storage/errors"
)

type RedisStorage struct {
	client *redis.Client
	prefix string
}

// NewRedis connects to redis and checks the connection with a ping.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*RedisStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}
	return &RedisStorage{client: client, prefix: cfg.Prefix}, nil
}

func (rs *RedisStorage) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, consts.StoreCtxTimeout)
	defer cancel()
	value, err := rs.client.Get(ctx, rs.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", storerrors.ErrKeyNotFound
		}
		return "", err
	}
	return value, nil
}

// Set stores the value without expiry, persisted state lives until removed.
func (rs *RedisStorage) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return storerrors.ErrEmptyKey
	}
	ctx, cancel := context.WithTimeout(ctx, consts.StoreCtxTimeout)
	defer cancel()
	return rs.client.Set(ctx, rs.prefix+key, value, 0).Err()
}

func (rs *RedisStorage) Remove(ctx context.Context, key string) error {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(ctx, consts.StoreCtxTimeout)
	defer cancel()
	n, err := rs.client.Del(ctx, rs.prefix+key).Result()
	if err != nil {
		return err
	}
	log.Debug().Str("key", key).Int64("deleted", n).Msg("key removed")
	return nil
}

func (rs *RedisStorage) Close() error {
	if rs.client != nil {
		return rs.client.Close()
	}
	return nil
}
