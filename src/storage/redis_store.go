package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each namespace in one Redis hash named "<prefix>:<namespace>".
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps an existing client. Close closes it.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// OpenRedis connects to addr and checks the connection
func OpenRedis(ctx context.Context, addr, password string, db int, prefix string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return NewRedisStore(client, prefix), nil
}

func (s *RedisStore) Namespace(name string) Backend {
	return &redisNamespace{client: s.client, name: name, hash: s.prefix + ":" + name}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

type redisNamespace struct {
	client *redis.Client
	name   string
	hash   string
}

func (n *redisNamespace) Get(ctx context.Context, key string) (string, error) {
	value, err := n.client.HGet(ctx, n.hash, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", &KeyNotFoundError{Namespace: n.name, Key: key}
		}
		return "", fmt.Errorf("failed to get key: %w", err)
	}
	return value, nil
}

func (n *redisNamespace) Put(ctx context.Context, key, value string) error {
	if err := n.client.HSet(ctx, n.hash, key, value).Err(); err != nil {
		return fmt.Errorf("failed to put key: %w", err)
	}
	return nil
}

func (n *redisNamespace) Delete(ctx context.Context, key string) error {
	if err := n.client.HDel(ctx, n.hash, key).Err(); err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}
	return nil
}

func (n *redisNamespace) List(ctx context.Context) ([]string, error) {
	keys, err := n.client.HKeys(ctx, n.hash).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	return keys, nil
}
