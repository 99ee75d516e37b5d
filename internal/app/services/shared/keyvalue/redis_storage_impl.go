package keyvalue

import (
	"context"
	"errors"
	"meditrack-client/internal/app/contracts"
	"meditrack-client/internal/pkg/constvars"
	"meditrack-client/internal/pkg/exceptions"

	"github.com/redis/go-redis/v9"
)

type redisStorage struct {
	client    *redis.Client
	namespace string
}

// NewRedisStorage keeps every entry under "<namespace>:<key>".
func NewRedisStorage(client *redis.Client, namespace string) contracts.KeyValueStorage {
	return &redisStorage{client: client, namespace: namespace}
}

func (r *redisStorage) Get(ctx context.Context, key string) (string, bool, error) {
	data, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	} else if err != nil {
		return "", false, exceptions.ErrStorageGet(err, key, r.Driver())
	}
	return data, true, nil
}

func (r *redisStorage) SetMany(ctx context.Context, entries map[string]string) error {
	if len(entries) == 0 {
		return nil
	}

	pairs := make([]interface{}, 0, len(entries)*2)
	for key, value := range entries {
		pairs = append(pairs, r.key(key), value)
	}

	err := r.client.MSet(ctx, pairs...).Err()
	if err != nil {
		return exceptions.ErrStorageSet(err, r.Driver())
	}
	return nil
}

func (r *redisStorage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	namespaced := make([]string, 0, len(keys))
	for _, key := range keys {
		namespaced = append(namespaced, r.key(key))
	}

	err := r.client.Del(ctx, namespaced...).Err()
	if err != nil {
		return exceptions.ErrStorageDelete(err, r.Driver())
	}
	return nil
}

func (r *redisStorage) Driver() string {
	return constvars.CredentialStoreDriverRedis
}

func (r *redisStorage) key(key string) string {
	if r.namespace == "" {
		return key
	}
	return r.namespace + ":" + key
}
