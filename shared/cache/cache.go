package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"pakt/infras/otel"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	clearBatchSize        = 100
	Nil                   = redis.Nil
)

// RedisCache stores JSON encoded values by key. Strings are stored as is.
type RedisCache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, prefix string) error
}

type redisCache struct {
	client redis.UniversalClient
	otel   otel.Otel
}

func NewRedisCache(client redis.UniversalClient, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// instrument runs op inside a cache span tagged with key. Failures other than a
// missing key are logged with the operation name.
func (cache *redisCache) instrument(ctx context.Context, op, key string, fn func(context.Context) error) error {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+"."+op)
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	err := fn(ctx)
	if err == nil {
		return nil
	}

	level := zerolog.ErrorLevel
	if isMiss(err) {
		level = zerolog.DebugLevel
	} else {
		scope.TraceError(err)
	}

	log.WithLevel(level).Err(err).Str("key", key).Str("op", op).Msg("cache operation failed")

	return err
}

// Save implements RedisCache. A zero duration keeps the value until it is overwritten.
func (cache *redisCache) Save(ctx context.Context, key string, value any, duration int) error {
	return cache.instrument(ctx, "Save", key, func(ctx context.Context) error {
		raw, err := encode(value)
		if err != nil {
			return err
		}

		if err = cache.client.Set(ctx, key, raw, time.Second*time.Duration(duration)).Err(); err != nil {
			return fmt.Errorf("failed to set cache value: %w", err)
		}

		return nil
	})
}

// Get implements RedisCache. A missing key returns an error matching Nil.
func (cache *redisCache) Get(ctx context.Context, key string, value any) error {
	return cache.instrument(ctx, "Get", key, func(ctx context.Context) error {
		raw, err := cache.client.Get(ctx, key).Result()
		if err != nil {
			return fmt.Errorf("failed to get cache value: %w", err)
		}

		return decode(raw, value)
	})
}

// Delete implements RedisCache.
func (cache *redisCache) Delete(ctx context.Context, key string) error {
	return cache.instrument(ctx, "Delete", key, func(ctx context.Context) error {
		if err := cache.client.Del(ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to delete cache value: %w", err)
		}

		return nil
	})
}

// Clear implements RedisCache. Keys are scanned and unlinked in batches.
func (cache *redisCache) Clear(ctx context.Context, prefix string) error {
	return cache.instrument(ctx, "Clear", prefix+"*", func(ctx context.Context) error {
		iter := cache.client.Scan(ctx, 0, prefix+"*", clearBatchSize).Iterator()
		batch := make([]string, 0, clearBatchSize)

		flush := func() error {
			if len(batch) == 0 {
				return nil
			}

			if err := cache.client.Unlink(ctx, batch...).Err(); err != nil {
				return fmt.Errorf("failed to delete cache values: %w", err)
			}

			batch = batch[:0]

			return nil
		}

		for iter.Next(ctx) {
			batch = append(batch, iter.Val())

			if len(batch) == clearBatchSize {
				if err := flush(); err != nil {
					return err
				}
			}
		}

		if err := iter.Err(); err != nil {
			return fmt.Errorf("failed to scan cache keys: %w", err)
		}

		return flush()
	})
}

func isMiss(err error) bool {
	return errors.Is(err, Nil)
}

func encode(value any) ([]byte, error) {
	if s, ok := value.(string); ok {
		return []byte(s), nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cache value: %w", err)
	}

	return raw, nil
}

func decode(raw string, value any) error {
	if s, ok := value.(*string); ok {
		*s = raw

		return nil
	}

	if err := json.Unmarshal([]byte(raw), value); err != nil {
		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return nil
}
