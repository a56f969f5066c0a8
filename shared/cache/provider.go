package cache

import (
	"pakt/config"
	"pakt/infras/otel"
	"pakt/infras/redis"

	"github.com/rs/zerolog/log"
)

// New picks the store backing the cache from CACHE_DRIVER.
func New(cfg *config.Config, ot otel.Otel) RedisCache {
	if cfg.Cache.Driver == config.CacheDriverMemory {
		log.Info().Str("driver", cfg.Cache.Driver).Msg("Using in-memory cache")

		return NewMemoryCache()
	}

	return NewRedisCache(redis.New(cfg), ot)
}
