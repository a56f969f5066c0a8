package redis_test

import (
	"pakt/config"
	"pakt/infras/redis"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "pakt"
	cfg.Cache.Redis.Primary.Host = "cache.internal"
	cfg.Cache.Redis.Primary.Port = "6380"
	cfg.Cache.Redis.Primary.Password = "s3cret"
	cfg.Cache.Redis.Primary.DB = 2

	opts := redis.Options(cfg)

	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, "s3cret", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, "pakt", opts.ClientName)
}
