package repository

import (
	"pakt/config"
	"pakt/helper"
	"pakt/infras/otel"
	"pakt/infras/postgres"
	"pakt/shared/cache"
	"pakt/shared/clock"
	"pakt/shared/timezone"

	"github.com/rs/zerolog/log"
)

// NewStore picks where timezone preferences are kept from PREFERENCE_STORE.
func NewStore(cfg *config.Config, c cache.RedisCache, ot otel.Otel, clk clock.Clock) timezone.Store {
	if cfg.Preference.Store != config.PreferenceStorePostgres {
		return c
	}

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate preference store")
		}
	}

	db, err := postgres.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to preference store")
	}

	log.Info().Str("store", cfg.Preference.Store).Msg("Using postgres preference store")

	return New(db, ot, clk)
}
