package timezone

import (
	"context"
	"errors"
	"fmt"
	"pakt/shared"
	"pakt/shared/cache"
	"pakt/shared/constant"

	"github.com/rs/zerolog/log"
)

// Store is the durable key-value capability the preference is persisted in.
// cache.RedisCache satisfies it.
type Store interface {
	Get(ctx context.Context, key string, value any) error
	Save(ctx context.Context, key string, value any, duration int) error
}

// Preference is the user's chosen display timezone. Writes are last-write-wins.
type Preference struct {
	store    Store
	detector Detector
	key      string
}

func NewPreference(store Store, detector Detector) *Preference {
	return &Preference{
		store:    store,
		detector: detector,
		key:      constant.TimezoneStorageKey,
	}
}

// For returns the preference of a single device or user.
func (p *Preference) For(owner string) *Preference {
	if owner == "" {
		return p
	}

	return &Preference{
		store:    p.store,
		detector: p.detector,
		key:      shared.BuildCacheKey(constant.TimezoneStorageKey, owner),
	}
}

// Key returns the storage key the preference is kept under.
func (p *Preference) Key() string {
	return p.key
}

// Set stores value, or the detected timezone when value is empty or "undefined".
// It returns the value actually stored.
func (p *Preference) Set(ctx context.Context, value string) (string, error) {
	if value == "" || value == constant.UndefinedValue {
		value = p.detector.Detect()
	}

	// no expiry: the preference lives until overwritten
	if err := p.store.Save(ctx, p.key, value, 0); err != nil {
		log.Warn().Err(err).Str("key", p.key).Msg("failed to persist timezone preference")

		return value, fmt.Errorf("failed to persist timezone preference: %w", err)
	}

	return value, nil
}

// Get returns the stored timezone, falling back to the detected one when nothing
// usable is stored or the store cannot be read.
func (p *Preference) Get(ctx context.Context) string {
	var stored string

	err := p.store.Get(ctx, p.key, &stored)
	if err != nil {
		if !errors.Is(err, cache.Nil) {
			log.Warn().Err(err).Str("key", p.key).Msg("failed to read timezone preference, using detected timezone")
		}

		return p.detector.Detect()
	}

	if stored == "" || stored == constant.UndefinedValue {
		return p.detector.Detect()
	}

	return stored
}
