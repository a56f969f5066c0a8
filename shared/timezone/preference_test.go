package timezone_test

import (
	"context"
	"errors"
	"pakt/shared/cache"
	"pakt/shared/cache/mocks"
	"pakt/shared/constant"
	"pakt/shared/timezone"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type staticDetector string

func (d staticDetector) Detect() string {
	return string(d)
}

func TestPreference_SetGet(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{
			name:     "explicit zone",
			value:    "Asia/Tokyo",
			expected: "Asia/Tokyo",
		},
		{
			name:     "empty value stores detected zone",
			value:    "",
			expected: "Europe/Paris",
		},
		{
			name:     "undefined stores detected zone",
			value:    "undefined",
			expected: "Europe/Paris",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := cache.NewMemoryCache()
			pref := timezone.NewPreference(store, staticDetector("Europe/Paris"))

			stored, err := pref.Set(ctx, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stored)
			assert.Equal(t, tt.expected, pref.Get(ctx))

			var raw string
			require.NoError(t, store.Get(ctx, constant.TimezoneStorageKey, &raw))
			assert.Equal(t, tt.expected, raw)
		})
	}
}

func TestPreference_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	pref := timezone.NewPreference(cache.NewMemoryCache(), staticDetector("UTC"))

	_, err := pref.Set(ctx, "Asia/Tokyo")
	require.NoError(t, err)

	_, err = pref.Set(ctx, "America/Chicago")
	require.NoError(t, err)

	assert.Equal(t, "America/Chicago", pref.Get(ctx))
}

func TestPreference_Get_Fallbacks(t *testing.T) {
	tests := []struct {
		name   string
		seeded *string
	}{
		{
			name: "nothing stored",
		},
		{
			name:   "stored undefined",
			seeded: stringPtr("undefined"),
		},
		{
			name:   "stored empty string",
			seeded: stringPtr(""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := cache.NewMemoryCache()

			if tt.seeded != nil {
				require.NoError(t, store.Save(ctx, constant.TimezoneStorageKey, *tt.seeded, 0))
			}

			pref := timezone.NewPreference(store, staticDetector("Australia/Sydney"))

			assert.Equal(t, "Australia/Sydney", pref.Get(ctx))
		})
	}
}

func TestPreference_StoreFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRedisCache(ctrl)
	ctx := context.Background()
	storeErr := errors.New("connection refused")

	pref := timezone.NewPreference(store, staticDetector("Asia/Singapore"))

	store.EXPECT().
		Get(gomock.Any(), constant.TimezoneStorageKey, gomock.Any()).
		Return(storeErr)

	assert.Equal(t, "Asia/Singapore", pref.Get(ctx))

	store.EXPECT().
		Save(gomock.Any(), constant.TimezoneStorageKey, "Asia/Tokyo", 0).
		Return(storeErr)

	stored, err := pref.Set(ctx, "Asia/Tokyo")
	require.Error(t, err)
	assert.True(t, errors.Is(err, storeErr))
	assert.Equal(t, "Asia/Tokyo", stored)
}

func TestPreference_For(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryCache()
	pref := timezone.NewPreference(store, staticDetector("UTC"))

	alice := pref.For("device-a")
	bob := pref.For("device-b")

	assert.Equal(t, constant.TimezoneStorageKey, pref.Key())
	assert.Equal(t, constant.TimezoneStorageKey+":device-a", alice.Key())
	assert.Same(t, pref, pref.For(""))

	_, err := alice.Set(ctx, "Asia/Jakarta")
	require.NoError(t, err)

	assert.Equal(t, "Asia/Jakarta", alice.Get(ctx))
	assert.Equal(t, "UTC", bob.Get(ctx))
	assert.Equal(t, "UTC", pref.Get(ctx))
}

func stringPtr(s string) *string {
	return &s
}
