package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	c := &memoryCache{
		entries: make(map[string]memoryEntry),
		now:     func() time.Time { return now },
	}

	require.NoError(t, c.Save(ctx, "limiter", 1, 10))
	require.NoError(t, c.Save(ctx, "tz", "UTC", 0))

	var n int
	require.NoError(t, c.Get(ctx, "limiter", &n))

	now = now.Add(10 * time.Second)

	assert.True(t, errors.Is(c.Get(ctx, "limiter", &n), Nil))

	var tz string
	assert.NoError(t, c.Get(ctx, "tz", &tz), "zero duration never expires")
}
