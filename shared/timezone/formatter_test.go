package timezone_test

import (
	"context"
	"pakt/shared/cache"
	"pakt/shared/clock"
	"pakt/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFormatter(t *testing.T, stored string, now time.Time) *timezone.Formatter {
	t.Helper()

	timezone.Init("UTC")

	pref := timezone.NewPreference(cache.NewMemoryCache(), staticDetector("UTC"))
	if stored != "" {
		_, err := pref.Set(context.Background(), stored)
		require.NoError(t, err)
	}

	return timezone.NewFormatter(pref, clock.NewFixed(now))
}

func TestFormatter_Format(t *testing.T) {
	now := time.Date(2024, 3, 10, 14, 5, 9, 0, time.UTC)

	tests := []struct {
		name     string
		stored   string
		date     string
		pattern  string
		expected string
	}{
		{
			name:     "utc instant into new york",
			stored:   "America/New_York",
			date:     "2024-01-15T10:30:00Z",
			expected: "Jan 15, 2024 05:30 AM",
		},
		{
			name:     "custom pattern",
			stored:   "Asia/Tokyo",
			date:     "2024-01-15T10:30:00Z",
			pattern:  "YYYY-MM-DD HH:mm:ss Z",
			expected: "2024-01-15 19:30:00 +09:00",
		},
		{
			name:     "offset date",
			stored:   "UTC",
			date:     "2024-01-15T10:30:00+07:00",
			pattern:  "YYYY-MM-DD HH:mm",
			expected: "2024-01-15 03:30",
		},
		{
			name:     "local date is read in the application zone",
			stored:   "Asia/Kolkata",
			date:     "2024-01-15 10:30",
			pattern:  "HH:mm",
			expected: "16:00",
		},
		{
			name:     "nothing stored keeps detected zone",
			date:     "2024-07-04T18:00:00Z",
			pattern:  "dddd h:mm a",
			expected: "Thursday 6:00 pm",
		},
		{
			name:     "unloadable stored zone formats without conversion",
			stored:   "Nowhere/Land",
			date:     "2024-01-15T10:30:00Z",
			pattern:  "HH:mm",
			expected: "10:30",
		},
		{
			name:     "invalid date",
			stored:   "America/New_York",
			date:     "not a date",
			expected: "Invalid Date",
		},
		{
			name:     "empty date formats now",
			stored:   "America/New_York",
			pattern:  "YYYY-MM-DD HH:mm:ss",
			expected: "2024-03-10 14:05:09",
		},
		{
			name:     "empty date and pattern",
			expected: "Mar 10, 2024 02:05 PM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFormatter(t, tt.stored, now)

			assert.Equal(t, tt.expected, f.Format(context.Background(), tt.date, tt.pattern))
		})
	}
}

func TestFormatter_Format_DefaultPatternShape(t *testing.T) {
	f := timezone.NewFormatter(
		timezone.NewPreference(cache.NewMemoryCache(), staticDetector("UTC")),
		clock.New(),
	)

	assert.Regexp(t, `^[A-Z][a-z]{2} \d{2}, \d{4} \d{2}:\d{2} (AM|PM)$`, f.Format(context.Background(), "", ""))
}

func TestFormatter_For(t *testing.T) {
	ctx := context.Background()
	pref := timezone.NewPreference(cache.NewMemoryCache(), staticDetector("UTC"))
	f := timezone.NewFormatter(pref, clock.New())

	_, err := pref.For("phone").Set(ctx, "Asia/Tokyo")
	require.NoError(t, err)

	assert.Equal(t, "Asia/Tokyo", f.For("phone").Timezone(ctx))
	assert.Equal(t, "UTC", f.Timezone(ctx))
	assert.Equal(t, "09:00", f.For("phone").Format(ctx, "2024-01-15T00:00:00Z", "HH:mm"))
}
