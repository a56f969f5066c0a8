package timezone

import (
	"context"
	"pakt/shared/clock"
	"pakt/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

// Formatter renders dates for display in the user's preferred timezone.
type Formatter struct {
	preference *Preference
	clock      clock.Clock
}

func NewFormatter(preference *Preference, c clock.Clock) *Formatter {
	return &Formatter{
		preference: preference,
		clock:      c,
	}
}

// For returns a Formatter reading the preference of a single device or user.
func (f *Formatter) For(owner string) *Formatter {
	return &Formatter{
		preference: f.preference.For(owner),
		clock:      f.clock,
	}
}

// Format renders date with pattern (DefaultPattern when empty). An empty date means
// now, shown in the application zone. Unparseable dates render as "Invalid Date".
func (f *Formatter) Format(ctx context.Context, date, pattern string) string {
	if pattern == "" {
		pattern = DefaultPattern
	}

	if date == "" {
		return FormatPattern(f.clock.Now().In(GetLocation()), pattern)
	}

	t, err := ParseDate(date, GetLocation())
	if err != nil {
		log.Debug().Str("date", date).Msg("unparseable date, rendering as invalid")

		return InvalidDate
	}

	return FormatPattern(f.convert(ctx, t), pattern)
}

// Timezone returns the zone Format converts into.
func (f *Formatter) Timezone(ctx context.Context) string {
	return f.preference.Get(ctx)
}

func (f *Formatter) convert(ctx context.Context, t time.Time) time.Time {
	tz := f.preference.Get(ctx)
	if tz == "" || tz == constant.UndefinedValue {
		return t.In(GetLocation())
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Warn().Err(err).Str("timezone", tz).Msg("stored timezone cannot be loaded, formatting without conversion")

		return t.In(GetLocation())
	}

	return t.In(loc)
}
