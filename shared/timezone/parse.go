package timezone

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

// localDate matches loosely written local date-times such as "2024-01-15", "2024/1/5 9:30"
// or "20240115T103000.5". Values ending in Z are never local.
var localDate = regexp.MustCompile(`^(\d{4})[-/]?(\d{1,2})?[-/]?(\d{0,2})[Tt\s]*(\d{1,2})?:?(\d{1,2})?:?(\d{1,2})?[.:]?(\d+)?$`)

var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05.999999999Z0700",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC850,
	time.RFC822,
	time.RFC822Z,
	time.UnixDate,
	time.ANSIC,
	"Mon Jan 02 2006 15:04:05 GMT-0700",
}

var localLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2, 2006 3:04 PM",
	"Jan 2, 2006 03:04 PM",
	"January 2, 2006 15:04:05",
	"2 Jan 2006",
	"01/02/2006",
	"01/02/2006 15:04",
}

// ParseDate reads value the way the browser date library does: offset-less values are
// wall-clock times in loc, values with Z or an offset are absolute instants.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidDate
	}

	if loc == nil {
		loc = time.UTC
	}

	if !strings.HasSuffix(strings.ToUpper(value), "Z") {
		if parts := localDate.FindStringSubmatch(value); parts != nil {
			return fromParts(parts, loc), nil
		}
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrInvalidDate
}

// fromParts builds the wall-clock time; out-of-range fields roll over like Date does.
func fromParts(parts []string, loc *time.Location) time.Time {
	num := func(s string, def int) int {
		if s == "" {
			return def
		}

		n, err := strconv.Atoi(s)
		if err != nil {
			return def
		}

		return n
	}

	fraction := parts[7]
	if len(fraction) > 3 {
		fraction = fraction[:3]
	}

	return time.Date(
		num(parts[1], 0),
		time.Month(num(parts[2], 1)),
		num(parts[3], 1),
		num(parts[4], 0),
		num(parts[5], 0),
		num(parts[6], 0),
		num(fraction, 0)*int(time.Millisecond),
		loc,
	)
}
