package timezone

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultPattern renders as "Jan 15, 2024 05:30 AM".
	DefaultPattern = "MMM DD, YYYY hh:mm A"
	InvalidDate    = "Invalid Date"
)

var patternTokens = regexp.MustCompile(`\[([^\]]+)]|Y{1,4}|M{1,4}|D{1,2}|d{1,4}|H{1,2}|h{1,2}|a|A|m{1,2}|s{1,2}|Z{1,2}|SSS`)

// FormatPattern renders t with a dayjs-style pattern. Text inside square brackets is
// copied verbatim; anything that is not a token is kept as is.
func FormatPattern(t time.Time, pattern string) string {
	return patternTokens.ReplaceAllStringFunc(pattern, func(match string) string {
		if strings.HasPrefix(match, "[") {
			return match[1 : len(match)-1]
		}

		return token(t, match)
	})
}

func token(t time.Time, match string) string {
	switch match {
	case "YY":
		year := strconv.Itoa(t.Year())
		if len(year) > 2 {
			year = year[len(year)-2:]
		}

		return year
	case "YYYY":
		return pad(t.Year(), 4)
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "MM":
		return pad(int(t.Month()), 2)
	case "MMM":
		return t.Month().String()[:3]
	case "MMMM":
		return t.Month().String()
	case "D":
		return strconv.Itoa(t.Day())
	case "DD":
		return pad(t.Day(), 2)
	case "d":
		return strconv.Itoa(int(t.Weekday()))
	case "dd":
		return t.Weekday().String()[:2]
	case "ddd":
		return t.Weekday().String()[:3]
	case "dddd":
		return t.Weekday().String()
	case "H":
		return strconv.Itoa(t.Hour())
	case "HH":
		return pad(t.Hour(), 2)
	case "h":
		return strconv.Itoa(hour12(t))
	case "hh":
		return pad(hour12(t), 2)
	case "a":
		return strings.ToLower(meridiem(t))
	case "A":
		return meridiem(t)
	case "m":
		return strconv.Itoa(t.Minute())
	case "mm":
		return pad(t.Minute(), 2)
	case "s":
		return strconv.Itoa(t.Second())
	case "ss":
		return pad(t.Second(), 2)
	case "SSS":
		return pad(t.Nanosecond()/int(time.Millisecond), 3)
	case "Z":
		return offset(t, ":")
	default:
		// ZZ, and the dangling Y/YYY runs the matcher also picks up
		return offset(t, "")
	}
}

func pad(n, width int) string {
	if n < 0 {
		return "-" + pad(-n, width)
	}

	return fmt.Sprintf("%0*d", width, n)
}

func hour12(t time.Time) int {
	if h := t.Hour() % 12; h != 0 {
		return h
	}

	return 12
}

func meridiem(t time.Time) string {
	if t.Hour() < 12 {
		return "AM"
	}

	return "PM"
}

func offset(t time.Time, sep string) string {
	_, secs := t.Zone()

	sign := "+"
	if secs < 0 {
		sign = "-"
		secs = -secs
	}

	minutes := secs / 60

	return sign + pad(minutes/60, 2) + sep + pad(minutes%60, 2)
}
