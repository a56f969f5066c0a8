package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AvatarColor maps a score to its badge color.
func AvatarColor(score int) string {
	switch {
	case score <= 20:
		return "#DC3545"
	case score <= 40:
		return "#F9D489"
	case score <= 60:
		return "#F2C94C"
	case score <= 80:
		return "#9BDCFD"
	default:
		return "#28A745"
	}
}

// HexToRGBA converts "#rgb" or "#rrggbb" into an rgba() expression.
func HexToRGBA(hex string, opacity float64) string {
	hex = strings.Replace(hex, "#", "", 1)

	if len(hex) == 3 {
		var b strings.Builder
		for _, c := range hex {
			b.WriteRune(c)
			b.WriteRune(c)
		}

		hex = b.String()
	}

	r, g, bl := channel(hex, 0), channel(hex, 2), channel(hex, 4)

	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, bl, strconv.FormatFloat(opacity, 'f', -1, 64))
}

// HexWithOpacity appends the opacity (0 to 1) as a two digit alpha channel.
func HexWithOpacity(hex string, opacity float64) string {
	alpha := int(math.Round(opacity * 255))

	return fmt.Sprintf("#%s%02x", strings.Replace(hex, "#", "", 1), alpha)
}

func channel(hex string, at int) int64 {
	if len(hex) < at+2 {
		return 0
	}

	v, err := strconv.ParseInt(hex[at:at+2], 16, 64)
	if err != nil {
		return 0
	}

	return v
}
