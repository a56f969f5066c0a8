package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const defaultDecimals = 2

var printer = message.NewPrinter(language.AmericanEnglish)

var byteUnits = []string{"Bytes", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB"}

// FormatCountdown renders seconds as "mm:ss".
func FormatCountdown(counter int) string {
	return fmt.Sprintf("%02d:%02d", counter/60, counter%60)
}

// FormatBytes renders a size with binary units, e.g. 1536 -> "1.5 KiB".
func FormatBytes(bytes float64, decimals int) string {
	if bytes <= 0 || math.IsNaN(bytes) {
		return "0 Bytes"
	}

	if decimals < 0 {
		decimals = 0
	}

	i := int(math.Floor(math.Log(bytes) / math.Log(1024)))
	i = max(0, min(i, len(byteUnits)-1))

	value := bytes / math.Pow(1024, float64(i))
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(value, 'f', decimals, 64), 64)

	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + byteUnits[i]
}

// FormatUSD renders value as US dollars with two decimals, e.g. "$1,234.50".
func FormatUSD(value float64) string {
	return usd(value, 2)
}

// FormatUSDSixDecimals renders value as US dollars with six decimals.
func FormatUSDSixDecimals(value float64) string {
	return usd(value, 6)
}

func usd(value float64, decimals int) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	return sign + "$" + printer.Sprint(number.Decimal(value, number.Scale(decimals)))
}

// FormatNumberWithCommas parses value and renders it with thousands separators and
// decimal places (2 when decimal is 0). Unparseable input renders as "".
func FormatNumberWithCommas(value string, decimal int) string {
	num, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(num) {
		return ""
	}

	if decimal <= 0 {
		decimal = defaultDecimals
	}

	return printer.Sprint(number.Decimal(num, number.Scale(decimal)))
}

// FormatNumber abbreviates large numbers: 1500 -> "1.50k", 2e9 -> "2.00b".
func FormatNumber(n float64) string {
	switch {
	case n >= 1e12:
		return fmt.Sprintf("%.2ft", n/1e12)
	case n >= 1e9:
		return fmt.Sprintf("%.2fb", n/1e9)
	case n >= 1e6:
		return fmt.Sprintf("%.2fm", n/1e6)
	case n >= 1e3:
		return fmt.Sprintf("%.2fk", n/1e3)
	default:
		return fmt.Sprintf("%.2f", n)
	}
}

// RoundDown truncates n to digit decimal places (2 when digit is 0).
func RoundDown(n float64, digit int) float64 {
	if digit <= 0 {
		digit = defaultDecimals
	}

	factor := math.Pow(10, float64(digit))

	return math.Floor(n*factor) / factor
}
