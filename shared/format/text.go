package format

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const defaultLimit = 10

var (
	leadingInteger = regexp.MustCompile(`^\s*([+-]?\d+)`)
	plainText      = regexp.MustCompile(`^[a-zA-Z0-9 ,.-]+$`)
	plainTextQuote = regexp.MustCompile(`^[a-zA-Z0-9 ,.'-]+$`)
)

// SentenceCase upper-cases the first character and keeps the rest.
func SentenceCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

// SentenceCaseWords capitalises every space separated word and lower-cases the rest of it.
func SentenceCaseWords(s string) string {
	words := strings.Split(s, " ")
	for i, word := range words {
		words[i] = SentenceCase(strings.ToLower(word))
	}

	return strings.Join(words, " ")
}

func TitleCase(s string) string {
	return SentenceCaseWords(s)
}

func LowerCase(s string) string {
	return strings.ToLower(s)
}

// Truncate cuts s to n-1 characters followed by "..." when it is longer than n.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:max(n-1, 0)]) + "..."
}

// LimitString cuts s to limit characters followed by "..." (limit 10 when not positive).
func LimitString(s string, limit int) string {
	if limit <= 0 {
		limit = defaultLimit
	}

	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit]) + "..."
}

func TruncateText(text string, limit int, expanded bool) string {
	if expanded || utf8.RuneCountInString(text) <= limit {
		return text
	}

	return string([]rune(text)[:limit]) + "..."
}

// IsValidInteger reports whether value starts with an integer that is zero or negative.
func IsValidInteger(value string) bool {
	match := leadingInteger.FindStringSubmatch(value)
	if match == nil {
		return false
	}

	digits := strings.TrimLeft(match[1], "+-0")

	return digits == "" || strings.HasPrefix(match[1], "-")
}

// RejectSpecialCharacters reports whether input only holds letters, digits, spaces,
// commas, dots and dashes, plus apostrophes when allowed.
func RejectSpecialCharacters(input string, allowApostrophes bool) bool {
	if allowApostrophes {
		return plainTextQuote.MatchString(input)
	}

	return plainText.MatchString(input)
}

func FilterEmptyStrings(values []string) []string {
	filtered := make([]string, 0, len(values))

	for _, value := range values {
		if value != "" {
			filtered = append(filtered, value)
		}
	}

	return filtered
}

// GetBoolean reads the usual truthy spellings; everything else is false.
func GetBoolean(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v == 1
	case float64:
		return v == 1
	case string:
		switch v {
		case "true", "ON", "on", "yes", "YES":
			return true
		}
	}

	return false
}
