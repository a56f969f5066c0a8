package query

import (
	"net/url"
	"slices"
	"strings"
)

// Pair is one name/value entry of a query string.
type Pair struct {
	Name  string
	Value string
}

// Single encodes one name/value pair, e.g. Single("page", "2") == "page=2".
func Single(name, value string) string {
	return FromPairs([]Pair{{Name: name, Value: value}})
}

// FromPairs encodes pairs in order. A repeated name keeps its first position and
// takes the last value.
func FromPairs(pairs []Pair) string {
	ordered := make([]Pair, 0, len(pairs))

	for _, pair := range pairs {
		idx := slices.IndexFunc(ordered, func(p Pair) bool { return p.Name == pair.Name })
		if idx >= 0 {
			ordered[idx].Value = pair.Value

			continue
		}

		ordered = append(ordered, pair)
	}

	parts := make([]string, 0, len(ordered))
	for _, pair := range ordered {
		parts = append(parts, escape(pair.Name)+"="+escape(pair.Value))
	}

	return strings.Join(parts, "&")
}

// FromMap encodes values with keys in sorted order.
func FromMap(values map[string]string) string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}

	slices.Sort(names)

	pairs := make([]Pair, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, Pair{Name: name, Value: values[name]})
	}

	return FromPairs(pairs)
}

// escape applies form encoding the way browsers serialise search params: "*" stays
// literal and "~" is percent-encoded.
func escape(s string) string {
	s = url.QueryEscape(s)
	s = strings.ReplaceAll(s, "%2A", "*")

	return strings.ReplaceAll(s, "~", "%7E")
}
