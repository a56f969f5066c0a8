package query_test

import (
	"pakt/shared/query"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingle(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		expected string
	}{
		{name: "plain", key: "page", value: "2", expected: "page=2"},
		{name: "space becomes plus", key: "q", value: "hello world", expected: "q=hello+world"},
		{name: "reserved characters", key: "redirect", value: "/a?b=c&d", expected: "redirect=%2Fa%3Fb%3Dc%26d"},
		{name: "star and tilde", key: "s", value: "a*b~c", expected: "s=a*b%7Ec"},
		{name: "non ascii", key: "name", value: "é", expected: "name=%C3%A9"},
		{name: "empty value", key: "empty", value: "", expected: "empty="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, query.Single(tt.key, tt.value))
		})
	}
}

func TestFromPairs(t *testing.T) {
	got := query.FromPairs([]query.Pair{
		{Name: "status", Value: "open"},
		{Name: "page", Value: "1"},
		{Name: "status", Value: "closed"},
	})

	assert.Equal(t, "status=closed&page=1", got)
	assert.Equal(t, "", query.FromPairs(nil))
}

func TestFromMap(t *testing.T) {
	got := query.FromMap(map[string]string{
		"sort":  "latest",
		"limit": "10",
		"after": "2024-01-15",
	})

	assert.Equal(t, "after=2024-01-15&limit=10&sort=latest", got)
}
