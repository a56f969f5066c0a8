package route

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const unknownLabel = "Unknown"

// Label is the text and target of a "back" link.
type Label struct {
	Label string `json:"label"`
	Link  string `json:"link"`
}

var knownRoutes = []struct {
	pattern *regexp.Regexp
	label   string
}{
	{regexp.MustCompile(`^/pakts$`), "Pakts"},
	{regexp.MustCompile(`^/pakts/[a-f0-9]{24}$`), "Pakt Details"},
	{regexp.MustCompile(`^/pakts/[a-f0-9]{24}/edit$`), "Edit Pakt"},
	{regexp.MustCompile(`^/pakts/[a-f0-9]{24}/make-deposit$`), "Make Payment"},
	{regexp.MustCompile(`^/talents$`), "Talents"},
	{regexp.MustCompile(`^/talents/[a-f0-9]{24}$`), "Talent Details"},
}

// PreviousLinkLabel names previousLink for display. previousLink may be relative; it is
// resolved against origin. Unknown paths are labelled by their capitalised segments.
func PreviousLinkLabel(previousLink, origin string) Label {
	result := Label{Label: unknownLabel, Link: previousLink}

	path := resolvePath(previousLink, origin)

	for _, route := range knownRoutes {
		if route.pattern.MatchString(path) {
			result.Label = route.label

			return result
		}
	}

	segments := make([]string, 0)
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			segments = append(segments, capitalise(segment))
		}
	}

	if len(segments) > 0 {
		result.Label = strings.Join(segments, " / ")
	}

	return result
}

func resolvePath(link, origin string) string {
	ref, err := url.Parse(link)
	if err != nil {
		return ""
	}

	base, err := url.Parse(origin)
	if err != nil || origin == "" {
		return ref.EscapedPath()
	}

	path := base.ResolveReference(ref).EscapedPath()
	if path == "" {
		return "/"
	}

	return path
}

func capitalise(s string) string {
	r, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToUpper(r)) + s[size:]
}
