package markup

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var fixups = []struct {
	pattern *regexp.Regexp
	replace string
}{
	{regexp.MustCompile(`\.\.\.`), "…"},
	{regexp.MustCompile(`\s+-\s+`), " – "},
	{regexp.MustCompile("\u0092"), "’"},
	{regexp.MustCompile("\u0093"), "“"},
	{regexp.MustCompile("\u0094"), "”"},
	{regexp.MustCompile("\\s*\u0097\\s*"), " – "},
}

// Clean trims s and repairs common export artefacts: ellipses, spaced hyphens
// and the legacy single-byte quote and dash characters. When escape is true
// the result is HTML-escaped.
func Clean(s string, escape bool) string {
	s = strings.TrimSpace(s)
	for _, f := range fixups {
		s = f.pattern.ReplaceAllString(s, f.replace)
	}
	if escape {
		return html.EscapeString(s)
	}
	return s
}
