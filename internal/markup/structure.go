// Package markup turns loosely formatted game descriptions into paragraph and
// list HTML.
//
// The accepted input is flat: paragraphs separated by line breaks (real or
// escaped as a literal backslash-n), optional <p> tags and bullet lines.
// Nothing here fails; anything unexpected becomes a plain paragraph.
package markup

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	closeParagraph   = regexp.MustCompile(`\s*</p>\s*`)
	openParagraph    = regexp.MustCompile(`\s*<p>\s*`)
	anyParagraph     = regexp.MustCompile(`\s*(<p(?:\s[^>]*)?>)\s*`)
	leadingParagraph = regexp.MustCompile(`^\s*(<p(?:\s[^>]*)?>)\s*`)
	bullet           = regexp.MustCompile(`^[*•-]\s*`)
)

// Structure converts a free-text description into well-formed HTML.
func Structure(text string) string {
	return Render(Parse(text))
}

// Parse splits a description into blocks in document order.
func Parse(text string) []Block {
	s := Clean(text, false)
	s = stripWrappingQuotes(s)
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = closeParagraph.ReplaceAllString(s, "\n")
	s = openParagraph.ReplaceAllString(s, "\n")
	s = anyParagraph.ReplaceAllString(s, "\n$1")

	var blocks []Block
	blank := 0
	for i, line := range strings.Split(strings.TrimSpace(s), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			blank++
			continue
		}

		var spacing string
		if blank > 0 && i > 0 {
			spacing = spacedClass(blank)
		}
		blank = 0

		if loc := bullet.FindStringIndex(line); loc != nil {
			item := ListItem{Text: line[loc[1]:]}
			if spacing != "" {
				item.Classes = []string{spacing}
			}
			blocks = append(blocks, item)
			continue
		}

		blocks = append(blocks, parseParagraph(line, spacing))
	}
	return blocks
}

// spacedClass clamps the number of preceding blank lines to the 0–1 range.
func spacedClass(blank int) string {
	return fmt.Sprintf("spaced-%d", max(0, min(1, blank)))
}

// stripWrappingQuotes removes a pair of double quotes wrapping the whole text,
// but only when they are the only two quotes in it.
func stripWrappingQuotes(s string) string {
	if strings.Count(s, `"`) == 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

func parseParagraph(line, spacing string) Paragraph {
	p := Paragraph{Tag: "p", Attrs: []Attr{{Key: "class"}}}

	if m := leadingParagraph.FindStringSubmatchIndex(line); m != nil {
		tag := line[m[2]:m[3]]
		line = line[m[1]:]
		if name, attrs, ok := parseStartTag(tag); ok {
			p.Tag = name
			p.Attrs = attrs
			p.Classes = nil
			for _, attr := range attrs {
				if attr.Key == "class" {
					for _, class := range strings.Fields(attr.Val) {
						p.Classes = addClass(p.Classes, class)
					}
				}
			}
		} else {
			slog.Debug("Unparseable paragraph tag, using default", "tag", tag)
		}
	}
	p.Text = line

	if spacing != "" {
		if !hasAttr(p.Attrs, "class") {
			p.Attrs = append(p.Attrs, Attr{Key: "class"})
		}
		p.Classes = addClass(p.Classes, spacing)
	}
	return p
}

// parseStartTag reads the tag name and attributes of a single start tag.
func parseStartTag(tag string) (string, []Attr, bool) {
	z := html.NewTokenizer(strings.NewReader(tag))
	switch z.Next() {
	case html.StartTagToken, html.SelfClosingTagToken:
	default:
		return "", nil, false
	}

	token := z.Token()
	attrs := make([]Attr, 0, len(token.Attr))
	seenClass := false
	for _, a := range token.Attr {
		if a.Key == "class" {
			if seenClass {
				continue
			}
			seenClass = true
		}
		attrs = append(attrs, Attr{Key: a.Key, Val: a.Val})
	}
	return token.Data, attrs, true
}

func hasAttr(attrs []Attr, key string) bool {
	for _, a := range attrs {
		if a.Key == key {
			return true
		}
	}
	return false
}
