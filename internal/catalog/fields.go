package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

var imageName = regexp.MustCompile(`/([^/]+?)(?:\?([^/]+))?$`)

// PathsFromURL maps an image URL to the local files it may have been
// downloaded as: images/<name> and, when the URL has a query, the wget-style
// images/<name>@<query>. The first path is the preferred one.
func PathsFromURL(url string) []string {
	m := imageName.FindStringSubmatch(url)
	if m == nil {
		return nil
	}
	paths := []string{"images/" + m[1]}
	if m[2] != "" {
		paths = append(paths, "images/"+m[1]+"@"+m[2])
	}
	return paths
}

// Duration formats a number of minutes as "Xd Yh Zm", leaving out zero
// units. Zero or non-numeric input yields "".
func Duration(mins string) string {
	t := minutes(mins)
	if t <= 0 {
		return ""
	}

	var parts []string
	if d := t / 1440; d > 0 {
		parts = append(parts, strconv.Itoa(d)+"d")
	}
	if h := t / 60 % 24; h > 0 {
		parts = append(parts, strconv.Itoa(h)+"h")
	}
	if m := t % 60; m > 0 {
		parts = append(parts, strconv.Itoa(m)+"m")
	}
	return strings.Join(parts, " ")
}

// Delist joins list values for display.
func Delist(values []string) string {
	return strings.Join(values, ", ")
}

// ParseList reads a list field as written by the Galaxy exporter, a
// Python-style list literal such as ['Action', "Tom's Game"]. Input that is
// not a list literal is returned as a single value.
func ParseList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return []string{s}
	}

	values := []string{}
	body := s[1 : len(s)-1]
	for i := 0; i < len(body); i++ {
		quote := body[i]
		if quote != '\'' && quote != '"' {
			continue
		}
		value, end := readQuoted(body, i+1, quote)
		values = append(values, value)
		i = end
	}
	return values
}

// readQuoted reads a quoted literal starting after its opening quote and
// returns the unescaped value and the index of the closing quote.
func readQuoted(s string, start int, quote byte) (string, int) {
	var sb strings.Builder
	i := start
	for ; i < len(s); i++ {
		c := s[i]
		if c == quote {
			break
		}
		if c != '\\' || i+1 == len(s) {
			sb.WriteByte(c)
			continue
		}

		i++
		switch e := s[i]; e {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'x', 'u', 'U':
			width := map[byte]int{'x': 2, 'u': 4, 'U': 8}[e]
			if i+width < len(s) {
				if r, err := strconv.ParseUint(s[i+1:i+1+width], 16, 32); err == nil {
					sb.WriteRune(rune(r))
					i += width
					continue
				}
			}
			sb.WriteByte('\\')
			sb.WriteByte(e)
		case '\\', '\'', '"':
			sb.WriteByte(e)
		default:
			sb.WriteByte('\\')
			sb.WriteByte(e)
		}
	}
	return sb.String(), i
}
