// Package tmpl implements the catalog's placeholder templates.
//
// Placeholders are written {name} or {0}; {{ and }} produce literal braces.
// Rendering never fails: a placeholder with no value is written back verbatim,
// so it stays visible in the page and can be picked up by a later pass.
//
// A template may contain one or more repeatable blocks:
//
//	<dl>{rep}<dt>{0}</dt><dd>{1}</dd>{/rep}</dl>
//
// After the main substitution, each block is replaced by one copy per named
// parameter that the template did not consume and whose value is non-empty,
// with the parameter name as {0} and its value as {1}. Whitespace directly in
// front of {rep} belongs to the repeated unit.
package tmpl

import (
	"regexp"
	"strconv"
	"strings"
)

var repeatable = regexp.MustCompile(`(\s*)\{rep\}(.*?)\{/rep\}`)

// Result is the outcome of a single render.
type Result struct {
	Output string
	// Used holds every key substituted by the main template, positional keys
	// included as their decimal index.
	Used map[string]bool
}

// Render substitutes positional and named values into template and expands
// its repeatable blocks with the named values the template left unused.
func Render(template string, positional []string, named *Params) Result {
	res := substitute(template, positional, named)
	res.Output = repeatable.ReplaceAllStringFunc(res.Output, func(block string) string {
		m := repeatable.FindStringSubmatch(block)
		return repeat(m[1], m[2], named, res.Used)
	})
	return res
}

// Format substitutes positional and named values into template. Repeatable
// blocks are left as they are, as is any block text carried in by the values.
func Format(template string, positional []string, named *Params) Result {
	return substitute(template, positional, named)
}

// repeat renders body once per unused, non-empty named value.
func repeat(lead, body string, named *Params, used map[string]bool) string {
	var sb strings.Builder
	for _, key := range named.Keys() {
		if used[key] {
			continue
		}
		value, _ := named.Get(key)
		if value == "" {
			continue
		}
		sb.WriteString(lead)
		sb.WriteString(substitute(body, []string{key, value}, nil).Output)
	}
	return sb.String()
}

// substitute performs the placeholder pass without expanding repeatable blocks.
func substitute(template string, positional []string, named *Params) Result {
	res := Result{Used: make(map[string]bool)}
	var sb strings.Builder
	sb.Grow(len(template))

	auto := 0
	for i := 0; i < len(template); {
		c := template[i]
		switch {
		case c == '{' && strings.HasPrefix(template[i:], "{{"):
			sb.WriteByte('{')
			i += 2
		case c == '}' && strings.HasPrefix(template[i:], "}}"):
			sb.WriteByte('}')
			i += 2
		case c == '{':
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				sb.WriteString(template[i:])
				i = len(template)
				continue
			}
			field := template[i+1 : i+1+end]
			key := fieldKey(field)
			if key == "" {
				key = strconv.Itoa(auto)
				auto++
			}
			if value, ok := lookup(key, positional, named); ok {
				res.Used[key] = true
				sb.WriteString(value)
			} else {
				sb.WriteString("{" + field + "}")
			}
			i += end + 2
		default:
			sb.WriteByte(c)
			i++
		}
	}

	res.Output = sb.String()
	return res
}

// fieldKey strips an optional conversion or format spec from a field.
func fieldKey(field string) string {
	if idx := strings.IndexAny(field, "!:"); idx >= 0 {
		return field[:idx]
	}
	return field
}

// lookup resolves numeric keys against positional values first, then falls
// back to the named values.
func lookup(key string, positional []string, named *Params) (string, bool) {
	if n, err := strconv.Atoi(key); err == nil && n >= 0 && n < len(positional) {
		return positional[n], true
	}
	return named.Get(key)
}
