// Package searchkey derives the canonical sort title and the alternate search
// strings used by the catalog page's client-side search.
package searchkey

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/cases"
)

// articles matches the English and Italian leading articles that are moved to
// the end of a title for sorting.
const articles = `(an?\s+|the\s+|il?\s+|l[oiae]\s+|gli\s+|un[oa]?\s+|(?:l|un)')`

var (
	leadingArticle  = regexp.MustCompile(`^` + articles + `(.+?)$`)
	trailingArticle = regexp.MustCompile(`, ` + articles + `$`)
	trademarks      = regexp.MustCompile(`\(tm\)|\(r\)`)
)

type substitution struct {
	pattern *regexp.Regexp
	replace string
}

// variantPasses are applied in order over the canonical title; each group
// yields one more search string.
var variantPasses = [][]substitution{
	{
		{regexp.MustCompile(`[,.…]`), ""},
	},
	{
		{regexp.MustCompile(`[;:'-]`), ""},
		{regexp.MustCompile(`[|\\/()]`), " "},
		{regexp.MustCompile(`\s{2,}`), " "},
	},
	{
		{regexp.MustCompile(`([0-9])0{12}(\s|$)`), "${1}t${2}"},
		{regexp.MustCompile(`([0-9])0{9}(\s|$)`), "${1}g${2}"},
		{regexp.MustCompile(`([0-9])0{6}(\s|$)`), "${1}m${2}"},
		{regexp.MustCompile(`([0-9])0{3}(\s|$)`), "${1}k${2}"},
	},
}

// Keys holds the derived sort and search strings for one title.
type Keys struct {
	// Canonical is the transliterated, case-folded, article-reordered title.
	Canonical string
	// Search is never empty for a non-empty title and never holds empty strings.
	Search []string
}

// Transliterate reduces s to plain lowercase ASCII. Accents are stripped and
// other scripts are romanized, so "Ведьмак" becomes "ved'mak".
func Transliterate(s string) string {
	return strings.ToLower(unidecode.Unidecode(s))
}

// Canonical returns the sortable form of title. A non-empty override replaces
// the transliteration and article reordering, but still goes through cleanup.
func Canonical(title, override string) string {
	var canonical string
	if override != "" {
		canonical = override
	} else {
		canonical = leadingArticle.ReplaceAllString(Transliterate(title), "${2}, ${1}")
		canonical = strings.TrimSpace(canonical)
	}

	canonical = trailingArticle.ReplaceAllString(canonical, "")
	canonical = trademarks.ReplaceAllString(canonical, "")
	return cases.Fold().String(canonical)
}

// Generate derives the canonical title and the search strings for title.
func Generate(title, override string) Keys {
	keys := Keys{Canonical: Canonical(title, override)}
	keys.add(strings.ToLower(title))
	keys.add(keys.Canonical)

	variant := keys.Canonical
	for _, pass := range variantPasses {
		for _, sub := range pass {
			variant = strings.TrimSpace(sub.pattern.ReplaceAllString(variant, sub.replace))
		}
		keys.add(variant)
	}

	tokens := strings.Split(variant, " ")
	for i, token := range tokens {
		tokens[i] = NormalizeRoman(token)
	}
	keys.add(strings.Join(tokens, " "))

	return keys
}

func (k *Keys) add(s string) {
	if s == "" {
		return
	}
	for _, existing := range k.Search {
		if existing == s {
			return
		}
	}
	k.Search = append(k.Search, s)
}
