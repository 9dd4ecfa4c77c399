package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// DefaultOptionsFile is read when no other options file is configured.
const DefaultOptionsFile = "options.json"

var blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)

// Options are the user's per-library tweaks, matched against cleaned game
// titles. Map keys match case-insensitively since the reader folds them; list
// entries match exactly.
type Options struct {
	// IgnorePlatforms are platforms whose icons are never shown
	IgnorePlatforms []string `mapstructure:"ignorePlatforms"`
	// IgnoreGames are titles left out of the catalog
	IgnoreGames []string `mapstructure:"ignoreGames"`
	// Rename maps a title to the one to display instead
	Rename map[string]string `mapstructure:"rename"`
	// Merge lists groups of titles folded into the group's first title
	Merge [][]string `mapstructure:"merge"`
	// SortAs maps a title to the name it is sorted and searched by
	SortAs map[string]string `mapstructure:"sortAs"`
	// CustomSort lists groups of titles kept in the listed order
	CustomSort [][]string `mapstructure:"customSort"`
}

// LoadOptions reads the options file at path. A missing file yields empty
// options. JSON files may contain /* */ comments; other formats are read by
// extension.
func LoadOptions(path string) (*Options, error) {
	opts := NewOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts.withDefaults(), nil
		}
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}

	configType := strings.TrimPrefix(filepath.Ext(path), ".")
	if configType == "" || configType == "json" {
		configType = "json"
		data = blockComment.ReplaceAll(data, nil)
	}

	// Titles often contain dots, which must not split keys.
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to parse options file %s: %w", path, err)
	}
	if err := v.Unmarshal(opts); err != nil {
		return nil, fmt.Errorf("failed to decode options file %s: %w", path, err)
	}

	return opts.withDefaults(), nil
}

// NewOptions returns empty options.
func NewOptions() *Options {
	return (&Options{}).withDefaults()
}

func (o *Options) withDefaults() *Options {
	if o.IgnorePlatforms == nil {
		o.IgnorePlatforms = []string{}
	}
	if o.IgnoreGames == nil {
		o.IgnoreGames = []string{}
	}
	if o.Rename == nil {
		o.Rename = map[string]string{}
	}
	if o.Merge == nil {
		o.Merge = [][]string{}
	}
	if o.SortAs == nil {
		o.SortAs = map[string]string{}
	}
	if o.CustomSort == nil {
		o.CustomSort = [][]string{}
	}
	return o
}

// Normalize rewrites every title of the options with clean, so they compare
// equal to titles cleaned the same way. Rename targets are cleaned too since
// they become titles. Sort names and platform names are left alone.
func (o *Options) Normalize(clean func(string) string) {
	cleanAll := func(titles []string) []string {
		out := make([]string, len(titles))
		for i, t := range titles {
			out[i] = clean(t)
		}
		return out
	}
	cleanKeys := func(m map[string]string, values bool) map[string]string {
		out := make(map[string]string, len(m))
		for k, v := range m {
			if values {
				v = clean(v)
			}
			out[strings.ToLower(clean(k))] = v
		}
		return out
	}

	o.IgnoreGames = cleanAll(o.IgnoreGames)
	for i := range o.Merge {
		o.Merge[i] = cleanAll(o.Merge[i])
	}
	for i := range o.CustomSort {
		o.CustomSort[i] = cleanAll(o.CustomSort[i])
	}
	o.Rename = cleanKeys(o.Rename, true)
	o.SortAs = cleanKeys(o.SortAs, false)
}

// Ignored reports whether title is in IgnoreGames.
func (o *Options) Ignored(title string) bool {
	return slices.Contains(o.IgnoreGames, title)
}

// RenameFor returns the replacement title for title, if any.
func (o *Options) RenameFor(title string) (string, bool) {
	v, ok := o.Rename[strings.ToLower(title)]
	return v, ok
}

// SortAsFor returns the sort name override for title, if any.
func (o *Options) SortAsFor(title string) (string, bool) {
	v, ok := o.SortAs[strings.ToLower(title)]
	return v, ok
}
