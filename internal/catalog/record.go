// Package catalog holds the game records and the collection-wide passes run
// over them: merging duplicate entries and ordering the catalog.
package catalog

import (
	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/internal/searchkey"
)

// Record is a single game of the library, as exported by GOG Galaxy and
// enriched with the derived search data.
type Record struct {
	Title        string   `json:"title" yaml:"title"`
	Summary      string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	ReleaseDate  string   `json:"releaseDate,omitempty" yaml:"releaseDate,omitempty"`
	CriticsScore string   `json:"criticsScore,omitempty" yaml:"criticsScore,omitempty"`
	GameMins     string   `json:"gameMins,omitempty" yaml:"gameMins,omitempty"`
	Developers   []string `json:"developers" yaml:"developers"`
	Publishers   []string `json:"publishers" yaml:"publishers"`
	Genres       []string `json:"genres" yaml:"genres"`
	Themes       []string `json:"themes" yaml:"themes"`
	DLCs         []string `json:"dlcs" yaml:"dlcs"`
	PlatformList []string `json:"platformList" yaml:"platformList"`

	// DefaultImage is the URL of the preferred cover image.
	DefaultImage string `json:"defaultImage" yaml:"defaultImage"`
	// DefaultImagePaths are the local candidates for DefaultImage, primary first.
	DefaultImagePaths []string `json:"defaultImagePaths" yaml:"defaultImagePaths"`

	CanonicalTitle string   `json:"canonicalTitle" yaml:"canonicalTitle"`
	SearchKeys     []string `json:"searchKeys" yaml:"searchKeys"`
}

// Index derives the canonical title and the search keys. override, when not
// empty, replaces the transliterated title.
func (r *Record) Index(override string) {
	keys := searchkey.Generate(r.Title, override)
	r.CanonicalTitle = keys.Canonical
	r.SearchKeys = keys.Search
}

// PrimaryImage returns the preferred local image path, or "" when the record
// has none.
func (r Record) PrimaryImage() string {
	if len(r.DefaultImagePaths) == 0 {
		return ""
	}
	return r.DefaultImagePaths[0]
}
