package galaxy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/internal/catalog"
	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/internal/config"
	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/internal/fileutil"
	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/internal/markup"
	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/internal/platform"
	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/internal/tmpl"
	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/templates"
)

// asset is a page resource. A "<name>.custom<ext>" copy in dir takes
// precedence over "<name><ext>", which takes precedence over the embedded
// default.
type asset struct {
	dir  string
	name string
	ext  string
	// embedded is the path of the default inside templates.FS
	embedded string
}

var (
	indexAsset     = asset{dir: "templates", name: "index", ext: ".html", embedded: "index.html"}
	gameAsset      = asset{dir: "templates", name: "game", ext: ".html", embedded: "game.html"}
	scriptAsset    = asset{dir: "templates", name: "script", ext: ".js", embedded: "script.js"}
	styleAsset     = asset{dir: "templates", name: "style", ext: ".css", embedded: "style.css"}
	platformsAsset = asset{dir: "assets/icons", name: "platforms", ext: ".svg", embedded: "assets/icons/platforms.svg"}
)

// locate returns the slash-separated path of the asset on disk, relative to
// baseDir, or "" when neither copy exists.
func (a asset) locate(baseDir string) string {
	for _, name := range []string{a.name + ".custom" + a.ext, a.name + a.ext} {
		rel := path.Join(a.dir, name)
		if fileutil.FileExists(filepath.Join(baseDir, filepath.FromSlash(rel))) {
			return rel
		}
	}
	return ""
}

// load returns the asset content, read from disk when available.
func (a asset) load(baseDir string) (string, error) {
	if rel := a.locate(baseDir); rel != "" {
		data, err := os.ReadFile(filepath.Join(baseDir, filepath.FromSlash(rel)))
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", rel, err)
		}
		return string(data), nil
	}

	data, err := fs.ReadFile(templates.FS, a.embedded)
	if err != nil {
		return "", fmt.Errorf("failed to read embedded %s: %w", a.embedded, err)
	}
	return string(data), nil
}

// include inlines the asset between before and after, or links it with the
// link format when it exists on disk.
func (a asset) include(baseDir string, embed bool, before, after, link string) (string, error) {
	if !embed {
		if rel := a.locate(baseDir); rel != "" {
			return fmt.Sprintf(link, html.EscapeString(rel)), nil
		}
		slog.Debug("Asset not on disk, embedding it", "asset", a.name+a.ext)
	}

	content, err := a.load(baseDir)
	if err != nil {
		return "", err
	}
	return before + content + after, nil
}

// Page is the set of templates a catalog page is rendered from.
type Page struct {
	Index     string
	Game      string
	Style     string
	Script    string
	Platforms string
}

// LoadPage reads the page templates. With embed set the stylesheet and the
// script are inlined, otherwise they are linked.
func LoadPage(baseDir string, embed bool) (*Page, error) {
	var (
		p   Page
		err error
	)
	if p.Index, err = indexAsset.load(baseDir); err != nil {
		return nil, err
	}
	if p.Game, err = gameAsset.load(baseDir); err != nil {
		return nil, err
	}
	if p.Style, err = styleAsset.include(baseDir, embed, "<style>", "</style>",
		`<link rel="stylesheet" type="text/css" href="%s">`); err != nil {
		return nil, err
	}
	if p.Script, err = scriptAsset.include(baseDir, embed, "<script>", "</script>",
		`<script src="%s"></script>`); err != nil {
		return nil, err
	}
	if p.Platforms, err = platformsAsset.load(baseDir); err != nil {
		return nil, err
	}
	p.Platforms = platform.StripComments(p.Platforms)
	return &p, nil
}

// FirstID returns the id of the first game of a catalog of n games. Ids start
// past n rounded up to the thousands, leaving [0, n) free for reordering.
func FirstID(n int) int {
	return n + 1000 - n%1000 + 1
}

// GameParams returns the template parameters of a single game.
func GameParams(id int, r catalog.Record, ignorePlatforms []string) *tmpl.Params {
	return tmpl.NewParams().
		Set("id", strconv.Itoa(id)).
		Set("title", r.Title).
		Set("description", markup.Structure(r.Summary)).
		Set("dlcs", delist(r.DLCs)).
		Set("search", searchAttr(r.SearchKeys)).
		Set("developers", delist(r.Developers)).
		Set("platforms", platform.Icons(r.PlatformList, ignorePlatforms)).
		Set("score", r.CriticsScore).
		Set("publishers", delist(r.Publishers)).
		Set("released", r.ReleaseDate).
		Set("genres", delist(r.Genres)).
		Set("themes", delist(r.Themes)).
		Set("playtime", catalog.Duration(r.GameMins))
}

// ImageRule returns the stylesheet rule placing a game and its cover.
func ImageRule(id int, image string) string {
	return fmt.Sprintf(`#game-%d{order:%d;background-image:url("%s");}`, id, id, image)
}

// searchAttr encodes search keys for a single-quoted HTML attribute.
func searchAttr(keys []string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if keys == nil {
		keys = []string{}
	}
	_ = enc.Encode(keys)
	return strings.ReplaceAll(strings.TrimSuffix(buf.String(), "\n"), "'", "&apos;")
}

func delist(values []string) string {
	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = html.EscapeString(v)
	}
	return catalog.Delist(escaped)
}

// Render builds the catalog page. Fallback images of rendered games are
// promoted to their primary path under baseDir as a side effect.
func (p *Page) Render(opts Options, records []catalog.Record, userOpts *config.Options) (string, error) {
	var debugHTML string
	if opts.Debug || len(opts.DebugIDs) > 0 {
		showcase, err := platform.Showcase(p.Platforms)
		if err != nil {
			return "", err
		}
		debugHTML = showcase
	}

	var games, css strings.Builder
	id := FirstID(len(records))
	for i, r := range records {
		gameID := id + i
		if len(opts.DebugIDs) > 0 && !slices.Contains(opts.DebugIDs, gameID) {
			continue
		}

		if n := fileutil.PromoteFallbackImages(opts.BaseDir, r.DefaultImagePaths); n > 0 {
			slog.Debug("Renamed fallback image", "title", r.Title, "path", r.PrimaryImage())
		}

		games.WriteString(tmpl.Render(p.Game, nil, GameParams(gameID, r, userOpts.IgnorePlatforms)).Output)
		css.WriteString(ImageRule(gameID, r.PrimaryImage()))
	}

	imageCSS := css.String()
	if len(opts.DebugIDs) > 0 {
		imageCSS = ""
	}

	page := tmpl.Format(p.Index, nil, tmpl.NewParams().
		Set("language", "en").
		Set("title", html.EscapeString(opts.Title)).
		Set("imageCSS", imageCSS).
		Set("style", p.Style).
		Set("javascript", p.Script).
		Set("content", games.String()).
		Set("platformIcons", p.Platforms).
		Set("debug", debugHTML))
	return page.Output, nil
}

func exportHTML(opts Options, records []catalog.Record, userOpts *config.Options) error {
	page, err := LoadPage(opts.BaseDir, opts.Embed)
	if err != nil {
		return err
	}

	out, err := page.Render(opts, records, userOpts)
	if err != nil {
		return err
	}

	written, err := fileutil.WriteFileWithOverwrite(opts.path(opts.OutputFile), []byte(out), 0644, opts.Overwrite)
	if err != nil {
		return err
	}
	if !written {
		slog.Info("HTML5 list already exists, skipping", "path", opts.OutputFile)
		return nil
	}
	slog.Info("HTML5 list exported", "path", opts.OutputFile, "games", len(records))
	return nil
}
