package galaxy

import (
	"log/slog"

	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/internal/catalog"
	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/internal/config"
	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/internal/csvutil"
	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/internal/markup"
)

// imageColumns are the image URLs of a row, in order of preference.
var imageColumns = []string{"verticalCover", "backgroundImage", "squareIcon"}

// LoadRecords reads the library export and builds the indexed records. Rows
// without any image, and games ignored by the options, are left out.
func LoadRecords(path string, delimiter rune, opts *config.Options) ([]catalog.Record, error) {
	return csvutil.Process(path, func(row csvutil.Row) (catalog.Record, error) {
		return parseRow(row, opts)
	}, csvutil.ProcessorOptions{
		Delimiter:       delimiter,
		RequiredColumns: imageColumns,
	})
}

func parseRow(row csvutil.Row, opts *config.Options) (catalog.Record, error) {
	var image string
	for _, column := range imageColumns {
		if row[column] != "" {
			image = row[column]
			break
		}
	}
	if image == "" {
		slog.Debug("No image, skipping game", "title", row["title"])
		return catalog.Record{}, csvutil.ErrSkipRow
	}

	paths := catalog.PathsFromURL(image)
	if len(paths) == 0 {
		slog.Warn("Unusable image URL, skipping game", "title", row["title"], "url", image)
		return catalog.Record{}, csvutil.ErrSkipRow
	}

	title := markup.Clean(row["title"], true)
	if opts.Ignored(title) {
		slog.Debug("Ignoring game", "title", title)
		return catalog.Record{}, csvutil.ErrSkipRow
	}
	if renamed, ok := opts.RenameFor(title); ok {
		title = renamed
	}

	rec := catalog.Record{
		Title:             title,
		Summary:           row["summary"],
		ReleaseDate:       markup.Clean(row["releaseDate"], true),
		CriticsScore:      markup.Clean(row["criticsScore"], true),
		GameMins:          row["gameMins"],
		Developers:        catalog.ParseList(row["developers"]),
		Publishers:        catalog.ParseList(row["publishers"]),
		Genres:            catalog.ParseList(row["genres"]),
		Themes:            catalog.ParseList(row["themes"]),
		DLCs:              catalog.ParseList(row["dlcs"]),
		PlatformList:      catalog.ParseList(row["platformList"]),
		DefaultImage:      image,
		DefaultImagePaths: paths,
	}

	override, _ := opts.SortAsFor(title)
	rec.Index(override)
	return rec, nil
}
