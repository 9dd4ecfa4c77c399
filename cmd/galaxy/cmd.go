// Package galaxy converts a GOG Galaxy 2 library export into an image
// download list and a searchable HTML5 catalog page.
package galaxy

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"unicode/utf8"

	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/internal/catalog"
	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/internal/config"
	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/internal/errors"
	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/internal/fileutil"
	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/internal/markup"
)

// ImageDir holds the downloaded cover images, relative to the base directory.
const ImageDir = "images"

// Options configures an export run. Relative paths are resolved against
// BaseDir.
type Options struct {
	BaseDir     string
	Input       string
	Delimiter   string
	OptionsFile string

	ImageList     bool
	ImageListFile string

	HTML5      bool
	OutputFile string
	Title      string
	Embed      bool

	// Debug adds the platform icon showcase. DebugIDs, when not empty, limits
	// the page to those game ids and leaves out the cover images.
	Debug    bool
	DebugIDs []int

	RecordsFile string
	Overwrite   bool
}

// Export runs the whole conversion: load, merge and sort the library, purge
// stale images, then write the requested outputs.
func Export(opts Options) error {
	input := opts.path(opts.Input)
	if !fileutil.FileExists(input) {
		return errors.NewInputNotFoundError(opts.Input)
	}

	optionsFile := opts.OptionsFile
	if optionsFile == "" {
		optionsFile = config.DefaultOptionsFile
	}
	userOpts, err := config.LoadOptions(opts.path(optionsFile))
	if err != nil {
		slog.Warn("Ignoring options file", "path", optionsFile, "error", err)
		userOpts = config.NewOptions()
	}
	userOpts.Normalize(func(s string) string { return markup.Clean(s, true) })

	delimiter, err := parseDelimiter(opts.Delimiter)
	if err != nil {
		return err
	}

	records, err := LoadRecords(input, delimiter, userOpts)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", opts.Input, err)
	}
	slog.Info("Loaded games", "count", len(records), "input", opts.Input)

	records = catalog.Merge(records, userOpts.Merge)
	catalog.Sort(records, userOpts.CustomSort)

	purgeImages(opts.BaseDir, records)

	if opts.ImageList {
		if err := exportImageList(opts, records); err != nil {
			return err
		}
	}

	if opts.HTML5 {
		if err := exportHTML(opts, records, userOpts); err != nil {
			return err
		}
	}

	if opts.RecordsFile != "" {
		if _, err := fileutil.WriteRecordsFile(records, opts.path(opts.RecordsFile), opts.Overwrite); err != nil {
			return fmt.Errorf("failed to write records: %w", err)
		}
	}

	return nil
}

func (o Options) path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(o.BaseDir, p)
}

// parseDelimiter accepts a single character, or \t for tabs.
func parseDelimiter(s string) (rune, error) {
	switch {
	case s == "":
		return ',', nil
	case s == `\t`:
		return '\t', nil
	case utf8.RuneCountInString(s) == 1:
		r, _ := utf8.DecodeRuneInString(s)
		return r, nil
	default:
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
}
