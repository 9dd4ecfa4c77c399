package galaxy

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/internal/catalog"
	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/internal/fileutil"
)

// purgeImages removes the images no record refers to anymore.
func purgeImages(baseDir string, records []catalog.Record) {
	used := make(map[string]bool)
	for _, r := range records {
		for _, p := range r.DefaultImagePaths {
			used[p] = true
		}
	}

	res := fileutil.PurgeUnusedImages(baseDir, ImageDir, used)
	if res.Deleted > 0 {
		slog.Info("Purged unused images", "count", res.Deleted)
	}
	if res.Failed > 0 {
		slog.Warn("Failed to purge unused images", "count", res.Failed)
	}
}

// missingImages returns the image URLs of the records with no local copy.
func missingImages(baseDir string, records []catalog.Record) []string {
	var urls []string
	for _, r := range records {
		if _, ok := fileutil.FirstExisting(baseDir, r.DefaultImagePaths); !ok {
			urls = append(urls, r.DefaultImage)
		}
	}
	return urls
}

// exportImageList writes the URLs of the missing images, one per line. A stale
// list is removed when nothing is missing.
func exportImageList(opts Options, records []catalog.Record) error {
	if err := os.MkdirAll(opts.path(ImageDir), 0755); err != nil {
		return fmt.Errorf("failed to create image directory: %w", err)
	}

	listPath := opts.path(opts.ImageListFile)
	urls := missingImages(opts.BaseDir, records)
	if len(urls) == 0 {
		if err := os.Remove(listPath); err != nil && !os.IsNotExist(err) {
			slog.Warn("Failed to remove stale image list", "path", opts.ImageListFile, "error", err)
		}
		slog.Info("No new images to download")
		return nil
	}

	written, err := fileutil.WriteFileWithOverwrite(listPath, []byte(strings.Join(urls, "\n")), 0644, opts.Overwrite)
	if err != nil {
		return err
	}
	if !written {
		slog.Info("Image list already exists, skipping", "path", opts.ImageListFile)
		return nil
	}

	slog.Info("Image list exported",
		"count", len(urls),
		"download", fmt.Sprintf(`wget -nc -P %s -i "%s"`, ImageDir, opts.ImageListFile))
	return nil
}
