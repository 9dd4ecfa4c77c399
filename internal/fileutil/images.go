package fileutil

import (
	"log/slog"
	"os"
	"path"
	"path/filepath"
)

// KeepFile is never purged from the image directory.
const KeepFile = ".keep"

// PurgeResult counts the outcome of an image purge.
type PurgeResult struct {
	Deleted int
	Failed  int
}

// PurgeUnusedImages deletes the files of the image directory imageDir that
// are not in used. Paths in used are slash-separated and relative to baseDir,
// like "images/cover.jpg". A missing directory purges nothing.
func PurgeUnusedImages(baseDir, imageDir string, used map[string]bool) PurgeResult {
	var res PurgeResult

	entries, err := os.ReadDir(filepath.Join(baseDir, imageDir))
	if err != nil {
		slog.Debug("Image directory not readable, nothing to purge", "dir", imageDir, "error", err)
		return res
	}

	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == KeepFile {
			continue
		}
		rel := path.Join(filepath.ToSlash(imageDir), entry.Name())
		if used[rel] {
			continue
		}
		if err := os.Remove(filepath.Join(baseDir, filepath.FromSlash(rel))); err != nil {
			slog.Warn("Failed to purge image", "path", rel, "error", err)
			res.Failed++
			continue
		}
		res.Deleted++
	}
	return res
}

// FirstExisting returns the first of paths (relative to baseDir) that exists.
func FirstExisting(baseDir string, paths []string) (string, bool) {
	for _, p := range paths {
		if FileExists(filepath.Join(baseDir, filepath.FromSlash(p))) {
			return p, true
		}
	}
	return "", false
}

// PromoteFallbackImages renames any existing fallback image (every path but
// the first) to the primary path. A fallback that cannot be renamed is
// removed. Returns the number of renamed files.
func PromoteFallbackImages(baseDir string, paths []string) int {
	if len(paths) < 2 {
		return 0
	}

	primary := filepath.Join(baseDir, filepath.FromSlash(paths[0]))
	renamed := 0
	for _, p := range paths[1:] {
		fallback := filepath.Join(baseDir, filepath.FromSlash(p))
		if !FileExists(fallback) {
			continue
		}
		if err := os.Rename(fallback, primary); err != nil {
			slog.Warn("Failed to rename image, removing it", "from", p, "to", paths[0], "error", err)
			_ = os.Remove(fallback)
			continue
		}
		renamed++
	}
	return renamed
}
