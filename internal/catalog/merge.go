package catalog

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

// Merge folds every group of titles into the record of the group's first
// title. The other records of the group are removed from the collection.
// Groups whose first title is unknown are skipped, and so are unknown titles
// within a group.
func Merge(records []Record, groups [][]string) []Record {
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}

		target := slices.IndexFunc(records, func(r Record) bool { return r.Title == group[0] })
		if target < 0 {
			slog.Debug("Merge target not found, skipping group", "title", group[0])
			continue
		}

		members := make(map[string]bool, len(group))
		for _, title := range group {
			members[title] = true
		}
		for _, title := range group[1:] {
			if !slices.ContainsFunc(records, func(r Record) bool { return r.Title == title }) {
				slog.Debug("Merge title not found, skipping", "title", title, "target", group[0])
			}
		}

		var items []int
		for i, r := range records {
			if i != target && members[r.Title] {
				items = append(items, i)
			}
		}

		// Highest index first, so deletions never shift a pending item.
		for i := len(items) - 1; i >= 0; i-- {
			item := items[i]
			mergeInto(&records[target], records[item])
			records = slices.Delete(records, item, item+1)
			if item < target {
				target--
			}
			slog.Debug("Merged record", "title", group[0], "item", item)
		}
	}
	return records
}

func mergeInto(dst *Record, src Record) {
	dst.SearchKeys = union(dst.SearchKeys, src.SearchKeys)
	dst.Developers = union(dst.Developers, src.Developers)
	dst.PlatformList = union(dst.PlatformList, src.PlatformList)
	dst.Genres = union(dst.Genres, src.Genres)
	dst.Themes = union(dst.Themes, src.Themes)

	if src.ReleaseDate != "" && (dst.ReleaseDate == "" || src.ReleaseDate < dst.ReleaseDate) {
		dst.ReleaseDate = src.ReleaseDate
	}

	dst.GameMins = strconv.Itoa(minutes(dst.GameMins) + minutes(src.GameMins))
}

// union appends the values of b missing from a, keeping first-seen order.
func union(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, v := range list {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// minutes parses a playtime; anything non-numeric counts as zero.
func minutes(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
