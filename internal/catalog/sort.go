package catalog

import (
	"sort"

	"github.com/maruel/natural"
)

// SortKey is what the catalog is ordered by. It is computed once per record,
// after merging.
type SortKey struct {
	Canonical string
	Title     string
}

// Key returns the record's sort key.
func (r Record) Key() SortKey {
	return SortKey{Canonical: r.CanonicalTitle, Title: r.Title}
}

// Less orders keys naturally by canonical title, so "part 2" comes before
// "part 10". Equal canonical titles are equivalent.
func (k SortKey) Less(other SortKey) bool {
	if k.Canonical == other.Canonical {
		return false
	}
	return natural.Less(k.Canonical, other.Canonical)
}

// Sort orders records in place.
//
// Records are first sorted naturally by canonical title. Each custom list then
// reorders its own members: the positions they ended up in are handed out
// again following the list order. A title listed more than once uses its first
// position, and a record belongs to the first list naming it. Records outside
// every list keep their natural position.
func Sort(records []Record, customSort [][]string) {
	keys := make([]SortKey, len(records))
	for i, r := range records {
		keys[i] = r.Key()
	}
	sort.Stable(byKey{records: records, keys: keys})

	claimed := make([]bool, len(records))
	for _, list := range customSort {
		rank := make(map[string]int, len(list))
		for i, title := range list {
			if _, ok := rank[title]; !ok {
				rank[title] = i
			}
		}

		var slots []int
		for i, r := range records {
			if _, ok := rank[r.Title]; ok && !claimed[i] {
				slots = append(slots, i)
			}
		}
		if len(slots) < 2 {
			for _, s := range slots {
				claimed[s] = true
			}
			continue
		}

		members := make([]Record, len(slots))
		for i, s := range slots {
			members[i] = records[s]
		}
		sort.SliceStable(members, func(i, j int) bool {
			return rank[members[i].Title] < rank[members[j].Title]
		})
		for i, s := range slots {
			records[s] = members[i]
			claimed[s] = true
		}
	}
}

type byKey struct {
	records []Record
	keys    []SortKey
}

func (b byKey) Len() int           { return len(b.records) }
func (b byKey) Less(i, j int) bool { return b.keys[i].Less(b.keys[j]) }
func (b byKey) Swap(i, j int) {
	b.records[i], b.records[j] = b.records[j], b.records[i]
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
}
