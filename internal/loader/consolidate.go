package loader

import "eplotdb/internal/extract"

// SeriesEntry is one distinct series discovered in pass one.
type SeriesEntry struct {
	Name  string
	Year  string
	Month string
}

// Index maps cleaned series names to their entry while remembering the order
// in which they were first seen.
type Index struct {
	entries []SeriesEntry
	byName  map[string]int
}

// Consolidate builds the series index. The year and month of a series come
// from the first episode with that cleaned name, empty or not.
func Consolidate(episodes []extract.Episode) Index {
	idx := Index{byName: make(map[string]int)}
	for _, ep := range episodes {
		if _, ok := idx.byName[ep.SeriesNameClean]; ok {
			continue
		}
		idx.byName[ep.SeriesNameClean] = len(idx.entries)
		idx.entries = append(idx.entries, SeriesEntry{
			Name:  ep.SeriesNameClean,
			Year:  ep.EpYear,
			Month: ep.EpMonth,
		})
	}
	return idx
}

// Len returns the number of distinct series.
func (i Index) Len() int { return len(i.entries) }

// Entries returns the series in first-seen order.
func (i Index) Entries() []SeriesEntry {
	out := make([]SeriesEntry, len(i.entries))
	copy(out, i.entries)
	return out
}

// Lookup returns the entry for a cleaned series name.
func (i Index) Lookup(name string) (SeriesEntry, bool) {
	pos, ok := i.byName[name]
	if !ok {
		return SeriesEntry{}, false
	}
	return i.entries[pos], true
}
