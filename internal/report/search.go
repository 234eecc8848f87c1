package report

import (
	"github.com/lithammer/fuzzysearch/fuzzy"

	"hesab/internal/core"
)

// SearchNotes filters entries whose note fuzzy-matches the query,
// case-insensitively, preserving list order. An empty query matches
// everything.
func SearchNotes(entries []core.Entry, query string) []core.Entry {
	if query == "" {
		out := make([]core.Entry, len(entries))
		copy(out, entries)
		return out
	}
	var out []core.Entry
	for _, e := range entries {
		if fuzzy.MatchNormalizedFold(query, e.Note) {
			out = append(out, e)
		}
	}
	return out
}
