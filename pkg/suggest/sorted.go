package suggest

import (
	"slices"
	"sort"
	"strings"
)

// SortedEngine is the baseline engine: the corpus lives in a sorted
// slice, so every candidate set is a contiguous run. It provides a
// native bulk insert but leaves CommonPrefix to the adapter.
type SortedEngine struct {
	words []string
}

// NewSortedEngine returns an empty sorted-slice engine.
func NewSortedEngine() *SortedEngine {
	return &SortedEngine{}
}

// AddWord inserts word at its sorted position, skipping duplicates.
func (e *SortedEngine) AddWord(word string) {
	if word == "" {
		return
	}
	i := sort.SearchStrings(e.words, word)
	if i < len(e.words) && e.words[i] == word {
		return
	}
	e.words = slices.Insert(e.words, i, word)
}

// AddWords appends the whole batch, sorts once and drops duplicates.
// Cheaper than len(words) incremental inserts since capacity is known
// up front and re-sorting happens a single time.
func (e *SortedEngine) AddWords(words []string) {
	e.words = slices.Grow(e.words, len(words))
	for _, w := range words {
		if w != "" {
			e.words = append(e.words, w)
		}
	}
	sort.Strings(e.words)
	e.words = slices.Compact(e.words)
}

// Candidates binary-searches for the first word >= prefix and scans
// forward while the prefix still leads; sortedness keeps all matches
// contiguous.
func (e *SortedEngine) Candidates(prefix string) []string {
	var out []string
	for i := sort.SearchStrings(e.words, prefix); i < len(e.words); i++ {
		if !strings.HasPrefix(e.words[i], prefix) {
			break
		}
		out = append(out, e.words[i])
	}
	if len(out) == 0 {
		return []string{prefix}
	}
	return out
}
