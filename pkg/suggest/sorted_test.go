package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedCandidates(t *testing.T) {
	e := NewSortedEngine()
	e.AddWord("commit")
	e.AddWord("cherry")
	e.AddWord("cherry-pick")

	assert.Equal(t, []string{"cherry", "cherry-pick"}, e.Candidates("ch"))
	assert.Equal(t, []string{"cherry", "cherry-pick", "commit"}, e.Candidates(""))
	assert.Equal(t, []string{"push"}, e.Candidates("push"))
	assert.Equal(t, []string{"cherry", "cherry-pick"}, e.Candidates("cherry"))
}

func TestSortedIdempotentInsert(t *testing.T) {
	e := NewSortedEngine()
	e.AddWord("cherry")
	e.AddWord("cherry")

	assert.Equal(t, []string{"cherry"}, e.Candidates(""))
}

func TestSortedBulkInsert(t *testing.T) {
	e := NewSortedEngine()
	e.AddWords([]string{"commit", "cherry", "cherry-pick", "cherry", ""})

	assert.Equal(t, []string{"cherry", "cherry-pick", "commit"}, e.Candidates(""))
}

// Bulk insert on top of an existing corpus must keep the slice sorted
// and duplicate-free.
func TestSortedBulkInsertMerges(t *testing.T) {
	e := NewSortedEngine()
	e.AddWord("merge")
	e.AddWord("commit")
	e.AddWords([]string{"cherry", "merge", "add"})

	assert.Equal(t, []string{"add", "cherry", "commit", "merge"}, e.Candidates(""))
}

func TestSortedEmptyCorpus(t *testing.T) {
	e := NewSortedEngine()

	assert.Equal(t, []string{"x"}, e.Candidates("x"))
	assert.Equal(t, []string{""}, e.Candidates(""))
}
