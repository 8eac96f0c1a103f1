package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRadixCandidates(t *testing.T) {
	e := NewRadixEngine()
	e.AddWord("commit")
	e.AddWord("cherry")
	e.AddWord("cherry-pick")

	assert.ElementsMatch(t, []string{"cherry", "cherry-pick"}, e.Candidates("ch"))
	assert.ElementsMatch(t, []string{"commit", "cherry", "cherry-pick"}, e.Candidates(""))
	assert.Equal(t, []string{"push"}, e.Candidates("push"))
	assert.ElementsMatch(t, []string{"cherry", "cherry-pick"}, e.Candidates("cherry"))
}

func TestRadixIdempotentInsert(t *testing.T) {
	e := NewRadixEngine()
	e.AddWord("cherry")
	e.AddWord("cherry")

	assert.Equal(t, []string{"cherry"}, e.Candidates(""))
}

func TestRadixEmptyCorpus(t *testing.T) {
	e := NewRadixEngine()

	assert.Equal(t, []string{"x"}, e.Candidates("x"))
}
