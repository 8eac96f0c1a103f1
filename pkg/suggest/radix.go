package suggest

import (
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// RadixEngine backs the corpus with a patricia trie. It implements only
// the mandatory contract, so a Completer wrapping it computes both
// CommonPrefix and bulk insertion generically.
type RadixEngine struct {
	trie *patricia.Trie
}

// NewRadixEngine returns an empty patricia-trie engine.
func NewRadixEngine() *RadixEngine {
	return &RadixEngine{trie: patricia.NewTrie()}
}

// AddWord stores word in the trie. Set overwrites, so repeats are no-ops.
func (e *RadixEngine) AddWord(word string) {
	if word == "" {
		return
	}
	e.trie.Set(patricia.Prefix(word), true)
}

// Candidates visits the subtree under prefix and collects every stored
// word, echoing the prefix back when the subtree is empty.
func (e *RadixEngine) Candidates(prefix string) []string {
	var out []string
	err := e.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		out = append(out, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
	}
	if len(out) == 0 {
		return []string{prefix}
	}
	return out
}
