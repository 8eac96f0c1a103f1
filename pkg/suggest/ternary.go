package suggest

// TernaryEngine stores the corpus in a ternary search tree. Each node
// carries one symbol and three links: low and high branch on byte order
// at the current position, equal advances to the next position. A node
// with terminal set marks the end of a stored word along its equal-chain
// path from the root.
//
// Children are reachable from exactly one parent, so dropping the engine
// releases the whole tree through the garbage collector.
type TernaryEngine struct {
	root *tnode
}

type tnode struct {
	low, equal, high *tnode
	sym              byte
	terminal         bool
}

// NewTernaryEngine returns an empty ternary search tree engine.
func NewTernaryEngine() *TernaryEngine {
	return &TernaryEngine{}
}

// AddWord inserts word, creating nodes lazily along the walk. Inserting
// a word already present only re-marks its terminal node.
func (e *TernaryEngine) AddWord(word string) {
	if word == "" {
		return
	}
	n := &e.root
	for i := 0; ; {
		if *n == nil {
			*n = &tnode{sym: word[i]}
		}
		switch {
		case word[i] < (*n).sym:
			n = &(*n).low
		case word[i] > (*n).sym:
			n = &(*n).high
		default:
			i++
			if i == len(word) {
				(*n).terminal = true
				return
			}
			n = &(*n).equal
		}
	}
}

// Candidates walks the prefix and enumerates every word below the node
// it ends on. A stored word equal to the prefix is itself a candidate.
// Results come out in lexicographic order; callers must not rely on it.
func (e *TernaryEngine) Candidates(prefix string) []string {
	if prefix == "" {
		out := collect(e.root, "", nil)
		if len(out) == 0 {
			return []string{prefix}
		}
		return out
	}
	for i, n := 0, e.root; n != nil; {
		switch {
		case prefix[i] < n.sym:
			n = n.low
		case prefix[i] > n.sym:
			n = n.high
		default:
			i++
			if i == len(prefix) {
				var out []string
				if n.terminal {
					out = append(out, prefix)
				}
				out = collect(n.equal, prefix, out)
				if len(out) == 0 {
					return []string{prefix}
				}
				return out
			}
			n = n.equal
		}
	}
	return []string{prefix}
}

// collect appends every word stored in the subtree at n to out. acc holds
// the symbols matched on the path above n; it is passed by value so the
// low and high branches never see the equal branch's extensions. n's own
// symbol joins the accumulator only for the word ending at n and for the
// equal continuation.
func collect(n *tnode, acc string, out []string) []string {
	if n == nil {
		return out
	}
	out = collect(n.low, acc, out)
	word := acc + string(n.sym)
	if n.terminal {
		out = append(out, word)
	}
	out = collect(n.equal, word, out)
	return collect(n.high, acc, out)
}

// CommonPrefix walks the prefix, then extends it along the unambiguous
// tail: while the current node is the only way forward, its symbol is
// forced into every candidate. The walk stops at a terminal node, since
// a stored word must not be extended past itself, and at any low/high
// fork. If the prefix itself cannot be matched it is returned unchanged.
func (e *TernaryEngine) CommonPrefix(prefix string) string {
	n := e.root
	for i := 0; i < len(prefix); {
		if n == nil {
			return prefix
		}
		switch {
		case prefix[i] < n.sym:
			n = n.low
		case prefix[i] > n.sym:
			n = n.high
		default:
			i++
			if i == len(prefix) && n.terminal {
				return prefix
			}
			n = n.equal
		}
	}
	s := prefix
	for n != nil && n.low == nil && n.high == nil {
		s += string(n.sym)
		if n.terminal {
			break
		}
		n = n.equal
	}
	return s
}
