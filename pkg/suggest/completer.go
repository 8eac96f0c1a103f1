package suggest

// Completer presents the full operation set {AddWord, AddWords,
// Candidates, CommonPrefix} over any Engine. For each optional
// operation the constructor checks once whether the engine implements
// the corresponding capability interface and binds either the engine's
// own method or the generic fallback into a function field. After
// construction every call is a single indirect call on both paths; no
// per-call type assertion or capability flag is consulted.
//
// The Completer holds no state of its own beyond the bound functions;
// all corpus state lives in the engine.
type Completer struct {
	engine       Engine
	addWords     func(words []string)
	commonPrefix func(prefix string) string
}

// NewCompleter wraps engine, resolving its optional capabilities.
func NewCompleter(engine Engine) *Completer {
	c := &Completer{engine: engine}
	if b, ok := engine.(BulkInserter); ok {
		c.addWords = b.AddWords
	} else {
		c.addWords = c.addWordsSequential
	}
	if p, ok := engine.(CommonPrefixer); ok {
		c.commonPrefix = p.CommonPrefix
	} else {
		c.commonPrefix = c.foldCommonPrefix
	}
	return c
}

// AddWord adds a word to the autocomplete corpus.
func (c *Completer) AddWord(word string) {
	c.engine.AddWord(word)
}

// AddWords adds several words to the autocomplete corpus, using the
// engine's bulk insert when it has one.
func (c *Completer) AddWords(words ...string) {
	c.addWords(words)
}

// Candidates returns the autocompletion candidates for prefix.
func (c *Completer) Candidates(prefix string) []string {
	return c.engine.Candidates(prefix)
}

// CommonPrefix returns the prefix common to all candidates. This can be
// computed from the candidate list, but may be computed more directly
// depending on the engine.
func (c *Completer) CommonPrefix(prefix string) string {
	return c.commonPrefix(prefix)
}

func (c *Completer) addWordsSequential(words []string) {
	for _, w := range words {
		c.engine.AddWord(w)
	}
}

// foldCommonPrefix derives the common prefix from the candidate list by
// shrinking a window over the first candidate at each divergence point.
// Candidate order is not assumed. Engines are contracted never to return
// an empty candidate set, but an engine that does anyway folds to the
// query unchanged.
func (c *Completer) foldCommonPrefix(prefix string) string {
	v := c.engine.Candidates(prefix)
	if len(v) == 0 {
		return prefix
	}
	common := v[0]
	for _, w := range v[1:] {
		if n := sharedLen(common, w); n < len(common) {
			common = common[:n]
		}
	}
	return common
}

// sharedLen returns the length of the longest common leading run of a
// and b.
func sharedLen(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
