// Package suggest is the core, providing the completion engines and the
// adapter that presents a uniform operation set over any of them.
package suggest

// Engine is the minimum contract a completion engine must satisfy.
// An engine owns its corpus; it is not safe for concurrent use, callers
// needing that must serialize externally.
type Engine interface {
	// AddWord adds a single word to the corpus. Adding a word that is
	// already present is a no-op.
	AddWord(word string)

	// Candidates returns every stored word beginning with prefix. The
	// empty prefix matches the whole corpus. When nothing matches, the
	// result is the prefix itself as a singleton, never an empty slice.
	Candidates(prefix string) []string
}

// CommonPrefixer is an optional engine capability: a direct computation
// of the longest prefix shared by all candidates, without materializing
// the candidate list. Engines that omit it get the generic fold over
// Candidates instead.
type CommonPrefixer interface {
	CommonPrefix(prefix string) string
}

// BulkInserter is an optional engine capability: a bulk insert that can
// beat N sequential AddWord calls, e.g. by reserving capacity and
// sorting once. Engines that omit it get a sequential loop.
type BulkInserter interface {
	AddWords(words []string)
}
