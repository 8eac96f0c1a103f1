// Package cli handles cmd line input for DBG and testing the completion engines
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	charm "github.com/charmbracelet/log"

	"github.com/elbeno/autocomplete/internal/logger"
	"github.com/elbeno/autocomplete/pkg/suggest"
)

// InputHandler processes user input from stdin, printing the candidate
// set and the common prefix for each entered query. It accepts flags to
// control minimum and maximum prefix length and the candidate limit.
type InputHandler struct {
	completer       *suggest.Completer
	log             *charm.Logger
	minPrefixLength int
	maxPrefixLength int
	candidateLimit  int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(completer *suggest.Completer, minLength, maxLength, limit int) *InputHandler {
	return &InputHandler{
		completer:       completer,
		log:             logger.Default(""),
		minPrefixLength: minLength,
		maxPrefixLength: maxLength,
		candidateLimit:  limit,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// A line starting with "+" adds the remaining words to the corpus.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	h.log.Print("autocomplete CLI")
	reader := bufio.NewReader(os.Stdin)
	h.log.Print("type a prefix and press Enter to see candidates, or '+ word...' to add words (Ctrl+C to exit):")

	for {
		h.log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "+"); ok {
			h.handleAdd(rest)
			continue
		}
		h.handleInput(line)
	}
}

// handleAdd inserts the whitespace-separated words into the corpus.
func (h *InputHandler) handleAdd(rest string) {
	words := strings.Fields(rest)
	if len(words) == 0 {
		h.log.Warn("Nothing to add")
		return
	}
	h.completer.AddWords(words...)
	h.log.Printf("Added %d words", len(words))
}

// handleInput processes a single prefix. It validates the prefix's
// length, then prints the candidate set and the common prefix with the
// time both took.
func (h *InputHandler) handleInput(prefix string) {
	if len(prefix) < h.minPrefixLength {
		h.log.Errorf("Prefix too short: %s", prefix)
		return
	}
	if len(prefix) > h.maxPrefixLength {
		h.log.Errorf("Prefix too long: %s", prefix)
		return
	}

	start := time.Now()
	candidates := h.completer.Candidates(prefix)
	common := h.completer.CommonPrefix(prefix)
	elapsed := time.Since(start)

	h.log.Debugf("Took [ %v ] for prefix '%s'", elapsed, prefix)

	if len(candidates) == 1 && candidates[0] == prefix {
		h.log.Warnf("No candidates found for prefix: '%s'", prefix)
		return
	}

	shown := candidates
	if h.candidateLimit > 0 && len(shown) > h.candidateLimit {
		shown = shown[:h.candidateLimit]
	}
	h.log.Printf("Found %d candidates for prefix '%s':", len(candidates), prefix)
	for i, w := range shown {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", w)
		h.log.Printf("%2d. %s", i+1, clWord)
	}
	h.log.Printf("common prefix: %s", common)
}
