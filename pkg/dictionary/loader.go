// Package dictionary loads word lists into a completion corpus.
//
// Two formats are supported: plain text with one word per line (blank
// lines and '#' comments skipped) and a packed msgpack word list, the
// format written by SaveBinary. Loading goes through the completer's
// bulk path so engines with a native bulk insert get to use it.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/elbeno/autocomplete/pkg/suggest"
)

// Loader reads word lists and feeds them to a completer.
type Loader struct {
	completer *suggest.Completer
	maxWords  int
	loaded    int
}

// NewLoader returns a loader feeding completer, keeping at most maxWords
// words per load (0 means unlimited).
func NewLoader(completer *suggest.Completer, maxWords int) *Loader {
	return &Loader{
		completer: completer,
		maxWords:  maxWords,
	}
}

// LoadFile loads a word list, picking the format from the extension:
// ".bin" and ".msgpack" are packed lists, everything else is text.
func (l *Loader) LoadFile(path string) error {
	start := time.Now()

	var words []string
	var err error
	switch ext := filepath.Ext(path); ext {
	case ".bin", ".msgpack":
		words, err = ReadBinary(path)
	default:
		words, err = readText(path)
	}
	if err != nil {
		return err
	}

	if l.maxWords > 0 && len(words) > l.maxWords {
		log.Warnf("Word list %s has %d words, loading first %d", path, len(words), l.maxWords)
		words = words[:l.maxWords]
	}

	l.completer.AddWords(words...)
	l.loaded += len(words)

	log.Debugf("Loaded %d words from %s in %v", len(words), path, time.Since(start))
	return nil
}

// Loaded returns the number of words fed to the completer so far.
func (l *Loader) Loaded() int {
	return l.loaded
}

// readText reads one word per line, trimming whitespace and skipping
// blanks and '#' comments.
func readText(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	return words, nil
}
