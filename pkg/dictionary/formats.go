package dictionary

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// wordList is the packed on-disk format: a version tag and the words.
type wordList struct {
	Version int      `msgpack:"v"`
	Words   []string `msgpack:"w"`
}

const formatVersion = 1

// ReadBinary reads a packed msgpack word list.
func ReadBinary(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}

	var list wordList
	if err := msgpack.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode word list %s: %w", path, err)
	}
	if list.Version != formatVersion {
		return nil, fmt.Errorf("unsupported word list version %d in %s", list.Version, path)
	}
	return list.Words, nil
}

// SaveBinary writes words as a packed msgpack word list.
func SaveBinary(path string, words []string) error {
	data, err := msgpack.Marshal(wordList{Version: formatVersion, Words: words})
	if err != nil {
		return fmt.Errorf("failed to encode word list: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write word list %s: %w", path, err)
	}
	return nil
}
