package utils

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DecodeTOMLFile strictly decodes a TOML file into v. Callers fall
// back to DecodeTOMLMap when a single bad value makes this fail.
func DecodeTOMLFile(path string, v any) error {
	if _, err := toml.DecodeFile(path, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// DecodeTOMLMap parses a TOML file into a loose map so the valid
// fields survive a value the strict decode choked on.
func DecodeTOMLMap(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parsed := make(map[string]any)
	if _, err := toml.Decode(string(data), &parsed); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return parsed, nil
}

// Section returns the named TOML table from a loosely parsed map.
func Section(data map[string]any, name string) (map[string]any, bool) {
	section, ok := data[name].(map[string]any)
	return section, ok
}

// IntValue reads an integer key from a TOML table. TOML integers
// decode as int64, so anything else (a bool, a string) is rejected.
func IntValue(data map[string]any, key string) (int, bool) {
	if val, ok := data[key].(int64); ok {
		return int(val), true
	}
	return 0, false
}

// StringValue reads a string key from a TOML table.
func StringValue(data map[string]any, key string) (string, bool) {
	val, ok := data[key].(string)
	return val, ok
}
