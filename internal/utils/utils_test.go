package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureWritableDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	require.True(t, EnsureWritableDir(dir))
	assert.True(t, FileExists(dir))
	// the probe file must not linger
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAbsolutePath(t *testing.T) {
	assert.Equal(t, "unknown", AbsolutePath(""))

	abs := filepath.Join(t.TempDir(), "config.toml")
	assert.Equal(t, abs, AbsolutePath(abs))

	rel := AbsolutePath("config.toml")
	assert.True(t, filepath.IsAbs(rel))
}

func TestSaveAndDecodeTOMLFile(t *testing.T) {
	type doc struct {
		Name  string `toml:"name"`
		Limit int    `toml:"limit"`
	}
	path := filepath.Join(t.TempDir(), "doc.toml")
	require.NoError(t, SaveTOMLFile(doc{Name: "ternary", Limit: 24}, path))

	var got doc
	require.NoError(t, DecodeTOMLFile(path, &got))
	assert.Equal(t, doc{Name: "ternary", Limit: 24}, got)
}

func TestDecodeTOMLMapFieldAccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loose.toml")
	content := `
[server]
max_limit = 64
min_prefix = true

[engine]
type = "sorted"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	parsed, err := DecodeTOMLMap(path)
	require.NoError(t, err)

	server, ok := Section(parsed, "server")
	require.True(t, ok)
	limit, ok := IntValue(server, "max_limit")
	assert.True(t, ok)
	assert.Equal(t, 64, limit)
	// wrong-typed value reads as absent
	_, ok = IntValue(server, "min_prefix")
	assert.False(t, ok)

	engine, ok := Section(parsed, "engine")
	require.True(t, ok)
	typ, ok := StringValue(engine, "type")
	assert.True(t, ok)
	assert.Equal(t, "sorted", typ)

	_, ok = Section(parsed, "dict")
	assert.False(t, ok)
}
