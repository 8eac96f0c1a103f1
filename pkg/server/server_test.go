package server

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/elbeno/autocomplete/pkg/config"
	"github.com/elbeno/autocomplete/pkg/suggest"
)

// run encodes the given requests, runs the server to stream end and
// returns a decoder over its output, positioned after the ready status.
func run(t *testing.T, cfg *config.Config, seed []string, requests ...Request) *msgpack.Decoder {
	t.Helper()
	return runWithConfigPath(t, cfg, "", seed, requests...)
}

func runWithConfigPath(t *testing.T, cfg *config.Config, configPath string, seed []string, requests ...Request) *msgpack.Decoder {
	t.Helper()

	completer := suggest.NewCompleter(suggest.NewTernaryEngine())
	completer.AddWords(seed...)

	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, r := range requests {
		require.NoError(t, enc.Encode(r))
	}

	srv := NewServerWithIO(completer, cfg, configPath, &in, &out)
	require.NoError(t, srv.Start())

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	require.Equal(t, "ready", ready.Status)
	return dec
}

var gitWords = []string{"commit", "cherry", "cherry-pick"}

func TestServerComplete(t *testing.T) {
	dec := run(t, config.DefaultConfig(), gitWords,
		Request{ID: "r1", Op: "complete", Prefix: "ch"})

	var resp CompletionResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "r1", resp.ID)
	assert.ElementsMatch(t, []string{"cherry", "cherry-pick"}, resp.Candidates)
	assert.Equal(t, 2, resp.Count)
}

func TestServerCompleteNoMatchEcho(t *testing.T) {
	dec := run(t, config.DefaultConfig(), gitWords,
		Request{ID: "r1", Op: "complete", Prefix: "push"})

	var resp CompletionResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, []string{"push"}, resp.Candidates)
}

func TestServerCompleteLimit(t *testing.T) {
	dec := run(t, config.DefaultConfig(), gitWords,
		Request{ID: "r1", Op: "complete", Prefix: "ch", Limit: 1})

	var resp CompletionResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Len(t, resp.Candidates, 1)
}

func TestServerCommonPrefix(t *testing.T) {
	dec := run(t, config.DefaultConfig(), gitWords,
		Request{ID: "r1", Op: "common_prefix", Prefix: "ch"},
		Request{ID: "r2", Op: "common_prefix", Prefix: "p"})

	var first, second PrefixResponse
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))
	assert.Equal(t, "cherry", first.Prefix)
	assert.Equal(t, "p", second.Prefix)
}

func TestServerAddThenComplete(t *testing.T) {
	dec := run(t, config.DefaultConfig(), nil,
		Request{ID: "r1", Op: "add", Words: []string{"rebase", "reflog"}},
		Request{ID: "r2", Op: "complete", Prefix: "re"})

	var added AddResponse
	require.NoError(t, dec.Decode(&added))
	assert.Equal(t, "ok", added.Status)
	assert.Equal(t, 2, added.Added)

	var resp CompletionResponse
	require.NoError(t, dec.Decode(&resp))
	assert.ElementsMatch(t, []string{"rebase", "reflog"}, resp.Candidates)
}

func TestServerAddMissingWords(t *testing.T) {
	dec := run(t, config.DefaultConfig(), nil,
		Request{ID: "r1", Op: "add"})

	var e Error
	require.NoError(t, dec.Decode(&e))
	assert.Equal(t, "r1", e.ID)
	assert.Equal(t, 400, e.Code)
}

func TestServerPrefixBounds(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MinPrefix = 2
	cfg.Server.MaxPrefix = 4

	dec := run(t, cfg, gitWords,
		Request{ID: "short", Op: "complete", Prefix: "c"},
		Request{ID: "long", Op: "common_prefix", Prefix: "cherry"})

	var short, long Error
	require.NoError(t, dec.Decode(&short))
	require.NoError(t, dec.Decode(&long))
	assert.Equal(t, "short", short.ID)
	assert.Equal(t, 400, short.Code)
	assert.Equal(t, "long", long.ID)
	assert.Equal(t, 400, long.Code)
}

func TestServerSetLimits(t *testing.T) {
	one := 1
	dec := run(t, config.DefaultConfig(), gitWords,
		Request{ID: "r1", Op: "set_limits", MaxLimit: &one},
		Request{ID: "r2", Op: "complete", Prefix: "ch"})

	var cfgResp ConfigResponse
	require.NoError(t, dec.Decode(&cfgResp))
	assert.Equal(t, "r1", cfgResp.ID)
	assert.Equal(t, "ok", cfgResp.Status)
	assert.Equal(t, 1, cfgResp.MaxLimit)
	assert.Equal(t, 1, cfgResp.MinPrefix)
	assert.Equal(t, 60, cfgResp.MaxPrefix)

	// the new limit applies to later requests on the same stream
	var resp CompletionResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Len(t, resp.Candidates, 1)
}

func TestServerSetLimitsPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	limit := 16

	dec := runWithConfigPath(t, config.DefaultConfig(), path, nil,
		Request{ID: "r1", Op: "set_limits", MaxLimit: &limit})

	var cfgResp ConfigResponse
	require.NoError(t, dec.Decode(&cfgResp))
	require.Equal(t, "ok", cfgResp.Status)

	reloaded, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 16, reloaded.Server.MaxLimit)
}

func TestServerSetLimitsRejectsBadBounds(t *testing.T) {
	five, two := 5, 2
	cfg := config.DefaultConfig()

	dec := run(t, cfg, nil,
		Request{ID: "bounds", Op: "set_limits", MinPrefix: &five, MaxPrefix: &two},
		Request{ID: "empty", Op: "set_limits"})

	var bounds, empty Error
	require.NoError(t, dec.Decode(&bounds))
	require.NoError(t, dec.Decode(&empty))
	assert.Equal(t, "bounds", bounds.ID)
	assert.Equal(t, 400, bounds.Code)
	assert.Equal(t, "empty", empty.ID)
	assert.Equal(t, 400, empty.Code)
	// a rejected request must not touch the running config
	assert.Equal(t, 1, cfg.Server.MinPrefix)
	assert.Equal(t, 60, cfg.Server.MaxPrefix)
}

func TestServerUnknownOp(t *testing.T) {
	dec := run(t, config.DefaultConfig(), nil,
		Request{ID: "r1", Op: "frob"})

	var e Error
	require.NoError(t, dec.Decode(&e))
	assert.Equal(t, 400, e.Code)
}

func TestServerHealth(t *testing.T) {
	dec := run(t, config.DefaultConfig(), nil,
		Request{ID: "r1", Op: "health"})

	var status StatusResponse
	require.NoError(t, dec.Decode(&status))
	assert.Equal(t, "ok", status.Status)
}
