/*
Package server implements msgpack IPC for the completion operations.

The server provides a minimal interface for prefix completion using
msgpack serialization over stdin/stdout.

Messages are processed synchronously with timing info included in
responses. Each request carries an id, an op and the fields the op
needs; the response echoes the id.

# IPC

Completion requests use this structure:

	{"id": "req_001", "op": "complete", "p": "che", "l": 24}

The server responds with the candidate set:

	{"id": "req_001", "s": ["cherry", "cherry-pick"], "c": 2, "t": 145}

Common-prefix requests return the longest prefix shared by every
candidate, which equals the query when nothing matches:

	{"id": "req_002", "op": "common_prefix", "p": "ch"}
	{"id": "req_002", "cp": "cherry", "t": 97}

Corpus growth happens through add requests, routed through the
completer's bulk path:

	{"id": "req_003", "op": "add", "ws": ["rebase", "reflog"]}
	{"id": "req_003", "status": "ok", "a": 2}

Clients can retune the server limits at runtime; the new values are
persisted to the active config file and echoed back:

	{"id": "req_004", "op": "set_limits", "max_limit": 16}
	{"id": "req_004", "status": "ok", "max_limit": 16, "min_prefix": 1, "max_prefix": 60}

Error responses carry the failing id, a message and a code:

	{"id": "req_005", "e": "unknown op: frob", "c": 400}

msgpack encoding has ~30 to 50% smaller message sizes compared to JSON,
and the binary framing lets requests stream back to back without
delimiters.
*/
package server

// Request is a single IPC request. Op selects the operation; unused
// fields stay empty.
type Request struct {
	ID     string   `msgpack:"id"`
	Op     string   `msgpack:"op"`
	Prefix string   `msgpack:"p,omitempty"`
	Words  []string `msgpack:"ws,omitempty"`
	Limit  int      `msgpack:"l,omitempty"`

	// "set_limits" fields; nil leaves the current value alone.
	MaxLimit  *int `msgpack:"max_limit,omitempty"`
	MinPrefix *int `msgpack:"min_prefix,omitempty"`
	MaxPrefix *int `msgpack:"max_prefix,omitempty"`
}

// CompletionResponse answers a "complete" request.
type CompletionResponse struct {
	ID         string   `msgpack:"id"`
	Candidates []string `msgpack:"s"`
	Count      int      `msgpack:"c"`
	TimeTaken  int64    `msgpack:"t"`
}

// PrefixResponse answers a "common_prefix" request.
type PrefixResponse struct {
	ID        string `msgpack:"id"`
	Prefix    string `msgpack:"cp"`
	TimeTaken int64  `msgpack:"t"`
}

// AddResponse answers an "add" request.
type AddResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Added  int    `msgpack:"a"`
}

// ConfigResponse answers a "set_limits" request with the limits now
// in effect.
type ConfigResponse struct {
	ID        string `msgpack:"id"`
	Status    string `msgpack:"status"`
	MaxLimit  int    `msgpack:"max_limit"`
	MinPrefix int    `msgpack:"min_prefix"`
	MaxPrefix int    `msgpack:"max_prefix"`
}

// StatusResponse reports server state ("ready", "ok").
type StatusResponse struct {
	Status string `msgpack:"status"`
}

// Error holds basic error information for failed requests.
type Error struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
