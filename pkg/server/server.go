package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/elbeno/autocomplete/pkg/config"
	"github.com/elbeno/autocomplete/pkg/suggest"
)

// Server handles the IPC for prefix completions.
type Server struct {
	completer  *suggest.Completer
	cfg        *config.Config
	configPath string
	decoder    *msgpack.Decoder
	encoder    *msgpack.Encoder
}

// NewServer creates a completion server using stdin/stdout for IPC.
// configPath is where "set_limits" changes persist; empty means the
// server runs on builtin defaults and changes stay in memory.
func NewServer(completer *suggest.Completer, cfg *config.Config, configPath string) *Server {
	return NewServerWithIO(completer, cfg, configPath, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a completion server over the given streams.
func NewServerWithIO(completer *suggest.Completer, cfg *config.Config, configPath string, r io.Reader, w io.Writer) *Server {
	return &Server{
		completer:  completer,
		cfg:        cfg,
		configPath: configPath,
		decoder:    msgpack.NewDecoder(r),
		encoder:    msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. It returns nil when the
// input stream closes.
func (s *Server) Start() error {
	log.Debug("Starting server.")

	s.send(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest routes a decoded request by op.
func (s *Server) handleRequest(request Request) {
	switch request.Op {
	case "complete":
		s.handleComplete(request)
	case "common_prefix":
		s.handleCommonPrefix(request)
	case "add":
		s.handleAdd(request)
	case "set_limits":
		s.handleSetLimits(request)
	case "health":
		s.send(StatusResponse{Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("unknown op: %s", request.Op), 400)
	}
}

// handleComplete validates the prefix, asks the completer for
// candidates and truncates to the effective limit.
func (s *Server) handleComplete(request Request) {
	if !s.validPrefix(request) {
		return
	}

	limit := request.Limit
	if limit < 1 || limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	candidates := s.completer.Candidates(request.Prefix)
	elapsed := time.Since(start)

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	s.send(CompletionResponse{
		ID:         request.ID,
		Candidates: candidates,
		Count:      len(candidates),
		TimeTaken:  elapsed.Microseconds(),
	})
}

func (s *Server) handleCommonPrefix(request Request) {
	if !s.validPrefix(request) {
		return
	}

	start := time.Now()
	common := s.completer.CommonPrefix(request.Prefix)
	elapsed := time.Since(start)

	s.send(PrefixResponse{
		ID:        request.ID,
		Prefix:    common,
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleAdd(request Request) {
	if len(request.Words) == 0 {
		s.sendError(request.ID, "missing 'ws' words parameter", 400)
		return
	}
	s.completer.AddWords(request.Words...)
	s.send(AddResponse{
		ID:     request.ID,
		Status: "ok",
		Added:  len(request.Words),
	})
}

// handleSetLimits applies a runtime change to the server limits and
// persists it to the active config file. The candidate values are
// checked before anything mutates so a bad request leaves the running
// config untouched.
func (s *Server) handleSetLimits(request Request) {
	if request.MaxLimit == nil && request.MinPrefix == nil && request.MaxPrefix == nil {
		s.sendError(request.ID, "no limits given", 400)
		return
	}

	maxLimit := s.cfg.Server.MaxLimit
	minPrefix := s.cfg.Server.MinPrefix
	maxPrefix := s.cfg.Server.MaxPrefix
	if request.MaxLimit != nil {
		maxLimit = *request.MaxLimit
	}
	if request.MinPrefix != nil {
		minPrefix = *request.MinPrefix
	}
	if request.MaxPrefix != nil {
		maxPrefix = *request.MaxPrefix
	}
	if maxLimit < 1 {
		s.sendError(request.ID, fmt.Sprintf("max_limit must be positive, got %d", maxLimit), 400)
		return
	}
	if minPrefix < 0 || maxPrefix < minPrefix {
		s.sendError(request.ID, fmt.Sprintf("invalid prefix bounds: min=%d max=%d", minPrefix, maxPrefix), 400)
		return
	}

	if err := s.cfg.Update(s.configPath, request.MaxLimit, request.MinPrefix, request.MaxPrefix); err != nil {
		s.sendError(request.ID, fmt.Sprintf("persisting config: %v", err), 500)
		return
	}
	log.Debugf("Server limits now max_limit=%d min_prefix=%d max_prefix=%d", maxLimit, minPrefix, maxPrefix)

	s.send(ConfigResponse{
		ID:        request.ID,
		Status:    "ok",
		MaxLimit:  s.cfg.Server.MaxLimit,
		MinPrefix: s.cfg.Server.MinPrefix,
		MaxPrefix: s.cfg.Server.MaxPrefix,
	})
}

// validPrefix enforces the configured prefix length bounds, sending the
// error response itself when they fail.
func (s *Server) validPrefix(request Request) bool {
	if len(request.Prefix) < s.cfg.Server.MinPrefix {
		s.sendError(request.ID, fmt.Sprintf("prefix must be at least %d characters", s.cfg.Server.MinPrefix), 400)
		log.Debug("Prefix too short in request")
		return false
	}
	if len(request.Prefix) > s.cfg.Server.MaxPrefix {
		s.sendError(request.ID, fmt.Sprintf("prefix exceeds maximum length of %d characters", s.cfg.Server.MaxPrefix), 400)
		log.Debug("Prefix too long in request")
		return false
	}
	return true
}

// send encodes a response onto the output stream.
func (s *Server) send(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(Error{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
