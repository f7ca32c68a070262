package server

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/anaserve/anaserve/internal/logger"
	"github.com/anaserve/anaserve/pkg/anagram"
	"github.com/anaserve/anaserve/pkg/config"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// request is the union of every incoming message shape; dispatch looks at
// Action first and treats everything else as an anagram query.
type request struct {
	ID      string `msgpack:"id"`
	Query   string `msgpack:"q"`
	Limit   int    `msgpack:"l"`
	Action  string `msgpack:"action"`
	MinSize *int   `msgpack:"min_size"`
}

// Server handles the IPC for anagram queries.
type Server struct {
	index *anagram.Index
	cfg   *config.Config
	dec   *msgpack.Decoder
	enc   *msgpack.Encoder
	log   *log.Logger
}

// NewServer creates a new anagram server using stdin/stdout for IPC
func NewServer(index *anagram.Index, cfg *config.Config) *Server {
	return newServer(index, cfg, os.Stdin, os.Stdout)
}

func newServer(index *anagram.Index, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		index: index,
		cfg:   cfg,
		dec:   msgpack.NewDecoder(r),
		enc:   msgpack.NewEncoder(w),
		log:   logger.New("ipc"),
	}
}

// Start begins listening for IPC requests. It returns nil on EOF, when the
// client has closed our stdin.
func (s *Server) Start() error {
	s.log.Debugf("starting msgpack loop over %d indexed words", s.index.Len())

	// Signal that the server is ready
	s.send(map[string]string{"status": "ready"})

	for {
		var req request
		if err := s.dec.Decode(&req); err != nil {
			if err == io.EOF {
				s.log.Debug("stdin closed, shutting down")
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(req)
	}
}

// handleRequest dispatches one decoded request
func (s *Server) handleRequest(req request) {
	if req.Action != "" {
		s.handleIndexOp(req)
		return
	}
	s.handleQuery(req)
}

// handleQuery processes an anagram query. It validates the query word,
// resolves the result limit against the config bounds, asks the index for
// anagrams, and sends the response with timing information.
func (s *Server) handleQuery(req request) {
	if req.Query == "" {
		s.sendError(req.ID, "Missing 'q' parameter", 400)
		return
	}
	if len(req.Query) > s.cfg.Server.MaxQueryLen {
		s.sendError(req.ID, fmt.Sprintf("Query exceeds maximum length of %d characters", s.cfg.Server.MaxQueryLen), 400)
		return
	}

	limit := req.Limit
	if limit < 1 {
		limit = s.cfg.Find.DefaultLimit
	}
	if limit < 1 || limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	matches, err := s.index.Find(req.Query)
	elapsed := time.Since(start)
	if err != nil {
		s.sendError(req.ID, err.Error(), 400)
		return
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}

	s.send(QueryResponse{
		ID:        req.ID,
		Anagrams:  matches,
		Count:     len(matches),
		TimeTaken: elapsed.Microseconds(),
	})
}

// handleIndexOp processes index inspection actions
func (s *Server) handleIndexOp(req request) {
	switch req.Action {
	case "info":
		stats := s.index.Stats()
		s.send(IndexResponse{
			ID:          req.ID,
			Status:      "success",
			Words:       stats["totalWords"],
			Buckets:     stats["buckets"],
			MaxBucket:   stats["maxBucket"],
			AnagramSets: stats["anagramSets"],
		})
	case "groups":
		minSize := s.cfg.Find.MinGroupSize
		if req.MinSize != nil {
			minSize = *req.MinSize
		}
		groups := s.index.Groups(minSize)
		entries := make([]GroupEntry, len(groups))
		for i, g := range groups {
			entries[i] = GroupEntry{Signature: g.Signature, Words: g.Words}
		}
		s.send(IndexResponse{
			ID:     req.ID,
			Status: "success",
			Groups: entries,
			Count:  len(entries),
		})
	default:
		s.send(IndexResponse{
			ID:     req.ID,
			Status: "error",
			Error:  fmt.Sprintf("Unknown action: %s", req.Action),
		})
	}
}

// send encodes one response onto the stream
func (s *Server) send(response any) {
	if err := s.enc.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.log.Debugf("request %q rejected: %s", id, message)
	s.send(QueryError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
