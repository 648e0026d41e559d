package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordtrie/internal/logger"
	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/bastiangx/wordtrie/pkg/config"
	"github.com/bastiangx/wordtrie/pkg/dictionary"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles msgpack IPC for one dictionary, one request at a time.
type Server struct {
	dict       *dictionary.Dictionary
	config     *config.Config
	configPath string
	decoder    *msgpack.Decoder
	encoder    *msgpack.Encoder
	logger     *log.Logger
}

// NewServer creates a server on stdin/stdout.
func NewServer(dict *dictionary.Dictionary, cfg *config.Config, configPath string) *Server {
	return NewServerWithIO(dict, cfg, configPath, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing responses to w.
func NewServerWithIO(dict *dictionary.Dictionary, cfg *config.Config, configPath string, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		dict:       dict,
		config:     cfg,
		configPath: configPath,
		decoder:    msgpack.NewDecoder(r),
		encoder:    msgpack.NewEncoder(w),
		logger:     logger.New("server"),
	}
}

// Start writes the ready message and serves requests until the input ends.
// A stream that cannot be decoded ends the loop with an error.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")
	if err := s.encoder.Encode(map[string]string{"status": StatusReady}); err != nil {
		return fmt.Errorf("failed to write ready message: %w", err)
	}

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Input closed, stopping server")
				return nil
			}
			s.logger.Errorf("Decoding request: %v", err)
			s.send(Response{Status: StatusError, Error: "invalid msgpack request", Code: CodeBadRequest})
			return err
		}
		s.send(s.handle(req))
	}
}

func (s *Server) send(resp Response) {
	if err := s.encoder.Encode(resp); err != nil {
		s.logger.Errorf("Encoding response %s: %v", resp.ID, err)
	}
}

// handle runs one request and times it.
func (s *Server) handle(req Request) Response {
	start := time.Now()
	resp, err := s.dispatch(req)
	resp.ID = req.ID
	resp.TimeTaken = time.Since(start).Microseconds()

	if err != nil {
		resp.Status = StatusError
		resp.Error = err.Error()
		resp.Code = errorCode(err)
		s.logger.Debug("Request failed", "id", req.ID, "action", req.Action, "err", err)
		return resp
	}
	resp.Status = StatusOK
	s.logger.Debug("Request done", "id", req.ID, "action", req.Action, "us", resp.TimeTaken)
	return resp
}

var errBadRequest = errors.New("bad request")

func (s *Server) dispatch(req Request) (Response, error) {
	var resp Response

	switch req.Action {
	case "complete":
		return s.handleComplete(req)

	case "add":
		return resp, s.dict.AddWord(req.Input)

	case "delete":
		return resp, s.dict.DeleteWord(req.Input)

	case "phonetic":
		group, ok := s.dict.PhoneticLookup(req.Input)
		resp.Words, resp.Found, resp.Count = group, ok, len(group)
		return resp, nil

	case "expand":
		resp.Text = s.dict.ExpandAbbreviations(req.Input)
		return resp, nil

	case "load":
		if req.Path == "" {
			return resp, fmt.Errorf("%w: missing 'path' parameter", errBadRequest)
		}
		stats, err := s.dict.LoadWordsFile(req.Path)
		resp.Count = stats.Added
		return resp, err

	case "list":
		resp.Words = s.dict.Words()
		resp.Count = len(resp.Words)
		return resp, nil

	case "stats":
		resp.Stats = s.dict.Stats()
		return resp, nil

	case "config":
		return resp, s.config.Update(s.configPath, req.MaxLimit, req.MaxPrefix)

	case "health":
		return resp, nil

	default:
		return resp, fmt.Errorf("%w: unknown action %q", errBadRequest, req.Action)
	}
}

// handleComplete bounds prefix length and limit by the server config.
func (s *Server) handleComplete(req Request) (Response, error) {
	var resp Response
	prefix := req.Input

	if maxPrefix := s.config.Server.MaxPrefix; len(prefix) > maxPrefix {
		return resp, fmt.Errorf("%w: prefix exceeds maximum length of %d characters", errBadRequest, maxPrefix)
	}

	limit := req.Limit
	if limit < 1 {
		limit = s.config.Dict.SuggestionLimit
	}
	limit = min(limit, s.config.Server.MaxLimit)

	suggestions, err := s.dict.AutocompleteN(prefix, limit)
	if err != nil {
		return resp, err
	}

	ranks := utils.CreateRankList(len(suggestions))
	resp.Suggestions = make([]Suggestion, len(suggestions))
	for i, sg := range suggestions {
		resp.Suggestions[i] = Suggestion{Word: sg.Word, Rank: ranks[i], Freq: sg.Frequency}
	}
	resp.Count = len(resp.Suggestions)
	return resp, nil
}

func errorCode(err error) int {
	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, dictionary.ErrInvalidWord):
		return CodeBadRequest
	case errors.Is(err, dictionary.ErrNotFound):
		return CodeNotFound
	case errors.Is(err, dictionary.ErrSourceUnavailable):
		return CodeSourceUnavailable
	default:
		return CodeInternal
	}
}
