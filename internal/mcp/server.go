package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Protocol method names
const (
	methodCreateThread = "mcp_create_thread"
	methodRunAgent     = "mcp_run_agent"
)

// invalidThreadMsg is returned verbatim for unknown thread ids
const invalidThreadMsg = "Invalid thread ID. Please create a thread first."

// noCompanyMsg guides the user when no company name could be extracted
const noCompanyMsg = "I couldn't identify a company name in your request. " +
	"Please specify a company name for analysis, for example: " +
	"'Analyze Tesla' or 'Tell me about Microsoft'."

// maxLineBytes bounds a single request line
const maxLineBytes = 1 << 20

// request is one line of the protocol
type request struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

// runAgentParams are the parameters of an mcp_run_agent request
type runAgentParams struct {
	ThreadID  string `json:"thread_id"`
	UserInput string `json:"user_input"`
}

// response is one line of protocol output. Exactly one field is set.
type response struct {
	ThreadID string `json:"thread_id,omitempty"`
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Server processes line-delimited protocol requests against a session store
type Server struct {
	store  *SessionStore
	logger *zap.Logger
}

// NewServer creates a Server backed by the given session store
func NewServer(store *SessionStore, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		store:  store,
		logger: logger.Named("mcp"),
	}
}

// Serve reads one JSON request per line from r and writes one JSON response
// per line to w. Requests are processed fully, one at a time, in arrival
// order. A malformed or oversized line produces an {error} payload without
// terminating the loop; only EOF, a read error, or context cancellation
// ends it.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	reader := bufio.NewReaderSize(r, 64*1024)
	encoder := json.NewEncoder(w)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := readLine(reader)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if errors.Is(err, errLineTooLong) {
				s.logger.Warn("request line exceeds size limit")
				if encErr := encoder.Encode(response{Error: "request line too long"}); encErr != nil {
					return fmt.Errorf("failed to write response: %w", encErr)
				}
				continue
			}
			return err
		}

		resp := s.handleLine(ctx, line)
		if err := encoder.Encode(resp); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
	}
}

// errLineTooLong marks an input line above maxLineBytes. The offending line
// is consumed in full so the loop resumes at the next one.
var errLineTooLong = errors.New("request line exceeds size limit")

// readLine reads one newline-terminated line of any length up to
// maxLineBytes. An unterminated final line before EOF is still returned;
// only a read with no data at all yields io.EOF.
func readLine(r *bufio.Reader) ([]byte, error) {
	var line []byte
	for {
		chunk, err := r.ReadSlice('\n')
		line = append(line, chunk...)

		if err == nil {
			return bytes.TrimSuffix(line, []byte("\n")), nil
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			if len(line) > maxLineBytes {
				if derr := discardLine(r); derr != nil && !errors.Is(derr, io.EOF) {
					return nil, derr
				}
				return nil, errLineTooLong
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			if len(line) > 0 {
				return line, nil
			}
			return nil, io.EOF
		}
		return nil, err
	}
}

// discardLine consumes input through the next newline
func discardLine(r *bufio.Reader) error {
	for {
		_, err := r.ReadSlice('\n')
		if err == nil {
			return nil
		}
		if !errors.Is(err, bufio.ErrBufferFull) {
			return err
		}
	}
}

func (s *Server) handleLine(ctx context.Context, line []byte) response {
	var req request
	if err := json.Unmarshal(line, &req); err != nil {
		s.logger.Warn("malformed request line", zap.Error(err))
		return response{Error: fmt.Sprintf("malformed request: %v", err)}
	}

	switch req.Method {
	case methodCreateThread:
		return s.handleCreateThread()
	case methodRunAgent:
		var params runAgentParams
		if len(req.Params) > 0 {
			if err := json.Unmarshal(req.Params, &params); err != nil {
				return response{Error: fmt.Sprintf("malformed params: %v", err)}
			}
		}
		return s.handleRunAgent(ctx, params)
	default:
		return response{Error: fmt.Sprintf("Unknown method: %s", req.Method)}
	}
}

func (s *Server) handleCreateThread() response {
	session, err := s.store.Create()
	if err != nil {
		s.logger.Error("failed to create session", zap.Error(err))
		return response{Error: fmt.Sprintf("failed to create thread: %v", err)}
	}
	s.logger.Info("thread created", zap.String("thread_id", session.ID))
	return response{ThreadID: session.ID}
}

func (s *Server) handleRunAgent(ctx context.Context, params runAgentParams) response {
	session, ok := s.store.Get(params.ThreadID)
	if !ok {
		return response{Error: invalidThreadMsg}
	}

	session.Append("user", params.UserInput)
	reply := s.respond(ctx, session, params.UserInput)
	session.Append("assistant", reply)

	return response{Response: reply}
}

// respond routes one user turn: guidance when no subject is found, otherwise
// a full pipeline run. This is the one boundary where pipeline errors become
// user-visible text instead of propagating.
func (s *Server) respond(ctx context.Context, session *Session, userInput string) string {
	company, ok := ExtractCompanyName(userInput)
	if !ok {
		return noCompanyMsg
	}

	analysis, err := session.Analyzer.Analyze(ctx, company)
	if err != nil {
		s.logger.Warn("analysis failed",
			zap.String("thread_id", session.ID),
			zap.String("company", company),
			zap.Error(err))
		return fmt.Sprintf("I encountered an error while analyzing %s: %v", company, err)
	}

	return FormatAnalysis(analysis)
}
