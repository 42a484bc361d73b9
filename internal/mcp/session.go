// Package mcp exposes the analysis pipeline over a line-oriented JSON
// request/response protocol with per-thread conversation state.
package mcp

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/company-analyst/internal/types"
)

// Analyzer is the pipeline a session owns. Implemented by analyzer.Analyzer;
// stubbed in tests.
type Analyzer interface {
	Analyze(ctx context.Context, company string) (*types.CompanyAnalysis, error)
}

// AnalyzerFactory builds a fresh pipeline instance for each new session, so
// no two sessions ever share pipeline state.
type AnalyzerFactory func() (Analyzer, error)

// Turn is one conversation entry
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session holds one thread's pipeline instance and conversation history.
// History is append-only and lives only for the process lifetime.
type Session struct {
	ID       string
	Analyzer Analyzer

	mu      sync.Mutex
	history []Turn
}

// Append records a conversation turn
func (s *Session) Append(role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, Turn{Role: role, Content: content})
}

// History returns a copy of the conversation so far
func (s *Session) History() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.history))
	copy(out, s.history)
	return out
}

// SessionStore owns every live session. It is constructed at server start and
// passed by handle to the request loop; nothing here is package-global state.
type SessionStore struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	newAnalyzer AnalyzerFactory
}

// NewSessionStore creates an empty store that builds pipelines with factory
func NewSessionStore(factory AnalyzerFactory) *SessionStore {
	return &SessionStore{
		sessions:    make(map[string]*Session),
		newAnalyzer: factory,
	}
}

// Create allocates a session with a unique thread id and a fresh pipeline
func (st *SessionStore) Create() (*Session, error) {
	pipeline, err := st.newAnalyzer()
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:       uuid.NewString(),
		Analyzer: pipeline,
	}

	st.mu.Lock()
	st.sessions[session.ID] = session
	st.mu.Unlock()
	return session, nil
}

// Get looks up a session by thread id
func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	session, ok := st.sessions[id]
	return session, ok
}

// Clear drops every session. Called at server shutdown.
func (st *SessionStore) Clear() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions = make(map[string]*Session)
}
