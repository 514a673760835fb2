// Package history keeps per-session conversation turns in memory.
// Turns are append-only for the life of the process and discarded on
// exit; there is deliberately no persistence behind this store.
package history

import (
	"log/slog"
	"sync"
	"time"

	"github.com/openai/openai-go/v3/responses"
)

type Store struct {
	mu       sync.Mutex
	sessions map[string]*session
}

// session carries two locks: runMu serializes whole runs on the session
// (held via Acquire for the duration of a run), while mu guards the
// items slice so read endpoints can observe a session concurrently with
// an in-flight run's commit.
type session struct {
	runMu     sync.Mutex
	mu        sync.Mutex
	createdAt time.Time
	items     []responses.ResponseInputItemUnionParam
}

// SessionInfo is a read-only summary of one session.
type SessionInfo struct {
	ID        string    `json:"id"`
	Items     int       `json:"items"`
	CreatedAt time.Time `json:"created_at"`
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*session)}
}

func (s *Store) get(sessionID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{createdAt: time.Now()}
		s.sessions[sessionID] = sess
	}
	return sess
}

// Acquire takes the session's exclusive run lock, creating the session
// if needed, and returns the release func. A runner holds the lock for
// the whole run so concurrent runs on one session serialize.
func (s *Store) Acquire(sessionID string) (release func()) {
	sess := s.get(sessionID)
	sess.runMu.Lock()
	return sess.runMu.Unlock
}

// Snapshot returns a copy of the session's items. A run that needs the
// snapshot to stay consistent with its later Commit must hold the run
// lock via Acquire.
func (s *Store) Snapshot(sessionID string) []responses.ResponseInputItemUnionParam {
	sess := s.get(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	out := make([]responses.ResponseInputItemUnionParam, len(sess.items))
	copy(out, sess.items)
	return out
}

// Commit appends a completed run's items to the session.
func (s *Store) Commit(sessionID string, items []responses.ResponseInputItemUnionParam) {
	sess := s.get(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.items = append(sess.items, items...)
}

// Len reports how many items a session holds.
func (s *Store) Len(sessionID string) int {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok {
		return 0
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return len(sess.items)
}

// Sessions lists summaries of all known sessions.
func (s *Store) Sessions() []SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SessionInfo, 0, len(s.sessions))
	for id, sess := range s.sessions {
		sess.mu.Lock()
		out = append(out, SessionInfo{
			ID:        id,
			Items:     len(sess.items),
			CreatedAt: sess.createdAt,
		})
		sess.mu.Unlock()
	}
	return out
}

// Items returns the session's turn items, or false if the session is
// unknown.
func (s *Store) Items(sessionID string) ([]responses.ResponseInputItemUnionParam, bool) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok {
		return nil, false
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	out := make([]responses.ResponseInputItemUnionParam, len(sess.items))
	copy(out, sess.items)
	return out, true
}

// OutputToInput converts response output items into input item params
// for the next API call. Each output type's ToParam() does a lossless
// round-trip via RawJSON.
func OutputToInput(output []responses.ResponseOutputItemUnion) []responses.ResponseInputItemUnionParam {
	var items []responses.ResponseInputItemUnionParam
	for _, item := range output {
		switch item.Type {
		case "message":
			v := item.AsMessage().ToParam()
			items = append(items, responses.ResponseInputItemUnionParam{OfOutputMessage: &v})
		case "function_call":
			v := item.AsFunctionCall().ToParam()
			items = append(items, responses.ResponseInputItemUnionParam{OfFunctionCall: &v})
		case "reasoning":
			v := item.AsReasoning().ToParam()
			items = append(items, responses.ResponseInputItemUnionParam{OfReasoning: &v})
		default:
			slog.Debug("skipping unknown output item type", "type", item.Type)
		}
	}
	return items
}
