package gateway

import (
	"context"
	"sync"
)

// runRegistry tracks each session's in-flight run so it can be aborted
// from another request. Entries are keyed by session but identified by
// run handle: a finished run only removes its own registration, never a
// newer run that replaced it on the same session.
type runRegistry struct {
	mu   sync.Mutex
	runs map[string]*runHandle
}

type runHandle struct {
	cancel context.CancelFunc
}

func newRunRegistry() *runRegistry {
	return &runRegistry{runs: make(map[string]*runHandle)}
}

// track registers a cancelable child context for the session. The
// returned done func must be called when the run finishes.
func (r *runRegistry) track(ctx context.Context, sessionID string) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)
	h := &runHandle{cancel: cancel}
	r.mu.Lock()
	r.runs[sessionID] = h
	r.mu.Unlock()

	return ctx, func() {
		r.mu.Lock()
		if r.runs[sessionID] == h {
			delete(r.runs, sessionID)
		}
		r.mu.Unlock()
		cancel()
	}
}

// abort cancels the session's in-flight run, reporting whether one was
// found.
func (r *runRegistry) abort(sessionID string) bool {
	r.mu.Lock()
	h, ok := r.runs[sessionID]
	if ok {
		delete(r.runs, sessionID)
	}
	r.mu.Unlock()
	if ok {
		h.cancel()
	}
	return ok
}
