package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"

	"mashcook/internal/agent"
)

// eventStream writes agent events to a text/event-stream response. It
// remembers whether an error frame already went out so a handler does
// not report the same failure twice.
type eventStream struct {
	w         http.ResponseWriter
	rc        *http.ResponseController
	sentError bool
}

func newEventStream(w http.ResponseWriter) *eventStream {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	return &eventStream{w: w, rc: http.NewResponseController(w)}
}

// emit translates one agent event into its wire frame.
func (s *eventStream) emit(ev agent.Event) error {
	switch ev.Type {
	case agent.EventToken:
		return s.frame("token", map[string]any{"content": ev.Data})
	case agent.EventToolCall, agent.EventToolResult:
		return s.frame(string(ev.Type), ev.Data)
	case agent.EventError:
		s.sentError = true
		return s.frame("error", map[string]any{"error": ev.Data})
	case agent.EventDone:
		return s.frame("done", map[string]any{"content": ev.Data})
	}
	return nil
}

// frame writes one SSE frame and flushes it to the client.
func (s *eventStream) frame(name string, data any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", name, b); err != nil {
		return err
	}
	return s.rc.Flush()
}
