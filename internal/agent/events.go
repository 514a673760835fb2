package agent

import "context"

type EventType string

const (
	EventToken      EventType = "token"
	EventToolCall   EventType = "tool_call"
	EventToolResult EventType = "tool_result"
	EventDone       EventType = "done"
	EventError      EventType = "error"
)

type Event struct {
	Type EventType `json:"type"`
	Data any       `json:"data"`
}

// Runner drives one conversation turn. The emit callback receives the
// incremental event stream; final-text callers can use RunText instead.
type Runner interface {
	Run(ctx context.Context, sessionID string, message string, emit func(Event)) error
}

// RunText runs a turn and collects the final assistant text, discarding
// the incremental stream.
func RunText(ctx context.Context, r Runner, sessionID, message string) (string, error) {
	var final string
	err := r.Run(ctx, sessionID, message, func(ev Event) {
		if ev.Type == EventDone {
			if s, ok := ev.Data.(string); ok {
				final = s
			}
		}
	})
	if err != nil {
		return "", err
	}
	return final, nil
}
