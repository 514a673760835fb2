package gateway

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"mashcook/internal/agent"
)

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON body"}`, http.StatusBadRequest)
		return
	}
	if req.SessionID == "" || req.Message == "" {
		http.Error(w, `{"error":"session_id and message are required"}`, http.StatusBadRequest)
		return
	}

	ctx, done := s.runs.track(r.Context(), req.SessionID)
	defer done()

	stream := newEventStream(w)
	send := func(ev agent.Event) {
		if err := stream.emit(ev); err != nil {
			slog.Debug("dropping event, client write failed", "type", ev.Type, "error", err)
		}
	}

	err := s.runner.Run(ctx, req.SessionID, req.Message, send)
	if err != nil && !stream.sentError {
		send(agent.Event{Type: agent.EventError, Data: err.Error()})
	}
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"sessions": s.store.Sessions()})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	items, ok := s.store.Items(id)
	if !ok {
		http.Error(w, `{"error":"unknown session"}`, http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]any{"id": id, "items": items})
}

func (s *Server) handleCancelRun(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !s.runs.abort(id) {
		http.Error(w, `{"error":"no run in flight"}`, http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
