package gateway

import (
	"net/http"

	"mashcook/internal/agent"
	"mashcook/internal/history"
)

type Server struct {
	runner agent.Runner
	store  *history.Store
	runs   *runRegistry
	mux    *http.ServeMux
}

func NewServer(runner agent.Runner, store *history.Store) *Server {
	s := &Server{
		runner: runner,
		store:  store,
		runs:   newRunRegistry(),
		mux:    http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /v1/chat", s.handleChat)
	s.mux.HandleFunc("GET /v1/sessions", s.handleListSessions)
	s.mux.HandleFunc("GET /v1/sessions/{id}", s.handleGetSession)
	s.mux.HandleFunc("DELETE /v1/sessions/{id}/run", s.handleCancelRun)
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}
