// Package server exposes the explorer as a read-only HTTP dashboard. Every
// request reloads the selected dataset from disk; nothing is cached or
// shared between requests, so concurrent sessions cannot observe each
// other's state.
package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/crimescope/crimescope/internal/config"
)

// Server routes dashboard requests over a fixed data directory.
type Server struct {
	cfg *config.Global
}

// New builds a Server for the given configuration.
func New(cfg *config.Global) *Server {
	return &Server{cfg: cfg}
}

// Handler assembles the router with logging, recovery and CORS applied.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/datasets", s.handleDatasets).Methods(http.MethodGet)
	r.HandleFunc("/api/options", s.handleOptions).Methods(http.MethodGet)
	r.HandleFunc("/api/report", s.handleReport).Methods(http.MethodGet)
	r.HandleFunc("/charts/{kind}.png", s.handleChart).Methods(http.MethodGet)

	var h http.Handler = r
	h = RecoveryMiddleware(h)
	h = LoggingMiddleware(h)
	h = cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(h)
	return h
}
