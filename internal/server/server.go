// Package server provides the HTTP API for scanning recognized text
// and validating identifiers.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/platinummonkey/docuscan/internal/logger"
	"github.com/platinummonkey/docuscan/internal/pipeline"
)

// Server wires the scan pipeline behind an HTTP listener.
type Server struct {
	scanner *pipeline.Scanner
	logger  *logger.Logger
	http    *http.Server
}

// New creates a Server bound to addr.
func New(addr string, scanner *pipeline.Scanner, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Get()
	}
	s := &Server{scanner: scanner, logger: log}
	s.http = &http.Server{
		Addr:         addr,
		Handler:      s.router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// router configures all routes with CORS and request logging.
func (s *Server) router() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/health", s.handleHealth).Methods("GET")

	api := router.PathPrefix("/v1").Subrouter()
	api.Use(s.requestLogger)
	api.HandleFunc("/scan", s.handleScan).Methods("POST")
	api.HandleFunc("/validate", s.handleValidate).Methods("POST")
	api.HandleFunc("/types", s.handleTypes).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300,
	})

	return c.Handler(router)
}

// Handler exposes the configured root handler for embedding in tests
// or other listeners.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe blocks until the listener fails or Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.logger.WithFields("addr", s.http.Addr).Info("http server listening")
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
