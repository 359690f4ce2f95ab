// Package server exposes the generation pipeline, manifest store, and
// place utilities over HTTP.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/seatforge/seatforge/pkg/errors"
	"github.com/seatforge/seatforge/pkg/events"
	"github.com/seatforge/seatforge/pkg/pipeline"
	"github.com/seatforge/seatforge/pkg/store"
)

// Server wires the pipeline runner, manifest store, and event publisher
// behind the HTTP API.
type Server struct {
	runner    *pipeline.Runner
	store     store.Store
	publisher events.Publisher
	logger    *log.Logger
}

// New creates a server. The store may be nil (manifest persistence
// endpoints return 404s), the publisher may be nil (no events emitted).
func New(runner *pipeline.Runner, st store.Store, pub events.Publisher, logger *log.Logger) *Server {
	if pub == nil {
		pub = events.NopPublisher{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		runner:    runner,
		store:     st,
		publisher: pub,
		logger:    logger,
	}
}

// Routes builds the router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/manifests/generate", s.handleGenerate)
		r.Post("/manifests/diff", s.handleDiff)
		r.Get("/manifests", s.handleListManifests)
		r.Get("/manifests/{eventID}", s.handleGetManifest)
		r.Post("/places/parse", s.handleParsePlace)
		r.Post("/places/group", s.handleGroupPlaces)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes v as a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse is the error body shape.
type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

// writeError maps structured error codes onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidConfig,
		errors.ErrCodeInvalidPattern, errors.ErrCodeInvalidManifest,
		errors.ErrCodeInvalidLayout:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeManifestNotFound,
		errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeUnsupported:
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  errors.GetCode(err),
	})
}

// decodeJSON decodes a request body, rejecting unknown fields so typos in
// venue definitions fail loudly instead of generating the wrong layout.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decoding request body")
	}
	return nil
}
