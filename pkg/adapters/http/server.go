// Package http serves a local stand-in for the remote content store.
// Requests are validated against the embedded OpenAPI document and then
// applied to a ports.ContentStore, usually the in-memory one.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/contentpub/internal/logging"
	"github.com/aretw0/contentpub/pkg/adapters/memory"
	"github.com/aretw0/contentpub/pkg/domain"
	"github.com/aretw0/contentpub/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Inspector exposes stored state. The memory store implements it.
type Inspector interface {
	Draft(id string) (domain.Payload, bool)
	IsLive(id string) bool
}

// Server handles the content store endpoints.
type Server struct {
	Store     ports.ContentStore
	validator *bodyValidator
	logger    *slog.Logger
	metrics   http.Handler
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetricsHandler mounts h at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewHandler creates the HTTP handler for store.
func NewHandler(store ports.ContentStore, opts ...Option) (http.Handler, error) {
	doc, err := GetSpec()
	if err != nil {
		return nil, err
	}
	s := &Server{
		Store:     store,
		validator: &bodyValidator{doc: doc},
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		_, _ = w.Write(RawSpec())
	})
	r.Get("/health", s.GetHealth)
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}

	r.Put("/v2/content/{id}", s.PutContent)
	r.Get("/v2/content/{id}", s.GetContent)
	r.Post("/v2/content/{id}/publish", s.Publish)
	r.Post("/v2/content/{id}/unpublish", s.Unpublish)
	r.Put("/paths/*", s.ReservePath)

	return enableCORS(r), nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// readValid reads the body and validates it against schema, answering 422 on failure.
func (s *Server) readValid(w http.ResponseWriter, r *http.Request, schema string) ([]byte, bool) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return nil, false
	}
	if err := s.validator.validate(schema, raw); err != nil {
		s.logger.Warn("request rejected", "path", r.URL.Path, "schema", schema, "error", err)
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return nil, false
	}
	return raw, true
}

// PutContent handles PUT /v2/content/{id}.
func (s *Server) PutContent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	raw, ok := s.readValid(w, r, SchemaContentPayload)
	if !ok {
		return
	}

	var payload domain.Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if payload.ContentID != "" && payload.ContentID != id {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": fmt.Sprintf("content_id %s does not match path %s", payload.ContentID, id),
		})
		return
	}

	resp, err := s.Store.PutContent(r.Context(), id, payload)
	if err != nil {
		s.fail(w, "PutContent", err)
		return
	}
	s.logger.Info("draft stored", "content_id", id, "base_path", payload.BasePath, "status", resp.StatusCode)
	writeJSON(w, resp.StatusCode, map[string]string{"content_id": id})
}

// GetContent handles GET /v2/content/{id}.
func (s *Server) GetContent(w http.ResponseWriter, r *http.Request) {
	inspector, ok := s.Store.(Inspector)
	if !ok {
		http.Error(w, "Inspection not supported", http.StatusNotImplemented)
		return
	}
	id := chi.URLParam(r, "id")
	draft, found := inspector.Draft(id)
	if !found {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		domain.Payload
		Live bool `json:"live"`
	}{draft, inspector.IsLive(id)})
}

// Publish handles POST /v2/content/{id}/publish.
func (s *Server) Publish(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := s.readValid(w, r, SchemaPublishRequest); !ok {
		return
	}
	if err := s.Store.Publish(r.Context(), id); err != nil {
		s.fail(w, "Publish", err)
		return
	}
	s.logger.Info("content published", "content_id", id)
	writeJSON(w, http.StatusOK, map[string]string{"content_id": id})
}

// Unpublish handles POST /v2/content/{id}/unpublish.
func (s *Server) Unpublish(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := s.readValid(w, r, SchemaUnpublishRequest); !ok {
		return
	}
	if err := s.Store.Unpublish(r.Context(), id); err != nil {
		s.fail(w, "Unpublish", err)
		return
	}
	s.logger.Info("content unpublished", "content_id", id)
	writeJSON(w, http.StatusOK, map[string]string{"content_id": id})
}

// ReservePath handles PUT /paths/{base_path}. The wildcard keeps the base
// path verbatim, leading slash included.
func (s *Server) ReservePath(w http.ResponseWriter, r *http.Request) {
	basePath := chi.URLParam(r, "*")
	raw, ok := s.readValid(w, r, SchemaPathReservation)
	if !ok {
		return
	}
	var body struct {
		PublishingApp string `json:"publishing_app"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.Store.ReservePath(r.Context(), basePath, body.PublishingApp); err != nil {
		s.fail(w, "ReservePath", err)
		return
	}
	s.logger.Info("path reserved", "base_path", basePath, "publishing_app", body.PublishingApp)
	writeJSON(w, http.StatusOK, map[string]string{"base_path": basePath, "publishing_app": body.PublishingApp})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, memory.ErrDraftNotFound) {
		status = http.StatusNotFound
	}
	s.logger.Error(op+" failed", "error", err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
