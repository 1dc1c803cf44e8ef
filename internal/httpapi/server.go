// SPDX-License-Identifier: MIT

// Package httpapi exposes the matcher over HTTP.
//
//	POST /api/v1/match?objective=max&format=json   body: adjacency document
//	GET  /healthz
//
// The body is JSON unless Content-Type names YAML or ?input=yaml is given.
// cfg.Timeout bounds each match; an expired solve answers 503 "timeout".
// Errors are JSON objects {"error": code, "message": text}.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/katalvlaran/bimatch/internal/config"
)

// NewServer builds the root router and mounts the v1 API under /api/v1.
func NewServer(logger *zap.Logger, cfg config.Config) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &handler{logger: logger, cfg: cfg}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(AccessLog(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.healthz)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "use POST /api/v1/match")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", r.Method+" is not allowed on "+r.URL.Path)
	})

	r.Route("/api", func(api chi.Router) {
		api.Mount("/v1", h.v1())
	})

	return r
}

func (h *handler) v1() chi.Router {
	r := chi.NewRouter()
	r.Post("/match", h.match)

	return r
}
