// SPDX-License-Identifier: MIT

package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/bimatch/assignment"
	"github.com/katalvlaran/bimatch/bipartite"
	"github.com/katalvlaran/bimatch/internal/config"
)

type handler struct {
	logger *zap.Logger
	cfg    config.Config
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: code, Message: msg})
}

// classify maps pipeline errors onto an HTTP status and error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "timeout"
	case errors.Is(err, assignment.ErrCancelled),
		errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, "cancelled"
	case errors.Is(err, bipartite.ErrMalformedInput),
		errors.Is(err, bipartite.ErrUnknownFormat),
		errors.Is(err, assignment.ErrUnknownObjective):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, assignment.ErrDimensionMismatch):
		return http.StatusUnprocessableEntity, "dimension_mismatch"
	case errors.Is(err, assignment.ErrInvalidWeight):
		return http.StatusUnprocessableEntity, "invalid_weight"
	case errors.Is(err, bipartite.ErrNotBipartite):
		return http.StatusUnprocessableEntity, "not_bipartite"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("match failed",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.Error(err),
		)
	}
	writeError(w, status, code, err.Error())
}

func (h *handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// match handles POST /api/v1/match.
func (h *handler) match(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	objective := h.cfg.ObjectiveValue()
	if s := q.Get("objective"); s != "" {
		var err error
		if objective, err = assignment.ParseObjective(s); err != nil {
			h.fail(w, r, err)
			return
		}
	}

	outFmt, err := bipartite.ParseFormat(firstNonEmpty(q.Get("format"), h.cfg.Format))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	inName := q.Get("input")
	if inName == "" && strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		inName = string(bipartite.FormatYAML)
	}
	inFmt, err := bipartite.ParseFormat(firstNonEmpty(inName, h.cfg.InputFormat))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes))
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "too_large", err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	in, err := bipartite.Decode(bytes.NewReader(body), inFmt)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	ctx := r.Context()
	if h.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.cfg.Timeout)
		defer cancel()
	}
	rep, err := bipartite.Match(ctx, in, objective)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.logger.Debug("matched",
		zap.String("request_id", RequestIDFrom(r.Context())),
		zap.String("objective", objective.String()),
		zap.Int("pairs", len(rep.Assignment)),
		zap.Float64("weight", rep.Weight),
	)

	var buf bytes.Buffer
	if err = bipartite.Write(&buf, rep, outFmt); err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentType(outFmt))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func contentType(f bipartite.Format) string {
	switch f {
	case bipartite.FormatYAML:
		return "application/yaml; charset=utf-8"
	case bipartite.FormatText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json; charset=utf-8"
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}

	return ""
}
