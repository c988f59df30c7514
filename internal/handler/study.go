// Package handler — study.go implements the vocabulary-study JSON API.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pkordes/travelops/backend/internal/domain"
)

// Words handles GET /api/words: the full vocabulary list.
func (s *Server) Words(w http.ResponseWriter, r *http.Request) {
	words, err := s.study.Words(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}
	if words == nil {
		// Keep the body a JSON array, never null, for the front-end.
		words = []domain.Word{}
	}
	writeJSON(w, http.StatusOK, words)
}

// CurrentWord handles GET /api/word: the word at the current progress index.
// Past the end of the list the body is {"error":"Finished"}, which the study
// page uses to show its completion screen.
func (s *Server) CurrentWord(w http.ResponseWriter, r *http.Request) {
	card, err := s.study.CurrentWord(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusOK, map[string]string{"error": "Finished"})
			return
		}
		serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

// Submit handles POST /api/submit: record an answer and advance progress.
func (s *Server) Submit(w http.ResponseWriter, r *http.Request) {
	var sub domain.WordSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed JSON body"})
		return
	}

	if err := s.study.Submit(r.Context(), sub); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}
		serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetProgress handles GET /api/progress.
func (s *Server) GetProgress(w http.ResponseWriter, r *http.Request) {
	index, err := s.study.Progress(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"index": index})
}

// SetProgress handles POST /api/progress: overwrite the progress counter.
func (s *Server) SetProgress(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Index int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed JSON body"})
		return
	}

	if err := s.study.SetProgress(r.Context(), body.Index); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}
		serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck — encoding to a ResponseWriter; nothing to recover
	json.NewEncoder(w).Encode(v)
}

// serverError logs err and answers with a generic 500 body. Internal error
// text never reaches the client.
func serverError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "handler error", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
