package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/launchpath/canvas/internal/models"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleProcessData(w http.ResponseWriter, r *http.Request) {
	var req models.CanvasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	lang, _ := models.ParseLanguage(req.Language)

	sections, err := s.runner.Run(r.Context(), req.UserInput, lang)
	if err != nil {
		s.logger.Error("canvas run failed",
			zap.String("language", string(lang)),
			zap.Error(err))
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	message, err := encodeSections(sections)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, models.CanvasResponse{Message: message})
}

// encodeSections serializes the section map as an indented JSON object with
// multibyte characters kept literal. The result travels as a string inside
// the response envelope; clients decode it a second time.
func encodeSections(sections map[string]string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(sections); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(body) //nolint:errcheck
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, models.ErrorResponse{Detail: detail})
}
