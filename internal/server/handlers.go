package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/excuselab/excuse-engine/apimodels"
)

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req apimodels.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(req.Scenario) == "" {
		s.writeError(w, http.StatusBadRequest, "scenario is required")
		return
	}
	if req.Variants == 0 {
		req.Variants = 1
	}
	if req.Variants < 1 || req.Variants > 5 {
		s.writeError(w, http.StatusBadRequest, "variants must be between 1 and 5")
		return
	}

	slog.Debug("received generate request", "request", req)

	resp, err := s.generator.Generate(r.Context(), req)
	if err != nil {
		slog.Error("generate request failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, apimodels.ErrorResponse{Error: message})
}
