package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Devp21/talentscout-hiring-chatbot/internal/interview"
)

type submitTurnRequest struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.metrics.GetSnapshot())
}

func (s *Server) handleStartSession(w http.ResponseWriter, _ *http.Request) {
	result := s.engine.StartSession()
	respondJSON(w, http.StatusCreated, result)
}

func (s *Server) handleSubmitTurn(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	var req submitTurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	result, err := s.engine.SubmitTurn(r.Context(), sessionID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, interview.ErrSessionNotFound):
			respondError(w, http.StatusNotFound, "session_not_found", "session not found")
		case errors.Is(err, interview.ErrSessionClosed):
			respondError(w, http.StatusConflict, "session_closed", "session already reached a terminal stage")
		default:
			s.logger.Error("failed to process turn", zap.Error(err))
			respondError(w, http.StatusInternalServerError, "internal_error", "failed to process turn")
		}
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	snapshot, err := s.engine.Snapshot(sessionID)
	if err != nil {
		if errors.Is(err, interview.ErrSessionNotFound) {
			respondError(w, http.StatusNotFound, "session_not_found", "session not found")
			return
		}
		s.logger.Error("failed to snapshot session", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load session")
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorResponse{Error: code, Message: message})
}
