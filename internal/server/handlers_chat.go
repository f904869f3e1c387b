package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/career-advisor/internal/types"
)

// ChatResponse represents the advisor's reply for one chat message
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

// handleChat routes one message through the session's intent classifier
// and composer
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.validationError(w, "body", "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.validationError(w, "chat", err.Error())
		return
	}

	session := s.sessions.Session(req.SessionID)
	response := computeOr("chat", func() string {
		return session.ProcessMessage(req.Message, req.Context)
	}, fallbackChatMessage)

	s.jsonResponse(w, http.StatusOK, ChatResponse{
		Response:  response,
		SessionID: session.ID,
	})
}

// handleChatSummary reports per-session conversation analytics. An unknown
// session yields a zero-message summary.
func (s *Server) handleChatSummary(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")
	if _, err := uuid.Parse(sessionID); err != nil {
		s.validationError(w, "session_id", "Invalid session ID")
		return
	}

	summary := s.sessions.Session(sessionID).Summary()
	s.jsonResponse(w, http.StatusOK, summary)
}

// handleChatReset clears one session's turn log and context
func (s *Server) handleChatReset(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")
	if _, err := uuid.Parse(sessionID); err != nil {
		s.validationError(w, "session_id", "Invalid session ID")
		return
	}

	s.sessions.Session(sessionID).Reset()
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Conversation reset successfully"})
}
