package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/types"
)

func postChat(t *testing.T, s *Server, body string) ChatResponse {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	w := httptest.NewRecorder()

	s.handleChat(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ChatResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	return resp
}

func TestHandleChat_NewSession(t *testing.T) {
	s := newTestServer()

	resp := postChat(t, s, `{"message": "I want to change my career"}`)

	assert.NotEmpty(t, resp.Response)
	_, err := uuid.Parse(resp.SessionID)
	assert.NoError(t, err, "new sessions must get a uuid")
}

func TestHandleChat_ReusesSession(t *testing.T) {
	s := newTestServer()

	first := postChat(t, s, `{"message": "how do I negotiate salary?"}`)
	second := postChat(t, s, fmt.Sprintf(`{"message": "tell me more", "session_id": %q}`, first.SessionID))

	assert.Equal(t, first.SessionID, second.SessionID)
}

func TestHandleChat_InvalidBody(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader("{"))
	w := httptest.NewRecorder()

	s.handleChat(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleChat_EmptyMessage(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message": ""}`))
	w := httptest.NewRecorder()

	s.handleChat(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleChat_MalformedSessionID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message": "hi", "session_id": "not-a-uuid"}`))
	w := httptest.NewRecorder()

	s.handleChat(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleChatSummary(t *testing.T) {
	s := newTestServer()

	resp := postChat(t, s, `{"message": "how should I prepare for an interview?"}`)
	postChat(t, s, fmt.Sprintf(`{"message": "what about salary negotiation?", "session_id": %q}`, resp.SessionID))

	req := httptest.NewRequest(http.MethodGet, "/chat/"+resp.SessionID+"/summary", nil)
	req.SetPathValue("session_id", resp.SessionID)
	w := httptest.NewRecorder()

	s.handleChatSummary(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var summary types.ConversationSummary
	err := json.Unmarshal(w.Body.Bytes(), &summary)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.TotalMessages)
	assert.Equal(t, 2, summary.UserMessages)
	assert.Equal(t, []types.Intent{types.IntentInterviewPrep, types.IntentSalaryNegotiation}, summary.IntentsDiscussed)
}

func TestHandleChatSummary_UnknownSession(t *testing.T) {
	s := newTestServer()

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/chat/"+id+"/summary", nil)
	req.SetPathValue("session_id", id)
	w := httptest.NewRecorder()

	s.handleChatSummary(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var summary types.ConversationSummary
	err := json.Unmarshal(w.Body.Bytes(), &summary)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalMessages)
}

func TestHandleChatSummary_InvalidSessionID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/chat/nope/summary", nil)
	req.SetPathValue("session_id", "nope")
	w := httptest.NewRecorder()

	s.handleChatSummary(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleChatReset(t *testing.T) {
	s := newTestServer()

	resp := postChat(t, s, `{"message": "I need new skills"}`)

	req := httptest.NewRequest(http.MethodPost, "/chat/"+resp.SessionID+"/reset", nil)
	req.SetPathValue("session_id", resp.SessionID)
	w := httptest.NewRecorder()

	s.handleChatReset(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// Summary after reset reports zero messages
	req = httptest.NewRequest(http.MethodGet, "/chat/"+resp.SessionID+"/summary", nil)
	req.SetPathValue("session_id", resp.SessionID)
	w = httptest.NewRecorder()

	s.handleChatSummary(w, req)

	var summary types.ConversationSummary
	err := json.Unmarshal(w.Body.Bytes(), &summary)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalMessages)
	assert.Empty(t, summary.IntentsDiscussed)
}
