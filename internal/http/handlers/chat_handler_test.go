// README: Handler tests for the chat endpoint session flow.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"voyago/internal/http/handlers"
	"voyago/internal/modules/conversation"
)

// stubPlanner is a test double for conversation.Planner.
type stubPlanner struct {
	reply string
}

func (p *stubPlanner) GeneratePlan(_ context.Context, _ *conversation.State, _, _ string) string {
	return p.reply
}

func buildChatRouter(planner conversation.Planner) (*gin.Engine, *conversation.Sessions) {
	gin.SetMode(gin.TestMode)
	sessions := conversation.NewSessions()
	conv := conversation.NewService(planner)
	r := gin.New()
	h := handlers.NewChatHandler(sessions, conv)
	r.POST("/api/chat", h.Chat)
	return r, sessions
}

func doChat(r *gin.Engine, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, "/api/chat", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeChat(t *testing.T, w *httptest.ResponseRecorder) (sessionID, reply string) {
	t.Helper()
	var resp struct {
		SessionID string `json:"session_id"`
		Reply     string `json:"reply"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.SessionID, resp.Reply
}

// TestChat_MissingMessage verifies blank messages are rejected before a
// session is created.
func TestChat_MissingMessage(t *testing.T) {
	r, sessions := buildChatRouter(&stubPlanner{})

	w := doChat(r, map[string]any{"message": "   "})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if _, ok := sessions.Get(""); ok {
		t.Error("session registered for a rejected request")
	}
}

func TestChat_InvalidJSON(t *testing.T) {
	r, _ := buildChatRouter(&stubPlanner{})

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

// TestChat_NewSessionOnGreeting verifies a first request without a session id
// gets a canned greeting reply and a fresh session id.
func TestChat_NewSessionOnGreeting(t *testing.T) {
	r, sessions := buildChatRouter(&stubPlanner{reply: "unused"})

	w := doChat(r, map[string]any{"message": "hello"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	sessionID, reply := decodeChat(t, w)
	if sessionID == "" {
		t.Error("missing session_id in response")
	}
	if reply != conversation.ReplyGreeting {
		t.Errorf("reply = %q, want greeting", reply)
	}
	if _, ok := sessions.Get(sessionID); !ok {
		t.Error("returned session_id not registered")
	}
}

// TestChat_SessionContinuity verifies a follow-up on the returned session id
// reuses the same conversation state.
func TestChat_SessionContinuity(t *testing.T) {
	r, sessions := buildChatRouter(&stubPlanner{reply: "Here is your Paris plan."})

	w := doChat(r, map[string]any{"message": "plan a trip to Paris"})
	firstID, firstReply := decodeChat(t, w)
	if firstReply != "Here is your Paris plan." {
		t.Fatalf("first reply = %q", firstReply)
	}

	w = doChat(r, map[string]any{"session_id": firstID, "message": "thanks!"})
	secondID, secondReply := decodeChat(t, w)

	if secondID != firstID {
		t.Errorf("session_id changed across turns: %q vs %q", firstID, secondID)
	}
	if secondReply != conversation.ReplyThanks {
		t.Errorf("second reply = %q, want thanks acknowledgement", secondReply)
	}

	sess, ok := sessions.Get(firstID)
	if !ok {
		t.Fatal("session disappeared")
	}
	sess.Run(func(state *conversation.State) string {
		if state.LastDestination != "Paris" {
			t.Errorf("LastDestination = %q, want Paris", state.LastDestination)
		}
		if len(state.Turns) != 5 { // seed + 2 user + 2 assistant
			t.Errorf("len(Turns) = %d, want 5", len(state.Turns))
		}
		return ""
	})
}

// TestChat_UnknownSessionStartsFresh verifies an unrecognized session id is
// replaced rather than rejected.
func TestChat_UnknownSessionStartsFresh(t *testing.T) {
	r, _ := buildChatRouter(&stubPlanner{})

	w := doChat(r, map[string]any{"session_id": "no-such-session", "message": "hi"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	sessionID, _ := decodeChat(t, w)
	if sessionID == "no-such-session" || sessionID == "" {
		t.Errorf("session_id = %q, want a freshly minted id", sessionID)
	}
}
