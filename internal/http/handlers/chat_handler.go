// README: Chat handler: one conversational turn per request.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"voyago/internal/modules/conversation"
)

// chatTimeout bounds the model and weather calls for one turn.
const chatTimeout = 60 * time.Second

type ChatHandler struct {
	sessions *conversation.Sessions
	conv     *conversation.Service
}

func NewChatHandler(sessions *conversation.Sessions, conv *conversation.Service) *ChatHandler {
	return &ChatHandler{sessions: sessions, conv: conv}
}

type chatReq struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResp struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

// Chat handles POST /api/chat. An unknown or empty session_id starts a new
// session; the returned session_id carries the conversation forward. The
// per-session lock inside Run keeps turns strictly sequential.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}

	sess, ok := h.sessions.Get(req.SessionID)
	if !ok {
		sess = h.sessions.Create()
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), chatTimeout)
	defer cancel()

	reply := sess.Run(func(state *conversation.State) string {
		return h.conv.HandleTurn(ctx, state, req.Message)
	})

	writeJSON(c, http.StatusOK, chatResp{SessionID: sess.ID, Reply: reply})
}
