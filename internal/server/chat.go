package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/beNeighb/backend/internal/chat"
	"github.com/beNeighb/backend/pkg/errors"
)

func (s *Server) handleChatsMine(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	chats, err := s.chatUC.ListMyChats(r.Context(), ProfileIDFromContext(r.Context()), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chats)
}

type createMessageRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleMessageCreate(w http.ResponseWriter, r *http.Request) {
	chatID, err := uuid.Parse(r.PathValue("chat_id"))
	if err != nil {
		s.writeError(w, errors.ErrChatNotFound)
		return
	}

	var req createMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	msg, err := s.chatUC.CreateMessage(r.Context(), chat.CreateMessageCommand{
		ChatID:   chatID,
		SenderID: ProfileIDFromContext(r.Context()),
		Text:     req.Text,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (s *Server) handleMessagesForChat(w http.ResponseWriter, r *http.Request) {
	chatID, err := uuid.Parse(r.PathValue("chat_id"))
	if err != nil {
		s.writeError(w, errors.ErrChatNotFound)
		return
	}

	limit, err := parseLimit(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	msgs, err := s.chatUC.ListMessages(r.Context(), chatID, ProfileIDFromContext(r.Context()), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

// handleUnreadMessages serves GET /chats/messages/?unread=true. The
// unread filter is mandatory and accepts only the literal "true".
func (s *Server) handleUnreadMessages(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("unread") != "true" {
		writeErrorMsg(w, http.StatusBadRequest, `Invalid unread value. Must be "true"`)
		return
	}

	msgs, err := s.chatUC.ListUnreadMessages(r.Context(), ProfileIDFromContext(r.Context()))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

type markAsReadRequest struct {
	ReadAt *time.Time `json:"read_at"`
}

func (s *Server) handleMessageMarkAsRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, errors.ErrMessageNotFound)
		return
	}

	var req markAsReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.ErrReadAtRequired)
		return
	}

	var readAt time.Time
	if req.ReadAt != nil {
		readAt = *req.ReadAt
	}

	msg, err := s.chatUC.MarkAsRead(r.Context(), chat.MarkAsReadCommand{
		MessageID:   id,
		RequesterID: ProfileIDFromContext(r.Context()),
		ReadAt:      readAt,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}
