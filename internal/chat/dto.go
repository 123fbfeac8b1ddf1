package chat

import (
	"time"

	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type CreateMessageCommand struct {
	ChatID   uuid.UUID
	SenderID uuid.UUID
	Text     string
}

type MarkAsReadCommand struct {
	MessageID   uuid.UUID
	RequesterID uuid.UUID
	ReadAt      time.Time
}

// Output DTOs
type ChatDTO struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Offer     uuid.UUID `json:"offer"`
	Service   uuid.UUID `json:"service"`
	// ProfileName is the display name of the counterpart, not the caller.
	ProfileName string `json:"profile_name"`
}

type ChatWithMessageDataDTO struct {
	ChatDTO

	LastMessageSentAt   *time.Time `json:"last_message_sent_at"`
	UnreadMessagesCount int64      `json:"unread_messages_count"`
}

type MessageDTO struct {
	ID     uuid.UUID  `json:"id"`
	Chat   uuid.UUID  `json:"chat"`
	SentAt time.Time  `json:"sent_at"`
	ReadAt *time.Time `json:"read_at"`
	IsMine bool       `json:"is_mine"`
	Text   string     `json:"text"`
}
