package chat

import (
	"context"
	"time"

	"github.com/google/uuid"

	models "github.com/beNeighb/backend/internal/chat/model"
)

type ChatRepository interface {
	// GetChatByID loads the chat with its offer, task and participants.
	GetChatByID(ctx context.Context, id uuid.UUID) (*models.Chat, error)
	// ListChatsByProfile returns the chats the profile participates in,
	// newest first, with last-message and unread stats computed for it.
	// limit <= 0 means no limit.
	ListChatsByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]models.ChatWithStats, error)

	CreateMessage(ctx context.Context, message *models.Message) error
	// GetMessageByID loads the message with its chat, offer and task.
	GetMessageByID(ctx context.Context, id uuid.UUID) (*models.Message, error)
	ListMessagesByChat(ctx context.Context, chatID uuid.UUID, limit int) ([]models.Message, error)
	ListUnreadMessages(ctx context.Context, profileID uuid.UUID) ([]models.Message, error)

	// MarkMessagesRead sets read_at on the target and on every earlier
	// still-unread message in the same chat not authored by the caller,
	// in one bulk update. Already-read messages keep their read_at.
	MarkMessagesRead(ctx context.Context, target *models.Message, callerID uuid.UUID, readAt time.Time) (*models.Message, error)
}
