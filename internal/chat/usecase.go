package chat

import (
	"context"

	"github.com/google/uuid"
)

type ChatUsecase interface {
	// ListMyChats returns the caller's chats with counterpart name,
	// service id and message stats. limit == nil means no limit.
	ListMyChats(ctx context.Context, profileID uuid.UUID, limit *int) ([]ChatWithMessageDataDTO, error)

	// CreateMessage infers the recipient as the other chat participant.
	CreateMessage(ctx context.Context, cmd CreateMessageCommand) (*MessageDTO, error)

	ListMessages(ctx context.Context, chatID, requesterID uuid.UUID, limit *int) ([]MessageDTO, error)
	ListUnreadMessages(ctx context.Context, profileID uuid.UUID) ([]MessageDTO, error)

	// MarkAsRead back-fills read_at on earlier unread messages from the
	// counterpart. Idempotent: a read message keeps its original read_at.
	MarkAsRead(ctx context.Context, cmd MarkAsReadCommand) (*MessageDTO, error)
}
