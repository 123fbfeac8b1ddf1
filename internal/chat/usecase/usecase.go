package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/beNeighb/backend/internal/chat"
	models "github.com/beNeighb/backend/internal/chat/model"
	"github.com/beNeighb/backend/internal/chat/repository"
	"github.com/beNeighb/backend/pkg/errors"
	"github.com/beNeighb/backend/pkg/logger"
)

type ChatUsecase struct {
	repo   chat.ChatRepository
	logger logger.Logger

	now func() time.Time
}

func NewChatUsecase(repo chat.ChatRepository, logger logger.Logger) *ChatUsecase {
	return &ChatUsecase{repo: repo, logger: logger, now: time.Now}
}

func (uc *ChatUsecase) ListMyChats(ctx context.Context, profileID uuid.UUID, limit *int) ([]chat.ChatWithMessageDataDTO, error) {
	max := 0
	if limit != nil {
		max = *limit
	}

	chats, err := uc.repo.ListChatsByProfile(ctx, profileID, max)
	if err != nil {
		uc.logger.Error("database error listing chats", "err", err)
		return nil, errors.Internal("internal server error")
	}

	dtos := make([]chat.ChatWithMessageDataDTO, 0, len(chats))
	for i := range chats {
		row := &chats[i]
		dtos = append(dtos, chat.ChatWithMessageDataDTO{
			ChatDTO:             chatDTO(&row.Chat, profileID),
			LastMessageSentAt:   row.LastMessageSentAt,
			UnreadMessagesCount: row.UnreadMessagesCount,
		})
	}
	return dtos, nil
}

func (uc *ChatUsecase) CreateMessage(ctx context.Context, cmd chat.CreateMessageCommand) (*chat.MessageDTO, error) {
	chatRow, err := uc.getChat(ctx, cmd.ChatID)
	if err != nil {
		return nil, err
	}

	recipientID, err := counterpartOf(chatRow, cmd.SenderID)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(cmd.Text)
	if text == "" {
		return nil, errors.ErrEmptyText
	}
	if len([]rune(text)) > models.MaxTextLen {
		return nil, errors.ErrTextTooLong
	}

	message := &models.Message{
		ChatID:      chatRow.ID,
		SenderID:    cmd.SenderID,
		RecipientID: recipientID,
		Text:        text,
		// Server time, not client time: clients must not backdate messages.
		SentAt: uc.now(),
	}
	if err := uc.repo.CreateMessage(ctx, message); err != nil {
		uc.logger.Errorf("error while saving message in db: %v", err)
		return nil, errors.Internal("internal server error")
	}

	dto := messageDTO(message, cmd.SenderID)
	return &dto, nil
}

func (uc *ChatUsecase) ListMessages(ctx context.Context, chatID, requesterID uuid.UUID, limit *int) ([]chat.MessageDTO, error) {
	chatRow, err := uc.getChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if _, err := counterpartOf(chatRow, requesterID); err != nil {
		return nil, err
	}

	max := 0
	if limit != nil {
		max = *limit
	}

	messages, err := uc.repo.ListMessagesByChat(ctx, chatID, max)
	if err != nil {
		uc.logger.Error("database error listing messages", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return messageDTOs(messages, requesterID), nil
}

func (uc *ChatUsecase) ListUnreadMessages(ctx context.Context, profileID uuid.UUID) ([]chat.MessageDTO, error) {
	messages, err := uc.repo.ListUnreadMessages(ctx, profileID)
	if err != nil {
		uc.logger.Error("database error listing unread messages", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return messageDTOs(messages, profileID), nil
}

func (uc *ChatUsecase) MarkAsRead(ctx context.Context, cmd chat.MarkAsReadCommand) (*chat.MessageDTO, error) {
	if cmd.ReadAt.IsZero() {
		return nil, errors.ErrReadAtRequired
	}

	target, err := uc.repo.GetMessageByID(ctx, cmd.MessageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, errors.ErrMessageNotFound
		}
		uc.logger.Error("database error fetching message", "err", err)
		return nil, errors.Internal("internal server error")
	}

	if target.Chat == nil || target.Chat.Offer == nil || target.Chat.Offer.Task == nil {
		uc.logger.Error("message loaded without chat relations", "message_id", target.ID)
		return nil, errors.Internal("internal server error")
	}
	if _, err := counterpartOf(target.Chat, cmd.RequesterID); err != nil {
		return nil, err
	}

	refreshed, err := uc.repo.MarkMessagesRead(ctx, target, cmd.RequesterID, cmd.ReadAt)
	if err != nil {
		uc.logger.Errorf("error while marking messages read: %v", err)
		return nil, errors.Internal("internal server error")
	}

	dto := messageDTO(refreshed, cmd.RequesterID)
	return &dto, nil
}

func (uc *ChatUsecase) getChat(ctx context.Context, chatID uuid.UUID) (*models.Chat, error) {
	chatRow, err := uc.repo.GetChatByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrChatNotFound) {
			return nil, errors.ErrChatNotFound
		}
		uc.logger.Error("database error fetching chat", "err", err)
		return nil, errors.Internal("internal server error")
	}
	if chatRow.Offer == nil || chatRow.Offer.Task == nil {
		uc.logger.Error("chat loaded without offer relations", "chat_id", chatRow.ID)
		return nil, errors.Internal("internal server error")
	}
	return chatRow, nil
}

// counterpartOf resolves the other participant, or rejects a non-member.
func counterpartOf(chatRow *models.Chat, profileID uuid.UUID) (uuid.UUID, error) {
	ownerID := chatRow.Offer.Task.OwnerID
	helperID := chatRow.Offer.HelperID

	switch profileID {
	case ownerID:
		return helperID, nil
	case helperID:
		return ownerID, nil
	default:
		return uuid.Nil, errors.ErrNotChatMember
	}
}

func chatDTO(chatRow *models.Chat, callerID uuid.UUID) chat.ChatDTO {
	dto := chat.ChatDTO{
		ID:        chatRow.ID,
		CreatedAt: chatRow.CreatedAt,
		Offer:     chatRow.OfferID,
	}

	offer := chatRow.Offer
	if offer == nil || offer.Task == nil {
		return dto
	}
	dto.Service = offer.Task.ServiceID

	// The exposed name is always the counterpart's.
	if callerID == offer.Task.OwnerID {
		if offer.Helper != nil {
			dto.ProfileName = offer.Helper.Name
		}
	} else if offer.Task.Owner != nil {
		dto.ProfileName = offer.Task.Owner.Name
	}
	return dto
}

func messageDTO(m *models.Message, callerID uuid.UUID) chat.MessageDTO {
	return chat.MessageDTO{
		ID:     m.ID,
		Chat:   m.ChatID,
		SentAt: m.SentAt,
		ReadAt: m.ReadAt,
		IsMine: m.SenderID == callerID,
		Text:   m.Text,
	}
}

func messageDTOs(messages []models.Message, callerID uuid.UUID) []chat.MessageDTO {
	dtos := make([]chat.MessageDTO, 0, len(messages))
	for i := range messages {
		dtos = append(dtos, messageDTO(&messages[i], callerID))
	}
	return dtos
}
