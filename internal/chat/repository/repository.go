package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/beNeighb/backend/internal/chat/model"
	"github.com/beNeighb/backend/pkg/logger"
)

var (
	ErrChatNotFound    = errors.New("chat not found")
	ErrMessageNotFound = errors.New("message not found")
)

type ChatRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewChatRepository(db *bun.DB, logger logger.Logger) *ChatRepository {
	return &ChatRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *ChatRepository) GetChatByID(ctx context.Context, id uuid.UUID) (*models.Chat, error) {
	chat := new(models.Chat)
	err := r.db.NewSelect().
		Model(chat).
		Relation("Offer").
		Relation("Offer.Helper").
		Relation("Offer.Task").
		Relation("Offer.Task.Owner").
		Where("chat.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChatNotFound
		}
		return nil, errors.Wrap(err, "chatRepo.GetChatByID.Scan: ")
	}
	return chat, nil
}

func (r *ChatRepository) ListChatsByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]models.ChatWithStats, error) {
	var chats []models.ChatWithStats

	q := r.db.NewSelect().
		Model(&chats).
		ColumnExpr("chat.*").
		ColumnExpr("(SELECT max(m.sent_at) FROM messages AS m WHERE m.chat_id = chat.id) AS last_message_sent_at").
		ColumnExpr("(SELECT count(*) FROM messages AS m WHERE m.chat_id = chat.id AND m.recipient_id = ? AND m.read_at IS NULL) AS unread_messages_count", profileID).
		Relation("Offer").
		Relation("Offer.Helper").
		Relation("Offer.Task").
		Relation("Offer.Task.Owner").
		Join("LEFT JOIN tasks AS task ON task.id = offer.task_id").
		Where("offer.helper_id = ? OR task.owner_id = ?", profileID, profileID).
		Order("chat.created_at DESC")

	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListChatsByProfile.Scan: ")
	}
	return chats, nil
}

func (r *ChatRepository) CreateMessage(ctx context.Context, message *models.Message) error {
	_, err := r.db.NewInsert().Model(message).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.CreateMessage.Insert: ")
	}
	return nil
}

func (r *ChatRepository) GetMessageByID(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	message := new(models.Message)
	err := r.db.NewSelect().
		Model(message).
		Relation("Chat").
		Relation("Chat.Offer").
		Relation("Chat.Offer.Task").
		Where("message.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		return nil, errors.Wrap(err, "chatRepo.GetMessageByID.Scan: ")
	}
	return message, nil
}

func (r *ChatRepository) ListMessagesByChat(ctx context.Context, chatID uuid.UUID, limit int) ([]models.Message, error) {
	var messages []models.Message

	q := r.db.NewSelect().
		Model(&messages).
		Where("chat_id = ?", chatID).
		Order("sent_at ASC")

	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListMessagesByChat.Scan: ")
	}
	return messages, nil
}

func (r *ChatRepository) ListUnreadMessages(ctx context.Context, profileID uuid.UUID) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.NewSelect().
		Model(&messages).
		Where("recipient_id = ? AND read_at IS NULL", profileID).
		Order("sent_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListUnreadMessages.Scan: ")
	}
	return messages, nil
}

// MarkMessagesRead is one bulk UPDATE, so the back-fill is atomic. Messages
// already read keep their read_at (read_at IS NULL filter: first write wins).
func (r *ChatRepository) MarkMessagesRead(ctx context.Context, target *models.Message, callerID uuid.UUID, readAt time.Time) (*models.Message, error) {
	refreshed := new(models.Message)

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewUpdate().
			Model((*models.Message)(nil)).
			Set("read_at = ?", readAt).
			Where("chat_id = ?", target.ChatID).
			Where("sender_id != ?", callerID).
			Where("read_at IS NULL").
			Where("sent_at <= ?", target.SentAt).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "chatRepo.MarkMessagesRead.Update: ")
		}

		err = tx.NewSelect().Model(refreshed).Where("id = ?", target.ID).Scan(ctx)
		if err != nil {
			return errors.Wrap(err, "chatRepo.MarkMessagesRead.Refresh: ")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return refreshed, nil
}
