package models

import (
	"time"

	"github.com/google/uuid"

	profile "github.com/beNeighb/backend/internal/profile/model"
)

// MaxTextLen is the upper bound on message text length.
const MaxTextLen = 300

type Message struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	ChatID uuid.UUID `bun:",notnull,type:uuid"`
	Chat   *Chat     `bun:"rel:belongs-to,join:chat_id=id"`

	SenderID uuid.UUID        `bun:",notnull,type:uuid"`
	Sender   *profile.Profile `bun:"rel:belongs-to,join:sender_id=id"`

	RecipientID uuid.UUID        `bun:",notnull,type:uuid"`
	Recipient   *profile.Profile `bun:"rel:belongs-to,join:recipient_id=id"`

	Text string `bun:",notnull"`

	// SentAt is server-assigned; message ordering is sent_at order.
	SentAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	// ReadAt is set once by the recipient's mark-as-read. First write wins.
	ReadAt *time.Time `bun:",nullzero"`
}
