package models

import (
	"time"

	"github.com/google/uuid"

	marketplace "github.com/beNeighb/backend/internal/marketplace/model"
)

type Chat struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	OfferID uuid.UUID          `bun:",notnull,unique,type:uuid"`
	Offer   *marketplace.Offer `bun:"rel:belongs-to,join:offer_id=id"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// ChatWithStats is the read model for chat listings.
type ChatWithStats struct {
	Chat `bun:",extend"`

	LastMessageSentAt   *time.Time `bun:",scanonly"`
	UnreadMessagesCount int64      `bun:",scanonly"`
}
