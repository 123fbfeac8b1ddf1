package models

import (
	"time"

	"github.com/google/uuid"
)

type Block struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	BlockingProfileID uuid.UUID `bun:",notnull,type:uuid"`
	BlockingProfile   *Profile  `bun:"rel:belongs-to,join:blocking_profile_id=id"`

	BlockedProfileID uuid.UUID `bun:",notnull,type:uuid"`
	BlockedProfile   *Profile  `bun:"rel:belongs-to,join:blocked_profile_id=id"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	// Unique index in migration:
	// CREATE UNIQUE INDEX idx_block_pair ON blocks(blocking_profile_id, blocked_profile_id);
}
