package models

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Name = display name shown to counterparts in chats
	Name string `bun:",notnull"`

	// FCMToken is the push-notification token; nil or empty means the
	// profile is unreachable and is skipped by broadcasts.
	FCMToken *string `bun:"fcm_token"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// Reachable reports whether the profile can receive push notifications.
func (p *Profile) Reachable() bool {
	return p.FCMToken != nil && *p.FCMToken != ""
}
