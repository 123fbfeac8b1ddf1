package models

import (
	"time"

	"github.com/google/uuid"

	profile "github.com/beNeighb/backend/internal/profile/model"
)

const (
	EventTypeOnline  = "online"
	EventTypeOffline = "offline"
)

type Task struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Ownership. Nullable so a task outlives its owner's profile.
	OwnerID uuid.UUID        `bun:",nullzero,type:uuid"`
	Owner   *profile.Profile `bun:"rel:belongs-to,join:owner_id=id"`

	ServiceID uuid.UUID `bun:",notnull,type:uuid"`
	Service   *Service  `bun:"rel:belongs-to,join:service_id=id"`

	// When the owner does not know the date, up to three future options are offered.
	DatetimeKnown   bool        `bun:",notnull"`
	DatetimeOptions []time.Time `bun:",array"`

	EventType string  `bun:",notnull"`
	Address   *string `bun:",nullzero"` // required iff offline

	PriceOffer int64 `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	Offers []*Offer `bun:"rel:has-many,join:id=task_id"`
}
