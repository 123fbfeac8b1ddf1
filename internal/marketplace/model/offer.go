package models

import (
	"time"

	"github.com/google/uuid"

	profile "github.com/beNeighb/backend/internal/profile/model"
)

const (
	OfferStatusPending  = "pending"
	OfferStatusAccepted = "accepted"
)

type Offer struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	TaskID uuid.UUID `bun:",notnull,type:uuid"`
	Task   *Task     `bun:"rel:belongs-to,join:task_id=id"`

	HelperID uuid.UUID        `bun:",notnull,type:uuid"`
	Helper   *profile.Profile `bun:"rel:belongs-to,join:helper_id=id"`

	// pending -> accepted, exactly once, via the acceptance workflow.
	Status string `bun:",notnull,default:'pending'"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	// Unique index in migration:
	// CREATE UNIQUE INDEX idx_offer_task_helper ON offers(task_id, helper_id);
}
