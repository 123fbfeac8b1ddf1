package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AssignmentStatusPending   = "pending"
	AssignmentStatusAccepted  = "accepted"
	AssignmentStatusCompleted = "completed"
	AssignmentStatusCanceled  = "canceled"
)

// Assignment records the working relationship created when an offer is
// accepted. The completed/canceled states are declared but no endpoint
// transitions into them yet.
type Assignment struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	OfferID uuid.UUID `bun:",notnull,unique,type:uuid"`
	Offer   *Offer    `bun:"rel:belongs-to,join:offer_id=id"`

	Status string `bun:",notnull,default:'pending'"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
