package models

import (
	"time"

	"github.com/google/uuid"
)

// Service is a catalog entry describing what kind of help a task asks for.
type Service struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	Name string `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
