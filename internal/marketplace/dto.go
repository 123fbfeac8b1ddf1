package marketplace

import (
	"time"

	"github.com/google/uuid"

	"github.com/beNeighb/backend/internal/chat"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type CreateTaskCommand struct {
	OwnerID         uuid.UUID
	ServiceID       uuid.UUID
	DatetimeKnown   bool
	DatetimeOptions []time.Time
	EventType       string
	Address         string
	PriceOffer      int64
}

type CreateOfferCommand struct {
	TaskID   uuid.UUID
	HelperID uuid.UUID
}

type AcceptOfferCommand struct {
	OfferID     uuid.UUID
	RequesterID uuid.UUID
}

// Output DTOs
type OfferDTO struct {
	ID        uuid.UUID `json:"id"`
	Task      uuid.UUID `json:"task"`
	Helper    uuid.UUID `json:"helper"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type OfferHelperDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type OfferWithHelperDTO struct {
	ID        uuid.UUID      `json:"id"`
	Helper    OfferHelperDTO `json:"helper"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

type TaskDTO struct {
	ID              uuid.UUID            `json:"id"`
	Owner           uuid.UUID            `json:"owner"`
	Service         uuid.UUID            `json:"service"`
	DatetimeKnown   bool                 `json:"datetime_known"`
	DatetimeOptions []time.Time          `json:"datetime_options,omitempty"`
	EventType       string               `json:"event_type"`
	Address         string               `json:"address,omitempty"`
	PriceOffer      int64                `json:"price_offer"`
	CreatedAt       time.Time            `json:"created_at"`
	Offers          []OfferWithHelperDTO `json:"offers"`
}

// OfferWithChatDTO is the composite returned by the acceptance workflow.
type OfferWithChatDTO struct {
	Offer OfferDTO     `json:"offer"`
	Chat  chat.ChatDTO `json:"chat"`
}
