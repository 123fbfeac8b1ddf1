package marketplace

import (
	"context"

	"github.com/google/uuid"
)

type MarketplaceUsecase interface {
	CreateTask(ctx context.Context, cmd CreateTaskCommand) (*TaskDTO, error)
	GetTask(ctx context.Context, id uuid.UUID) (*TaskDTO, error)
	ListMyTasks(ctx context.Context, profileID uuid.UUID) ([]TaskDTO, error)
	// Tasks posted by others, candidates for the caller to offer on.
	ListTasksForMe(ctx context.Context, profileID uuid.UUID) ([]TaskDTO, error)
	ListTasksWithMyOffer(ctx context.Context, profileID uuid.UUID) ([]TaskDTO, error)

	// CreateOffer validates, in order: the helper is not the task owner,
	// no offer for (task, helper) exists yet, the pair is not blocked.
	CreateOffer(ctx context.Context, cmd CreateOfferCommand) (*OfferDTO, error)
	ListMyOffers(ctx context.Context, profileID uuid.UUID) ([]OfferDTO, error)

	// AcceptOffer is the only state transition in the marketplace:
	// pending -> accepted, by the task owner, while no sibling is accepted.
	// Idempotent: re-accepting returns the same composite payload.
	AcceptOffer(ctx context.Context, cmd AcceptOfferCommand) (*OfferWithChatDTO, error)
}
