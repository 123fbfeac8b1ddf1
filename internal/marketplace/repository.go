package marketplace

import (
	"context"

	"github.com/google/uuid"

	chatModels "github.com/beNeighb/backend/internal/chat/model"
	models "github.com/beNeighb/backend/internal/marketplace/model"
)

type MarketplaceRepository interface {
	CreateService(ctx context.Context, service *models.Service) error
	GetServiceByID(ctx context.Context, id uuid.UUID) (*models.Service, error)

	CreateTask(ctx context.Context, task *models.Task) error
	// GetTaskByID loads the task with its service and its offers (helpers included).
	GetTaskByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	ListTasksByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Task, error)
	ListTasksExcludingOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Task, error)
	ListTasksWithOfferBy(ctx context.Context, helperID uuid.UUID) ([]models.Task, error)

	CreateOffer(ctx context.Context, offer *models.Offer) error
	// GetOfferByID loads the offer with its helper and its task (owner and service included).
	GetOfferByID(ctx context.Context, id uuid.UUID) (*models.Offer, error)
	OfferExistsForTaskAndHelper(ctx context.Context, taskID, helperID uuid.UUID) (bool, error)
	ListOffersByHelper(ctx context.Context, helperID uuid.UUID) ([]models.Offer, error)

	// AcceptOffer applies the acceptance transition in a single transaction:
	// row-lock the task's offers, reject if a sibling is already accepted,
	// flip the status and get-or-create the assignment and the chat.
	// Re-accepting an accepted offer is a no-op returning the same chat.
	AcceptOffer(ctx context.Context, offerID uuid.UUID) (*models.Offer, *chatModels.Chat, error)
}
