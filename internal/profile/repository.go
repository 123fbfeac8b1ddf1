package profile

import (
	"context"

	"github.com/google/uuid"

	models "github.com/beNeighb/backend/internal/profile/model"
)

type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *models.Profile) error
	GetProfileByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	// Deleting a profile removes its offers (and their assignments, chats
	// and messages); its tasks survive without an owner.
	DeleteProfile(ctx context.Context, id uuid.UUID) error
	UpdateFCMToken(ctx context.Context, profileID uuid.UUID, token *string) error

	// Profiles with a usable fcm token, excluding one. Used for task broadcasts.
	ListReachableProfilesExcluding(ctx context.Context, excluded uuid.UUID) ([]models.Profile, error)

	// Atomically insert the block and delete every offer between the pair
	// in either direction. Tasks are preserved.
	CreateBlock(ctx context.Context, blocking, blocked uuid.UUID) error
	BlockExistsBetween(ctx context.Context, a, b uuid.UUID) (bool, error)
}
