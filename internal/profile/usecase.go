package profile

import (
	"context"

	"github.com/google/uuid"
)

type ProfileUsecase interface {
	CreateProfile(ctx context.Context, cmd CreateProfileCommand) (*MyProfileDTO, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*ProfileDTO, error)
	GetMyProfile(ctx context.Context, profileID uuid.UUID) (*MyProfileDTO, error)
	DeleteMyProfile(ctx context.Context, profileID uuid.UUID) error
	UpdateFCMToken(ctx context.Context, cmd UpdateFCMTokenCommand) error

	// Blocking cascades: offers/chats between the pair are removed,
	// tasks are kept.
	BlockProfile(ctx context.Context, blockerID, targetID uuid.UUID) error
}
