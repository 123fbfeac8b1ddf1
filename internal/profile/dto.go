package profile

import (
	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type CreateProfileCommand struct {
	Name     string
	FCMToken string
}

type UpdateFCMTokenCommand struct {
	ProfileID uuid.UUID
	FCMToken  string
}

// Output DTOs
type ProfileDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type MyProfileDTO struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	FCMToken string    `json:"fcm_token,omitempty"`
}
