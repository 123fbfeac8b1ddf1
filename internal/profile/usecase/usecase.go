package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/beNeighb/backend/internal/profile"
	models "github.com/beNeighb/backend/internal/profile/model"
	"github.com/beNeighb/backend/internal/profile/repository"
	"github.com/beNeighb/backend/pkg/errors"
	"github.com/beNeighb/backend/pkg/logger"
)

type ProfileUsecase struct {
	repo   profile.ProfileRepository
	logger logger.Logger
}

func NewProfileUsecase(repo profile.ProfileRepository, logger logger.Logger) *ProfileUsecase {
	return &ProfileUsecase{repo: repo, logger: logger}
}

func (uc *ProfileUsecase) CreateProfile(ctx context.Context, cmd profile.CreateProfileCommand) (*profile.MyProfileDTO, error) {
	if cmd.Name == "" {
		return nil, errors.ErrInvalidName
	}

	p := &models.Profile{Name: cmd.Name}
	if cmd.FCMToken != "" {
		p.FCMToken = &cmd.FCMToken
	}

	if err := uc.repo.CreateProfile(ctx, p); err != nil {
		uc.logger.Error("error while saving profile in db", "err", err)
		return nil, errors.Internal("internal server error")
	}

	return myProfileDTO(p), nil
}

func (uc *ProfileUsecase) GetProfile(ctx context.Context, id uuid.UUID) (*profile.ProfileDTO, error) {
	p, err := uc.getProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	return &profile.ProfileDTO{ID: p.ID, Name: p.Name}, nil
}

func (uc *ProfileUsecase) GetMyProfile(ctx context.Context, profileID uuid.UUID) (*profile.MyProfileDTO, error) {
	p, err := uc.getProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return myProfileDTO(p), nil
}

func (uc *ProfileUsecase) DeleteMyProfile(ctx context.Context, profileID uuid.UUID) error {
	err := uc.repo.DeleteProfile(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return errors.ErrProfileNotFound
		}
		uc.logger.Error("error while deleting profile", "err", err)
		return errors.Internal("internal server error")
	}
	return nil
}

func (uc *ProfileUsecase) UpdateFCMToken(ctx context.Context, cmd profile.UpdateFCMTokenCommand) error {
	if _, err := uc.getProfile(ctx, cmd.ProfileID); err != nil {
		return err
	}

	var token *string
	if cmd.FCMToken != "" {
		token = &cmd.FCMToken
	}

	if err := uc.repo.UpdateFCMToken(ctx, cmd.ProfileID, token); err != nil {
		uc.logger.Error("error while updating fcm token", "err", err)
		return errors.Internal("internal server error")
	}
	return nil
}

func (uc *ProfileUsecase) BlockProfile(ctx context.Context, blockerID, targetID uuid.UUID) error {
	if blockerID == targetID {
		return errors.ErrSelfBlock
	}

	if _, err := uc.getProfile(ctx, targetID); err != nil {
		return err
	}

	err := uc.repo.CreateBlock(ctx, blockerID, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrBlockExists) {
			return errors.ErrAlreadyBlocked
		}
		uc.logger.Error("error while creating block", "err", err)
		return errors.Internal("internal server error")
	}
	return nil
}

func (uc *ProfileUsecase) getProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	p, err := uc.repo.GetProfileByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.ErrProfileNotFound
		}
		uc.logger.Error("database error fetching profile", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return p, nil
}

func myProfileDTO(p *models.Profile) *profile.MyProfileDTO {
	dto := &profile.MyProfileDTO{ID: p.ID, Name: p.Name}
	if p.FCMToken != nil {
		dto.FCMToken = *p.FCMToken
	}
	return dto
}
