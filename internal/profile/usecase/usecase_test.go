package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beNeighb/backend/internal/profile"
	"github.com/beNeighb/backend/internal/profile/mocks"
	models "github.com/beNeighb/backend/internal/profile/model"
	"github.com/beNeighb/backend/internal/profile/repository"
	appErrors "github.com/beNeighb/backend/pkg/errors"
	"github.com/beNeighb/backend/pkg/logger"
)

func newProfileUsecaseWithMock(t *testing.T) (*ProfileUsecase, *mocks.MockProfileRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProfileRepository(ctrl)
	uc := &ProfileUsecase{repo: repo, logger: logger.Logger{}}
	return uc, repo
}

func TestProfileUsecase_CreateProfile(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		uc, repo := newProfileUsecaseWithMock(t)

		repo.EXPECT().
			CreateProfile(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *models.Profile) error {
				p.ID = uuid.New()
				return nil
			})

		dto, err := uc.CreateProfile(context.Background(), profile.CreateProfileCommand{
			Name:     "Bob",
			FCMToken: "token-123",
		})
		require.NoError(t, err)
		assert.Equal(t, "Bob", dto.Name)
		assert.Equal(t, "token-123", dto.FCMToken)
		assert.NotEqual(t, uuid.Nil, dto.ID)
	})

	t.Run("empty name", func(t *testing.T) {
		uc, _ := newProfileUsecaseWithMock(t)

		_, err := uc.CreateProfile(context.Background(), profile.CreateProfileCommand{})
		assert.ErrorIs(t, err, appErrors.ErrInvalidName)
	})
}

func TestProfileUsecase_GetProfile(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		uc, repo := newProfileUsecaseWithMock(t)

		id := uuid.New()
		token := "secret-token"
		repo.EXPECT().
			GetProfileByID(gomock.Any(), id).
			Return(&models.Profile{ID: id, Name: "Eve", FCMToken: &token}, nil)

		dto, err := uc.GetProfile(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Eve", dto.Name)
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo := newProfileUsecaseWithMock(t)

		id := uuid.New()
		repo.EXPECT().GetProfileByID(gomock.Any(), id).Return(nil, repository.ErrProfileNotFound)

		_, err := uc.GetProfile(context.Background(), id)
		assert.ErrorIs(t, err, appErrors.ErrProfileNotFound)
	})
}

func TestProfileUsecase_UpdateFCMToken(t *testing.T) {
	id := uuid.New()
	existing := &models.Profile{ID: id, Name: "Eve"}

	t.Run("set token", func(t *testing.T) {
		uc, repo := newProfileUsecaseWithMock(t)

		repo.EXPECT().GetProfileByID(gomock.Any(), id).Return(existing, nil)
		repo.EXPECT().
			UpdateFCMToken(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, token *string) error {
				require.NotNil(t, token)
				assert.Equal(t, "new-token", *token)
				return nil
			})

		err := uc.UpdateFCMToken(context.Background(), profile.UpdateFCMTokenCommand{
			ProfileID: id,
			FCMToken:  "new-token",
		})
		assert.NoError(t, err)
	})

	t.Run("empty token clears it", func(t *testing.T) {
		uc, repo := newProfileUsecaseWithMock(t)

		repo.EXPECT().GetProfileByID(gomock.Any(), id).Return(existing, nil)
		repo.EXPECT().UpdateFCMToken(gomock.Any(), id, nil).Return(nil)

		err := uc.UpdateFCMToken(context.Background(), profile.UpdateFCMTokenCommand{ProfileID: id})
		assert.NoError(t, err)
	})
}

func TestProfileUsecase_BlockProfile(t *testing.T) {
	blockerID := uuid.New()
	targetID := uuid.New()
	target := &models.Profile{ID: targetID, Name: "Target"}

	t.Run("happy path", func(t *testing.T) {
		uc, repo := newProfileUsecaseWithMock(t)

		repo.EXPECT().GetProfileByID(gomock.Any(), targetID).Return(target, nil)
		repo.EXPECT().CreateBlock(gomock.Any(), blockerID, targetID).Return(nil)

		err := uc.BlockProfile(context.Background(), blockerID, targetID)
		assert.NoError(t, err)
	})

	t.Run("self block", func(t *testing.T) {
		uc, _ := newProfileUsecaseWithMock(t)

		err := uc.BlockProfile(context.Background(), blockerID, blockerID)
		assert.ErrorIs(t, err, appErrors.ErrSelfBlock)
	})

	t.Run("unknown target", func(t *testing.T) {
		uc, repo := newProfileUsecaseWithMock(t)

		repo.EXPECT().GetProfileByID(gomock.Any(), targetID).Return(nil, repository.ErrProfileNotFound)

		err := uc.BlockProfile(context.Background(), blockerID, targetID)
		assert.ErrorIs(t, err, appErrors.ErrProfileNotFound)
	})

	t.Run("duplicate block", func(t *testing.T) {
		uc, repo := newProfileUsecaseWithMock(t)

		repo.EXPECT().GetProfileByID(gomock.Any(), targetID).Return(target, nil)
		repo.EXPECT().CreateBlock(gomock.Any(), blockerID, targetID).Return(repository.ErrBlockExists)

		err := uc.BlockProfile(context.Background(), blockerID, targetID)
		assert.ErrorIs(t, err, appErrors.ErrAlreadyBlocked)
		assert.Equal(t, appErrors.CodeAlreadyExists, appErrors.CodeOf(err))
	})
}

func TestProfileUsecase_DeleteMyProfile(t *testing.T) {
	id := uuid.New()

	t.Run("happy path", func(t *testing.T) {
		uc, repo := newProfileUsecaseWithMock(t)

		repo.EXPECT().DeleteProfile(gomock.Any(), id).Return(nil)

		err := uc.DeleteMyProfile(context.Background(), id)
		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo := newProfileUsecaseWithMock(t)

		repo.EXPECT().DeleteProfile(gomock.Any(), id).Return(repository.ErrProfileNotFound)

		err := uc.DeleteMyProfile(context.Background(), id)
		assert.ErrorIs(t, err, appErrors.ErrProfileNotFound)
	})
}
