package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beNeighb/backend/internal/marketplace"
	"github.com/beNeighb/backend/internal/marketplace/mocks"
	models "github.com/beNeighb/backend/internal/marketplace/model"
	"github.com/beNeighb/backend/internal/marketplace/repository"
	profileMocks "github.com/beNeighb/backend/internal/profile/mocks"
	profileModels "github.com/beNeighb/backend/internal/profile/model"
	appErrors "github.com/beNeighb/backend/pkg/errors"
	"github.com/beNeighb/backend/pkg/logger"
	"github.com/beNeighb/backend/pkg/notify"
	notifyMocks "github.com/beNeighb/backend/pkg/notify/mocks"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestUsecase(t *testing.T) (*MarketplaceUsecase, *mocks.MockMarketplaceRepository, *profileMocks.MockProfileRepository, *notifyMocks.MockSender) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMarketplaceRepository(ctrl)
	profileRepo := profileMocks.NewMockProfileRepository(ctrl)
	sender := notifyMocks.NewMockSender(ctrl)

	uc := &MarketplaceUsecase{
		repo:        repo,
		profileRepo: profileRepo,
		notifier:    sender,
		logger:      logger.Logger{},
		now:         func() time.Time { return testNow },
	}
	return uc, repo, profileRepo, sender
}

func validTaskCommand(ownerID, serviceID uuid.UUID) marketplace.CreateTaskCommand {
	return marketplace.CreateTaskCommand{
		OwnerID:       ownerID,
		ServiceID:     serviceID,
		DatetimeKnown: true,
		EventType:     models.EventTypeOnline,
		PriceOffer:    50,
	}
}

func TestMarketplaceUsecase_CreateTask(t *testing.T) {
	ownerID := uuid.New()
	serviceID := uuid.New()
	service := &models.Service{ID: serviceID, Name: "Dog walking"}

	t.Run("happy path", func(t *testing.T) {
		uc, repo, profileRepo, _ := newTestUsecase(t)

		repo.EXPECT().GetServiceByID(gomock.Any(), serviceID).Return(service, nil)
		repo.EXPECT().
			CreateTask(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task *models.Task) error {
				task.ID = uuid.New()
				task.CreatedAt = testNow
				return nil
			})
		profileRepo.EXPECT().
			ListReachableProfilesExcluding(gomock.Any(), ownerID).
			Return(nil, nil)

		dto, err := uc.CreateTask(context.Background(), validTaskCommand(ownerID, serviceID))
		require.NoError(t, err)
		assert.Equal(t, ownerID, dto.Owner)
		assert.Equal(t, serviceID, dto.Service)
		assert.Equal(t, int64(50), dto.PriceOffer)
	})

	t.Run("unknown service", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)

		repo.EXPECT().
			GetServiceByID(gomock.Any(), serviceID).
			Return(nil, repository.ErrServiceNotFound)

		_, err := uc.CreateTask(context.Background(), validTaskCommand(ownerID, serviceID))
		assert.ErrorIs(t, err, appErrors.ErrServiceNotFound)
	})

	t.Run("datetime options required when datetime unknown", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)
		repo.EXPECT().GetServiceByID(gomock.Any(), serviceID).Return(service, nil)

		cmd := validTaskCommand(ownerID, serviceID)
		cmd.DatetimeKnown = false

		_, err := uc.CreateTask(context.Background(), cmd)
		assert.ErrorIs(t, err, appErrors.ErrDatetimeOptionsNeeded)
	})

	t.Run("datetime options forbidden when datetime known", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)
		repo.EXPECT().GetServiceByID(gomock.Any(), serviceID).Return(service, nil)

		cmd := validTaskCommand(ownerID, serviceID)
		cmd.DatetimeOptions = []time.Time{testNow.Add(time.Hour)}

		_, err := uc.CreateTask(context.Background(), cmd)
		assert.ErrorIs(t, err, appErrors.ErrDatetimeOptionsExtra)
	})

	t.Run("datetime options must be in the future", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)
		repo.EXPECT().GetServiceByID(gomock.Any(), serviceID).Return(service, nil)

		cmd := validTaskCommand(ownerID, serviceID)
		cmd.DatetimeKnown = false
		cmd.DatetimeOptions = []time.Time{testNow.Add(-time.Hour)}

		_, err := uc.CreateTask(context.Background(), cmd)
		assert.ErrorIs(t, err, appErrors.ErrDatetimeOptionsPast)
	})

	t.Run("too many datetime options", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)
		repo.EXPECT().GetServiceByID(gomock.Any(), serviceID).Return(service, nil)

		cmd := validTaskCommand(ownerID, serviceID)
		cmd.DatetimeKnown = false
		cmd.DatetimeOptions = []time.Time{
			testNow.Add(time.Hour),
			testNow.Add(2 * time.Hour),
			testNow.Add(3 * time.Hour),
			testNow.Add(4 * time.Hour),
		}

		_, err := uc.CreateTask(context.Background(), cmd)
		assert.ErrorIs(t, err, appErrors.ErrTooManyDatetimes)
	})

	t.Run("online task must not carry address", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)
		repo.EXPECT().GetServiceByID(gomock.Any(), serviceID).Return(service, nil)

		cmd := validTaskCommand(ownerID, serviceID)
		cmd.Address = "Main street 1"

		_, err := uc.CreateTask(context.Background(), cmd)
		assert.ErrorIs(t, err, appErrors.ErrAddressForbidden)
	})

	t.Run("offline task requires address", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)
		repo.EXPECT().GetServiceByID(gomock.Any(), serviceID).Return(service, nil)

		cmd := validTaskCommand(ownerID, serviceID)
		cmd.EventType = models.EventTypeOffline

		_, err := uc.CreateTask(context.Background(), cmd)
		assert.ErrorIs(t, err, appErrors.ErrAddressRequired)
	})

	t.Run("price offer must be positive", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)
		repo.EXPECT().GetServiceByID(gomock.Any(), serviceID).Return(service, nil)

		cmd := validTaskCommand(ownerID, serviceID)
		cmd.PriceOffer = 0

		_, err := uc.CreateTask(context.Background(), cmd)
		assert.ErrorIs(t, err, appErrors.ErrInvalidPriceOffer)
	})
}

func TestMarketplaceUsecase_CreateTask_Broadcast(t *testing.T) {
	ownerID := uuid.New()
	serviceID := uuid.New()
	service := &models.Service{ID: serviceID, Name: "Gardening"}

	token1 := "token-1"
	token2 := "token-2"
	recipients := []profileModels.Profile{
		{ID: uuid.New(), Name: "a", FCMToken: &token1},
		{ID: uuid.New(), Name: "b", FCMToken: &token2},
		{ID: uuid.New(), Name: "no-token"},
	}

	t.Run("notifies every reachable profile", func(t *testing.T) {
		uc, repo, profileRepo, sender := newTestUsecase(t)

		repo.EXPECT().GetServiceByID(gomock.Any(), serviceID).Return(service, nil)
		repo.EXPECT().
			CreateTask(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task *models.Task) error {
				task.ID = uuid.New()
				return nil
			})
		profileRepo.EXPECT().
			ListReachableProfilesExcluding(gomock.Any(), ownerID).
			Return(recipients, nil)

		sender.EXPECT().
			Send(gomock.Any(), token1, "", "New task has been created: Gardening", gomock.Any()).
			Return(nil)
		sender.EXPECT().
			Send(gomock.Any(), token2, "", "New task has been created: Gardening", gomock.Any()).
			Return(nil)

		_, err := uc.CreateTask(context.Background(), validTaskCommand(ownerID, serviceID))
		require.NoError(t, err)
	})

	t.Run("delivery failure does not fail the request", func(t *testing.T) {
		uc, repo, profileRepo, sender := newTestUsecase(t)

		repo.EXPECT().GetServiceByID(gomock.Any(), serviceID).Return(service, nil)
		repo.EXPECT().
			CreateTask(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task *models.Task) error {
				task.ID = uuid.New()
				return nil
			})
		profileRepo.EXPECT().
			ListReachableProfilesExcluding(gomock.Any(), ownerID).
			Return(recipients[:1], nil)

		sender.EXPECT().
			Send(gomock.Any(), token1, "", gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		_, err := uc.CreateTask(context.Background(), validTaskCommand(ownerID, serviceID))
		assert.NoError(t, err)
	})

	t.Run("unregistered token is cleared", func(t *testing.T) {
		uc, repo, profileRepo, sender := newTestUsecase(t)

		repo.EXPECT().GetServiceByID(gomock.Any(), serviceID).Return(service, nil)
		repo.EXPECT().
			CreateTask(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task *models.Task) error {
				task.ID = uuid.New()
				return nil
			})
		profileRepo.EXPECT().
			ListReachableProfilesExcluding(gomock.Any(), ownerID).
			Return(recipients[:1], nil)

		sender.EXPECT().
			Send(gomock.Any(), token1, "", gomock.Any(), gomock.Any()).
			Return(notify.ErrUnregistered)
		profileRepo.EXPECT().
			UpdateFCMToken(gomock.Any(), recipients[0].ID, nil).
			Return(nil)

		_, err := uc.CreateTask(context.Background(), validTaskCommand(ownerID, serviceID))
		assert.NoError(t, err)
	})
}

func TestMarketplaceUsecase_GetTask(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)

		taskID := uuid.New()
		helper := &profileModels.Profile{ID: uuid.New(), Name: "helper"}
		task := &models.Task{
			ID:        taskID,
			OwnerID:   uuid.New(),
			ServiceID: uuid.New(),
			EventType: models.EventTypeOnline,
			Offers: []*models.Offer{
				{ID: uuid.New(), TaskID: taskID, HelperID: helper.ID, Helper: helper, Status: models.OfferStatusPending},
			},
		}
		repo.EXPECT().GetTaskByID(gomock.Any(), taskID).Return(task, nil)

		dto, err := uc.GetTask(context.Background(), taskID)
		require.NoError(t, err)
		require.Len(t, dto.Offers, 1)
		assert.Equal(t, "helper", dto.Offers[0].Helper.Name)
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo, _, _ := newTestUsecase(t)

		taskID := uuid.New()
		repo.EXPECT().GetTaskByID(gomock.Any(), taskID).Return(nil, repository.ErrTaskNotFound)

		_, err := uc.GetTask(context.Background(), taskID)
		assert.Equal(t, appErrors.CodeNotFound, appErrors.CodeOf(err))
	})
}
