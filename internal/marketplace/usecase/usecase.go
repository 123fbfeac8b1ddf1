package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/beNeighb/backend/internal/marketplace"
	models "github.com/beNeighb/backend/internal/marketplace/model"
	"github.com/beNeighb/backend/internal/marketplace/repository"
	"github.com/beNeighb/backend/internal/profile"
	profileModels "github.com/beNeighb/backend/internal/profile/model"
	"github.com/beNeighb/backend/pkg/errors"
	"github.com/beNeighb/backend/pkg/logger"
	"github.com/beNeighb/backend/pkg/notify"
)

const maxDatetimeOptions = 3

type MarketplaceUsecase struct {
	repo        marketplace.MarketplaceRepository
	profileRepo profile.ProfileRepository
	notifier    notify.Sender
	logger      logger.Logger

	now func() time.Time
}

func NewMarketplaceUsecase(
	repo marketplace.MarketplaceRepository,
	profileRepo profile.ProfileRepository,
	notifier notify.Sender,
	logger logger.Logger,
) *MarketplaceUsecase {
	return &MarketplaceUsecase{
		repo:        repo,
		profileRepo: profileRepo,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

func (uc *MarketplaceUsecase) CreateTask(ctx context.Context, cmd marketplace.CreateTaskCommand) (*marketplace.TaskDTO, error) {
	service, err := uc.repo.GetServiceByID(ctx, cmd.ServiceID)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, errors.ErrServiceNotFound
		}
		uc.logger.Error("database error fetching service", "err", err)
		return nil, errors.Internal("internal server error")
	}

	if err := uc.validateTask(cmd); err != nil {
		return nil, err
	}

	task := &models.Task{
		OwnerID:         cmd.OwnerID,
		ServiceID:       cmd.ServiceID,
		DatetimeKnown:   cmd.DatetimeKnown,
		DatetimeOptions: cmd.DatetimeOptions,
		EventType:       cmd.EventType,
		PriceOffer:      cmd.PriceOffer,
	}
	if cmd.Address != "" {
		task.Address = &cmd.Address
	}

	if err := uc.repo.CreateTask(ctx, task); err != nil {
		uc.logger.Errorf("error while saving task in db: %v", err)
		return nil, errors.Internal("internal server error")
	}

	uc.broadcastNewTask(ctx, task, service)

	dto := taskDTO(task)
	return &dto, nil
}

func (uc *MarketplaceUsecase) validateTask(cmd marketplace.CreateTaskCommand) error {
	if !cmd.DatetimeKnown {
		if len(cmd.DatetimeOptions) == 0 {
			return errors.ErrDatetimeOptionsNeeded
		}
		if len(cmd.DatetimeOptions) > maxDatetimeOptions {
			return errors.ErrTooManyDatetimes
		}
		for _, option := range cmd.DatetimeOptions {
			if !option.After(uc.now()) {
				return errors.ErrDatetimeOptionsPast
			}
		}
	} else if len(cmd.DatetimeOptions) > 0 {
		return errors.ErrDatetimeOptionsExtra
	}

	switch cmd.EventType {
	case models.EventTypeOnline:
		if cmd.Address != "" {
			return errors.ErrAddressForbidden
		}
	case models.EventTypeOffline:
		if cmd.Address == "" {
			return errors.ErrAddressRequired
		}
	default:
		return errors.ErrInvalidEventType
	}

	if cmd.PriceOffer <= 0 {
		return errors.ErrInvalidPriceOffer
	}
	return nil
}

// broadcastNewTask pushes to every reachable profile except the owner.
func (uc *MarketplaceUsecase) broadcastNewTask(ctx context.Context, task *models.Task, service *models.Service) {
	recipients, err := uc.profileRepo.ListReachableProfilesExcluding(ctx, task.OwnerID)
	if err != nil {
		uc.logger.Error("error listing notification recipients", "err", err)
		return
	}

	body := "New task has been created: " + service.Name
	data := map[string]string{
		"type":    "new_task",
		"task_id": task.ID.String(),
	}
	for i := range recipients {
		uc.sendPush(ctx, &recipients[i], body, data)
	}
}

// sendPush never fails the request. An unregistered token is cleared so
// the next broadcast skips the recipient.
func (uc *MarketplaceUsecase) sendPush(ctx context.Context, recipient *profileModels.Profile, body string, data map[string]string) {
	if !recipient.Reachable() {
		return
	}

	err := uc.notifier.Send(ctx, *recipient.FCMToken, "", body, data)
	if err == nil {
		return
	}

	if errors.Is(err, notify.ErrUnregistered) {
		if clearErr := uc.profileRepo.UpdateFCMToken(ctx, recipient.ID, nil); clearErr != nil {
			uc.logger.Error("error clearing stale fcm token", "err", clearErr)
		}
		return
	}
	uc.logger.Warn("push notification failed", "recipient", recipient.ID, "err", err)
}

func (uc *MarketplaceUsecase) GetTask(ctx context.Context, id uuid.UUID) (*marketplace.TaskDTO, error) {
	task, err := uc.repo.GetTaskByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.NotFound("task not found")
		}
		uc.logger.Error("database error fetching task", "err", err)
		return nil, errors.Internal("internal server error")
	}
	dto := taskDTO(task)
	return &dto, nil
}

func (uc *MarketplaceUsecase) ListMyTasks(ctx context.Context, profileID uuid.UUID) ([]marketplace.TaskDTO, error) {
	tasks, err := uc.repo.ListTasksByOwner(ctx, profileID)
	if err != nil {
		uc.logger.Error("database error listing tasks", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return taskDTOs(tasks), nil
}

func (uc *MarketplaceUsecase) ListTasksForMe(ctx context.Context, profileID uuid.UUID) ([]marketplace.TaskDTO, error) {
	tasks, err := uc.repo.ListTasksExcludingOwner(ctx, profileID)
	if err != nil {
		uc.logger.Error("database error listing tasks", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return taskDTOs(tasks), nil
}

func (uc *MarketplaceUsecase) ListTasksWithMyOffer(ctx context.Context, profileID uuid.UUID) ([]marketplace.TaskDTO, error) {
	tasks, err := uc.repo.ListTasksWithOfferBy(ctx, profileID)
	if err != nil {
		uc.logger.Error("database error listing tasks", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return taskDTOs(tasks), nil
}

func taskDTO(task *models.Task) marketplace.TaskDTO {
	dto := marketplace.TaskDTO{
		ID:              task.ID,
		Owner:           task.OwnerID,
		Service:         task.ServiceID,
		DatetimeKnown:   task.DatetimeKnown,
		DatetimeOptions: task.DatetimeOptions,
		EventType:       task.EventType,
		PriceOffer:      task.PriceOffer,
		CreatedAt:       task.CreatedAt,
		Offers:          make([]marketplace.OfferWithHelperDTO, 0, len(task.Offers)),
	}
	if task.Address != nil {
		dto.Address = *task.Address
	}
	for _, offer := range task.Offers {
		row := marketplace.OfferWithHelperDTO{
			ID:        offer.ID,
			Status:    offer.Status,
			CreatedAt: offer.CreatedAt,
		}
		if offer.Helper != nil {
			row.Helper = marketplace.OfferHelperDTO{ID: offer.Helper.ID, Name: offer.Helper.Name}
		}
		dto.Offers = append(dto.Offers, row)
	}
	return dto
}

func taskDTOs(tasks []models.Task) []marketplace.TaskDTO {
	dtos := make([]marketplace.TaskDTO, 0, len(tasks))
	for i := range tasks {
		dtos = append(dtos, taskDTO(&tasks[i]))
	}
	return dtos
}
