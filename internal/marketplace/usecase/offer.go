package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/beNeighb/backend/internal/chat"
	"github.com/beNeighb/backend/internal/marketplace"
	models "github.com/beNeighb/backend/internal/marketplace/model"
	"github.com/beNeighb/backend/internal/marketplace/repository"
	"github.com/beNeighb/backend/pkg/errors"
)

// CreateOffer validates in a fixed order so each failure keeps its distinct
// error: own task, duplicate offer, blocked pair.
func (uc *MarketplaceUsecase) CreateOffer(ctx context.Context, cmd marketplace.CreateOfferCommand) (*marketplace.OfferDTO, error) {
	task, err := uc.repo.GetTaskByID(ctx, cmd.TaskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.ErrTaskNotFound
		}
		uc.logger.Error("database error fetching task", "err", err)
		return nil, errors.Internal("internal server error")
	}

	if task.OwnerID == cmd.HelperID {
		return nil, errors.ErrOwnOffer
	}

	exists, err := uc.repo.OfferExistsForTaskAndHelper(ctx, cmd.TaskID, cmd.HelperID)
	if err != nil {
		uc.logger.Error("database error checking existing offer", "err", err)
		return nil, errors.Internal("internal server error")
	}
	if exists {
		return nil, errors.ErrDuplicateOffer
	}

	blocked, err := uc.profileRepo.BlockExistsBetween(ctx, cmd.HelperID, task.OwnerID)
	if err != nil {
		uc.logger.Error("database error checking block", "err", err)
		return nil, errors.Internal("internal server error")
	}
	if blocked {
		return nil, errors.ErrBlockedPair
	}

	// Status is never client-controlled: a new offer is always pending.
	offer := &models.Offer{
		TaskID:   cmd.TaskID,
		HelperID: cmd.HelperID,
		Status:   models.OfferStatusPending,
	}
	if err := uc.repo.CreateOffer(ctx, offer); err != nil {
		uc.logger.Errorf("error while saving offer in db: %v", err)
		return nil, errors.Internal("internal server error")
	}

	uc.notifyNewOffer(ctx, offer, task)

	dto := offerDTO(offer)
	return &dto, nil
}

func (uc *MarketplaceUsecase) notifyNewOffer(ctx context.Context, offer *models.Offer, task *models.Task) {
	owner, err := uc.profileRepo.GetProfileByID(ctx, task.OwnerID)
	if err != nil {
		uc.logger.Error("error fetching task owner for notification", "err", err)
		return
	}

	uc.sendPush(ctx, owner, "New offer for your task", map[string]string{
		"type":     "new_offer",
		"offer_id": offer.ID.String(),
	})
}

func (uc *MarketplaceUsecase) ListMyOffers(ctx context.Context, profileID uuid.UUID) ([]marketplace.OfferDTO, error) {
	offers, err := uc.repo.ListOffersByHelper(ctx, profileID)
	if err != nil {
		uc.logger.Error("database error listing offers", "err", err)
		return nil, errors.Internal("internal server error")
	}

	dtos := make([]marketplace.OfferDTO, 0, len(offers))
	for i := range offers {
		dtos = append(dtos, offerDTO(&offers[i]))
	}
	return dtos, nil
}

// AcceptOffer is the acceptance workflow: pending -> accepted by the task
// owner while no sibling offer is accepted. Re-accepting an accepted offer
// returns the same payload.
func (uc *MarketplaceUsecase) AcceptOffer(ctx context.Context, cmd marketplace.AcceptOfferCommand) (*marketplace.OfferWithChatDTO, error) {
	offer, err := uc.repo.GetOfferByID(ctx, cmd.OfferID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, errors.ErrOfferNotFound
		}
		uc.logger.Error("database error fetching offer", "err", err)
		return nil, errors.Internal("internal server error")
	}

	if offer.Task == nil || offer.Task.OwnerID != cmd.RequesterID {
		return nil, errors.ErrNotTaskOwner
	}

	accepted, chatRow, err := uc.repo.AcceptOffer(ctx, cmd.OfferID)
	if err != nil {
		if errors.Is(err, repository.ErrSiblingAccepted) {
			return nil, errors.ErrSiblingOfferAccepted
		}
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, errors.ErrOfferNotFound
		}
		uc.logger.Errorf("error while accepting offer: %v", err)
		return nil, errors.Internal("internal server error")
	}

	uc.notifyOfferAccepted(ctx, offer, chatRow.ID)

	// The requester is the task owner, so the counterpart is the helper.
	profileName := ""
	if offer.Helper != nil {
		profileName = offer.Helper.Name
	}

	return &marketplace.OfferWithChatDTO{
		Offer: offerDTO(accepted),
		Chat: chat.ChatDTO{
			ID:          chatRow.ID,
			CreatedAt:   chatRow.CreatedAt,
			Offer:       accepted.ID,
			Service:     offer.Task.ServiceID,
			ProfileName: profileName,
		},
	}, nil
}

func (uc *MarketplaceUsecase) notifyOfferAccepted(ctx context.Context, offer *models.Offer, chatID uuid.UUID) {
	helper := offer.Helper
	if helper == nil {
		var err error
		helper, err = uc.profileRepo.GetProfileByID(ctx, offer.HelperID)
		if err != nil {
			uc.logger.Error("error fetching helper for notification", "err", err)
			return
		}
	}

	uc.sendPush(ctx, helper, "Your offer has been accepted!", map[string]string{
		"type":    "offer_accepted",
		"chat_id": chatID.String(),
	})
}

func offerDTO(offer *models.Offer) marketplace.OfferDTO {
	return marketplace.OfferDTO{
		ID:        offer.ID,
		Task:      offer.TaskID,
		Helper:    offer.HelperID,
		Status:    offer.Status,
		CreatedAt: offer.CreatedAt,
	}
}
