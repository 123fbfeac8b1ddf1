package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	chatModels "github.com/beNeighb/backend/internal/chat/model"
	models "github.com/beNeighb/backend/internal/marketplace/model"
	"github.com/beNeighb/backend/pkg/logger"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrOfferNotFound   = errors.New("offer not found")
	ErrSiblingAccepted = errors.New("another offer is already accepted for this task")
)

type MarketplaceRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewMarketplaceRepository(db *bun.DB, logger logger.Logger) *MarketplaceRepository {
	return &MarketplaceRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *MarketplaceRepository) CreateService(ctx context.Context, service *models.Service) error {
	_, err := r.db.NewInsert().Model(service).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "marketplaceRepo.CreateService.Insert: ")
	}
	return nil
}

func (r *MarketplaceRepository) GetServiceByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	service := new(models.Service)
	err := r.db.NewSelect().Model(service).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, errors.Wrap(err, "marketplaceRepo.GetServiceByID.Scan: ")
	}
	return service, nil
}

func (r *MarketplaceRepository) CreateTask(ctx context.Context, task *models.Task) error {
	_, err := r.db.NewInsert().Model(task).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "marketplaceRepo.CreateTask.Insert: ")
	}
	return nil
}

func (r *MarketplaceRepository) GetTaskByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	task := new(models.Task)
	err := r.db.NewSelect().
		Model(task).
		Relation("Service").
		Relation("Offers").
		Relation("Offers.Helper").
		Where("task.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, errors.Wrap(err, "marketplaceRepo.GetTaskByID.Scan: ")
	}
	return task, nil
}

func (r *MarketplaceRepository) ListTasksByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.NewSelect().
		Model(&tasks).
		Relation("Offers").
		Relation("Offers.Helper").
		Where("task.owner_id = ?", ownerID).
		Order("task.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "marketplaceRepo.ListTasksByOwner.Scan: ")
	}
	return tasks, nil
}

func (r *MarketplaceRepository) ListTasksExcludingOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.NewSelect().
		Model(&tasks).
		Relation("Offers").
		Relation("Offers.Helper").
		Where("task.owner_id IS NULL OR task.owner_id != ?", ownerID).
		Order("task.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "marketplaceRepo.ListTasksExcludingOwner.Scan: ")
	}
	return tasks, nil
}

func (r *MarketplaceRepository) ListTasksWithOfferBy(ctx context.Context, helperID uuid.UUID) ([]models.Task, error) {
	taskIDs := r.db.NewSelect().
		Model((*models.Offer)(nil)).
		Column("offer.task_id").
		Where("offer.helper_id = ?", helperID)

	var tasks []models.Task
	err := r.db.NewSelect().
		Model(&tasks).
		Relation("Offers").
		Relation("Offers.Helper").
		Where("task.id IN (?)", taskIDs).
		Order("task.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "marketplaceRepo.ListTasksWithOfferBy.Scan: ")
	}
	return tasks, nil
}

func (r *MarketplaceRepository) CreateOffer(ctx context.Context, offer *models.Offer) error {
	_, err := r.db.NewInsert().Model(offer).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "marketplaceRepo.CreateOffer.Insert: ")
	}
	return nil
}

func (r *MarketplaceRepository) GetOfferByID(ctx context.Context, id uuid.UUID) (*models.Offer, error) {
	offer := new(models.Offer)
	err := r.db.NewSelect().
		Model(offer).
		Relation("Helper").
		Relation("Task").
		Relation("Task.Owner").
		Relation("Task.Service").
		Where("offer.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOfferNotFound
		}
		return nil, errors.Wrap(err, "marketplaceRepo.GetOfferByID.Scan: ")
	}
	return offer, nil
}

func (r *MarketplaceRepository) OfferExistsForTaskAndHelper(ctx context.Context, taskID, helperID uuid.UUID) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.Offer)(nil)).
		Where("task_id = ? AND helper_id = ?", taskID, helperID).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "marketplaceRepo.OfferExistsForTaskAndHelper.Exists: ")
	}
	return exists, nil
}

func (r *MarketplaceRepository) ListOffersByHelper(ctx context.Context, helperID uuid.UUID) ([]models.Offer, error) {
	var offers []models.Offer
	err := r.db.NewSelect().
		Model(&offers).
		Where("helper_id = ?", helperID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "marketplaceRepo.ListOffersByHelper.Scan: ")
	}
	return offers, nil
}

// AcceptOffer runs the whole transition in one transaction so that two
// concurrent accepts on sibling offers cannot both succeed. The task row is
// the single lock point: every accept for the same task serializes on it
// before the sibling check.
func (r *MarketplaceRepository) AcceptOffer(ctx context.Context, offerID uuid.UUID) (*models.Offer, *chatModels.Chat, error) {
	var offer models.Offer
	var chat chatModels.Chat

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		err := tx.NewSelect().
			Model(&offer).
			Where("id = ?", offerID).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrOfferNotFound
			}
			return errors.Wrap(err, "acceptOffer.selectOffer")
		}

		_, err = tx.NewSelect().
			Model((*models.Task)(nil)).
			Column("id").
			Where("id = ?", offer.TaskID).
			For("UPDATE").
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "acceptOffer.lockTask")
		}

		// Reread under the lock: the status may have flipped while waiting.
		err = tx.NewSelect().Model(&offer).Where("id = ?", offerID).Scan(ctx)
		if err != nil {
			return errors.Wrap(err, "acceptOffer.rereadOffer")
		}

		siblingAccepted, err := tx.NewSelect().
			Model((*models.Offer)(nil)).
			Where("task_id = ? AND id != ? AND status = ?", offer.TaskID, offer.ID, models.OfferStatusAccepted).
			Exists(ctx)
		if err != nil {
			return errors.Wrap(err, "acceptOffer.siblingCheck")
		}
		if siblingAccepted {
			return ErrSiblingAccepted
		}

		if offer.Status != models.OfferStatusAccepted {
			_, err = tx.NewUpdate().
				Model(&offer).
				Set("status = ?", models.OfferStatusAccepted).
				WherePK().
				Exec(ctx)
			if err != nil {
				return errors.Wrap(err, "acceptOffer.updateStatus")
			}
			offer.Status = models.OfferStatusAccepted
		}

		assignment := &models.Assignment{OfferID: offer.ID}
		_, err = tx.NewInsert().
			Model(assignment).
			On("CONFLICT (offer_id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "acceptOffer.insertAssignment")
		}

		_, err = tx.NewInsert().
			Model(&chatModels.Chat{OfferID: offer.ID}).
			On("CONFLICT (offer_id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "acceptOffer.insertChat")
		}

		// Reselect instead of Returning("*"): DO NOTHING returns no row on
		// the idempotent second accept.
		err = tx.NewSelect().
			Model(&chat).
			Where("offer_id = ?", offer.ID).
			Scan(ctx)
		if err != nil {
			return errors.Wrap(err, "acceptOffer.selectChat")
		}
		return nil
	})

	if err != nil {
		return nil, nil, err
	}
	return &offer, &chat, nil
}
