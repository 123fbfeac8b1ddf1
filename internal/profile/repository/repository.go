package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	marketplaceModels "github.com/beNeighb/backend/internal/marketplace/model"
	models "github.com/beNeighb/backend/internal/profile/model"
	"github.com/beNeighb/backend/pkg/logger"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrBlockExists     = errors.New("block already exists")
)

type ProfileRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewProfileRepository(db *bun.DB, logger logger.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *ProfileRepository) CreateProfile(ctx context.Context, profile *models.Profile) error {
	_, err := r.db.NewInsert().Model(profile).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "profileRepo.CreateProfile.Insert: ")
	}
	return nil
}

func (r *ProfileRepository) GetProfileByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	profile := new(models.Profile)
	err := r.db.NewSelect().Model(profile).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, errors.Wrap(err, "profileRepo.GetProfileByID.Scan: ")
	}
	return profile, nil
}

// DeleteProfile removes the profile together with every offer it is a party
// to, on either side. Tasks are kept and lose their owner via FK.
func (r *ProfileRepository) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		offerIDs := tx.NewSelect().
			Model((*marketplaceModels.Offer)(nil)).
			Column("offer.id").
			Join("JOIN tasks AS task ON task.id = offer.task_id").
			Where("offer.helper_id = ? OR task.owner_id = ?", id, id)

		_, err := tx.NewDelete().
			Model((*marketplaceModels.Offer)(nil)).
			Where("id IN (?)", offerIDs).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "profileRepo.DeleteProfile.DeleteOffers: ")
		}

		res, err := tx.NewDelete().
			Model((*models.Profile)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "profileRepo.DeleteProfile.Delete: ")
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrProfileNotFound
		}
		return nil
	})
}

func (r *ProfileRepository) UpdateFCMToken(ctx context.Context, profileID uuid.UUID, token *string) error {
	_, err := r.db.NewUpdate().
		Model((*models.Profile)(nil)).
		Set("fcm_token = ?", token).
		Set("updated_at = current_timestamp").
		Where("id = ?", profileID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "profileRepo.UpdateFCMToken.Update: ")
	}
	return nil
}

func (r *ProfileRepository) ListReachableProfilesExcluding(ctx context.Context, excluded uuid.UUID) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.NewSelect().
		Model(&profiles).
		Where("fcm_token IS NOT NULL AND fcm_token != ''").
		Where("id != ?", excluded).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "profileRepo.ListReachableProfilesExcluding.Scan: ")
	}
	return profiles, nil
}

// CreateBlock inserts the block and deletes every offer between the pair in
// both directions. Assignments, chats and messages fall with the offers via
// ON DELETE CASCADE; tasks are untouched.
func (r *ProfileRepository) CreateBlock(ctx context.Context, blocking, blocked uuid.UUID) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*models.Block)(nil)).
			Where("blocking_profile_id = ? AND blocked_profile_id = ?", blocking, blocked).
			Exists(ctx)
		if err != nil {
			return errors.Wrap(err, "profileRepo.CreateBlock.Exists: ")
		}
		if exists {
			return ErrBlockExists
		}

		block := &models.Block{
			BlockingProfileID: blocking,
			BlockedProfileID:  blocked,
		}
		if _, err := tx.NewInsert().Model(block).Returning("*").Exec(ctx); err != nil {
			return errors.Wrap(err, "profileRepo.CreateBlock.Insert: ")
		}

		offerIDs := tx.NewSelect().
			Model((*marketplaceModels.Offer)(nil)).
			Column("offer.id").
			Join("JOIN tasks AS task ON task.id = offer.task_id").
			Where("(task.owner_id = ? AND offer.helper_id = ?) OR (task.owner_id = ? AND offer.helper_id = ?)",
				blocking, blocked, blocked, blocking)

		_, err = tx.NewDelete().
			Model((*marketplaceModels.Offer)(nil)).
			Where("id IN (?)", offerIDs).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "profileRepo.CreateBlock.DeleteOffers: ")
		}
		return nil
	})
}

func (r *ProfileRepository) BlockExistsBetween(ctx context.Context, a, b uuid.UUID) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.Block)(nil)).
		Where("(blocking_profile_id = ? AND blocked_profile_id = ?) OR (blocking_profile_id = ? AND blocked_profile_id = ?)",
			a, b, b, a).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "profileRepo.BlockExistsBetween.Exists: ")
	}
	return exists, nil
}
