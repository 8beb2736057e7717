package postgres

import (
	"context"

	"dashkeep/internal/domain/entity"
	"dashkeep/internal/domain/repository"
	"dashkeep/internal/errors"
	"dashkeep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns the GORM-backed profile repository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (repo *profileRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error) {
	return repo.findOne(ctx, "account_id = ?", accountID)
}

func (repo *profileRepository) FindByNationalID(ctx context.Context, nationalID string) (*entity.Profile, error) {
	return repo.findOne(ctx, "national_id = ?", nationalID)
}

func (repo *profileRepository) findOne(ctx context.Context, query string, arg any) (*entity.Profile, error) {
	var m model.ProfileModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return toProfileDomain(&m), nil
}

func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	m := fromProfileDomain(profile)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateWriteError(err, "failed to create profile")
	}

	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt

	return nil
}
