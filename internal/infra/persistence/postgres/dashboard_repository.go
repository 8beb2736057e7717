package postgres

import (
	"context"
	"encoding/json"

	"dashkeep/internal/domain/entity"
	"dashkeep/internal/domain/repository"
	"dashkeep/internal/errors"
	"dashkeep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ownerConflict = []clause.Column{{Name: "owner_id"}}

type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository returns the GORM-backed dashboard repository.
func NewDashboardRepository(db *gorm.DB) repository.DashboardRepository {
	return &dashboardRepository{db: db}
}

// GetOrCreate relies on INSERT ... ON CONFLICT DO NOTHING, so racing callers
// converge on the row that won the unique constraint.
func (repo *dashboardRepository) GetOrCreate(ctx context.Context, ownerID uuid.UUID, defaults json.RawMessage) (*entity.Dashboard, bool, error) {
	m := fromDashboardDomain(entity.NewDashboard(ownerID, defaults))

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: ownerConflict, DoNothing: true}).
		Create(m)
	if result.Error != nil {
		return nil, false, translateWriteError(result.Error, "failed to create dashboard")
	}

	dashboard, err := repo.findByOwner(ctx, ownerID)
	if err != nil {
		return nil, false, err
	}

	return dashboard, result.RowsAffected == 1, nil
}

func (repo *dashboardRepository) Upsert(ctx context.Context, ownerID uuid.UUID, data json.RawMessage) (*entity.Dashboard, bool, error) {
	candidate := entity.NewDashboard(ownerID, data)
	m := fromDashboardDomain(candidate)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   ownerConflict,
			DoUpdates: clause.AssignmentColumns([]string{"data", "last_updated", "updated_at"}),
		}).
		Create(m).Error
	if err != nil {
		return nil, false, translateWriteError(err, "failed to upsert dashboard")
	}

	dashboard, err := repo.findByOwner(ctx, ownerID)
	if err != nil {
		return nil, false, err
	}

	return dashboard, dashboard.ID == candidate.ID, nil
}

func (repo *dashboardRepository) Delete(ctx context.Context, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&model.DashboardModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete dashboard")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDashboardNotFound
	}

	return nil
}

func (repo *dashboardRepository) findByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Dashboard, error) {
	var m model.DashboardModel
	if err := repo.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDashboardNotFound
		}

		return nil, errors.Wrap(err, "failed to find dashboard")
	}

	return toDashboardDomain(&m), nil
}
