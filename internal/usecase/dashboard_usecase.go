package usecase

import (
	"context"
	"encoding/json"

	"dashkeep/internal/domain/entity"

	"github.com/google/uuid"
)

// DashboardUsecase manages the single dashboard owned by an account.
// ownerID always comes from the authenticated identity.
type DashboardUsecase interface {
	// Get returns the dashboard, creating the default one on first access.
	Get(ctx context.Context, ownerID uuid.UUID) (*entity.Dashboard, error)
	Upsert(ctx context.Context, ownerID uuid.UUID, data json.RawMessage) (*entity.Dashboard, error)
	Delete(ctx context.Context, ownerID uuid.UUID) error
}
