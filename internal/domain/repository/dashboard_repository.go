package repository

import (
	"context"
	"encoding/json"

	"dashkeep/internal/domain/entity"
	"dashkeep/internal/errors"

	"github.com/google/uuid"
)

// ErrDashboardNotFound is returned when the owner has no dashboard.
var ErrDashboardNotFound = errors.New("dashboard not found")

// DashboardRepository stores at most one dashboard per owner.
// Implementations must make GetOrCreate atomic: concurrent first calls for the
// same owner all observe the same single record.
type DashboardRepository interface {
	// GetOrCreate returns the owner's dashboard, inserting one holding defaults
	// when none exists. created reports whether this call inserted it.
	GetOrCreate(ctx context.Context, ownerID uuid.UUID, defaults json.RawMessage) (dashboard *entity.Dashboard, created bool, err error)

	// Upsert replaces the owner's payload, creating the record if needed.
	// created reports whether this call inserted it.
	Upsert(ctx context.Context, ownerID uuid.UUID, data json.RawMessage) (dashboard *entity.Dashboard, created bool, err error)

	// Delete returns ErrDashboardNotFound when nothing was removed.
	Delete(ctx context.Context, ownerID uuid.UUID) error
}
