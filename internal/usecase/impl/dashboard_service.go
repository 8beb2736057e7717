package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "dashkeep/internal/delivery/context"
	"dashkeep/internal/domain/entity"
	domainerrors "dashkeep/internal/domain/errors"
	"dashkeep/internal/domain/repository"
	"dashkeep/internal/infra/metrics"
	"dashkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	metrics       *metrics.Metrics
	logger        *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	DashboardRepo repository.DashboardRepository
	Metrics       *metrics.Metrics `optional:"true"`
	Logger        *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		dashboardRepo: params.DashboardRepo,
		metrics:       params.Metrics,
		logger:        params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *dashboardService) Get(ctx context.Context, ownerID uuid.UUID) (*entity.Dashboard, error) {
	dashboard, created, err := srv.dashboardRepo.GetOrCreate(ctx, ownerID, entity.DefaultDashboardData())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get dashboard")
	}
	if created {
		srv.metrics.DashboardCreated(metrics.SourceLazy)
		srv.log(ctx).Info("Created default dashboard on first access", slog.Any("ownerID", ownerID))
	}

	return dashboard, nil
}

func (srv *dashboardService) Upsert(ctx context.Context, ownerID uuid.UUID, data json.RawMessage) (*entity.Dashboard, error) {
	if !entity.IsJSONObject(data) {
		return nil, domainerrors.ErrInvalidDashboard
	}

	dashboard, created, err := srv.dashboardRepo.Upsert(ctx, ownerID, data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to save dashboard")
	}
	if created {
		srv.metrics.DashboardCreated(metrics.SourceUpsert)
	}
	srv.log(ctx).Debug("Dashboard saved", slog.Any("ownerID", ownerID), slog.Bool("created", created))

	return dashboard, nil
}

func (srv *dashboardService) Delete(ctx context.Context, ownerID uuid.UUID) error {
	if err := srv.dashboardRepo.Delete(ctx, ownerID); err != nil {
		if errors.Is(err, repository.ErrDashboardNotFound) {
			return domainerrors.ErrDashboardNotFound
		}

		return errors.Wrap(err, "failed to delete dashboard")
	}
	srv.log(ctx).Info("Dashboard deleted", slog.Any("ownerID", ownerID))

	return nil
}
