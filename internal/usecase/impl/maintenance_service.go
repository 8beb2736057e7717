package impl

import (
	"context"
	"log/slog"

	"dashkeep/internal/domain/entity"
	"dashkeep/internal/domain/repository"
	"dashkeep/internal/infra/metrics"
	"dashkeep/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type maintenanceService struct {
	accountRepo   repository.AccountRepository
	profileRepo   repository.ProfileRepository
	dashboardRepo repository.DashboardRepository
	metrics       *metrics.Metrics
	logger        *slog.Logger
}

// MaintenanceServiceParams holds dependencies for MaintenanceService, injected by Fx.
type MaintenanceServiceParams struct {
	fx.In

	AccountRepo   repository.AccountRepository
	ProfileRepo   repository.ProfileRepository
	DashboardRepo repository.DashboardRepository
	Metrics       *metrics.Metrics `optional:"true"`
	Logger        *slog.Logger
}

// NewMaintenanceService is the constructor for maintenanceService.
func NewMaintenanceService(params MaintenanceServiceParams) usecase.MaintenanceUsecase {
	return &maintenanceService{
		accountRepo:   params.AccountRepo,
		profileRepo:   params.ProfileRepo,
		dashboardRepo: params.DashboardRepo,
		metrics:       params.Metrics,
		logger:        params.Logger,
	}
}

// BackfillDashboards gives every account without a dashboard the default one.
// Running it twice creates nothing the second time.
func (srv *maintenanceService) BackfillDashboards(ctx context.Context) (*usecase.BackfillReport, error) {
	accounts, err := srv.accountRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	report := &usecase.BackfillReport{Accounts: len(accounts)}
	for _, account := range accounts {
		if err := ctx.Err(); err != nil {
			return report, errors.WithStack(err)
		}

		_, created, err := srv.dashboardRepo.GetOrCreate(ctx, account.ID, entity.DefaultDashboardData())
		if err != nil {
			return report, errors.Wrapf(err, "failed to backfill dashboard for account %s", account.ID)
		}
		if created {
			report.Created++
			srv.metrics.DashboardCreated(metrics.SourceBackfill)
			srv.logger.Info("Created missing dashboard", slog.Any("accountID", account.ID), slog.String("email", account.Email))
		}
	}

	return report, nil
}

func (srv *maintenanceService) ListAccounts(ctx context.Context) ([]usecase.AccountSummary, error) {
	accounts, err := srv.accountRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	summaries := make([]usecase.AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		profile, err := srv.profileRepo.FindByAccountID(ctx, account.ID)
		if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrapf(err, "failed to load profile for account %s", account.ID)
		}
		summaries = append(summaries, usecase.AccountSummary{Account: account, Profile: profile})
	}

	return summaries, nil
}
