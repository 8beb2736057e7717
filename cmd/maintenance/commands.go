package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"
	"time"

	"dashkeep/config"
	"dashkeep/internal/domain/repository"
	mongostore "dashkeep/internal/infra/persistence/mongo"
	"dashkeep/internal/infra/persistence/postgres"
	"dashkeep/internal/usecase"
	"dashkeep/internal/usecase/impl"

	"github.com/pkg/errors"
)

type maintenance = usecase.MaintenanceUsecase

func runMigrate(ctx context.Context, cfg *config.Config, logger *slog.Logger, action string, to int64) error {
	if cfg.Storage.Driver != config.StoragePostgres {
		return errors.Errorf("migrations apply to postgres only, storage driver is %q", cfg.Storage.Driver)
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	migrator := postgres.NewMigrator(sqlDB, logger)
	switch action {
	case "up":
		return migrator.Up(ctx)
	case "down":
		return migrator.Down(ctx, to)
	case "status":
		return migrator.Status(ctx)
	default:
		return errors.Errorf("unknown migrate action %q, want up, down or status", action)
	}
}

// withMaintenance wires the maintenance service against the configured store
// and releases the connection once fn returns.
func withMaintenance(ctx context.Context, cfg *config.Config, logger *slog.Logger, fn func(maintenance) error) error {
	var (
		accounts   repository.AccountRepository
		profiles   repository.ProfileRepository
		dashboards repository.DashboardRepository
	)

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := postgres.Open(cfg, logger)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
		}
		defer sqlDB.Close()

		accounts = postgres.NewAccountRepository(db)
		profiles = postgres.NewProfileRepository(db)
		dashboards = postgres.NewDashboardRepository(db)
	case config.StorageMongo:
		db, err := mongostore.Open(cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := db.Client().Disconnect(context.Background()); err != nil {
				logger.Warn("Failed to disconnect MongoDB", slog.Any("error", err))
			}
		}()
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			return err
		}

		accounts = mongostore.NewAccountRepository(db)
		profiles = mongostore.NewProfileRepository(db)
		dashboards = mongostore.NewDashboardRepository(db)
	default:
		return errors.Errorf("storage driver %q keeps no data between runs", cfg.Storage.Driver)
	}

	return fn(impl.NewMaintenanceService(impl.MaintenanceServiceParams{
		AccountRepo:   accounts,
		ProfileRepo:   profiles,
		DashboardRepo: dashboards,
		Logger:        logger,
	}))
}

func runBackfill(ctx context.Context, svc maintenance, out io.Writer) error {
	report, err := svc.BackfillDashboards(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "accounts scanned: %d, dashboards created: %d\n", report.Accounts, report.Created)

	return errors.WithStack(err)
}

func runList(ctx context.Context, svc maintenance, out io.Writer) error {
	summaries, err := svc.ListAccounts(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tNAME\tCPF\tCREATED")
	for _, s := range summaries {
		name, nationalID := "-", "-"
		if s.Profile != nil {
			name, nationalID = s.Profile.FullName, s.Profile.NationalID
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			s.Account.ID, s.Account.Email, name, nationalID, s.Account.CreatedAt.Format(time.RFC3339))
	}

	return errors.WithStack(w.Flush())
}
