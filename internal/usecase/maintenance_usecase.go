package usecase

import (
	"context"

	"dashkeep/internal/domain/entity"
)

// BackfillReport summarizes a dashboard backfill run.
type BackfillReport struct {
	Accounts int
	Created  int
}

// AccountSummary is one line of the account listing. Profile is nil when missing.
type AccountSummary struct {
	Account *entity.Account
	Profile *entity.Profile
}

// MaintenanceUsecase backs the operator commands.
type MaintenanceUsecase interface {
	BackfillDashboards(ctx context.Context) (*BackfillReport, error)
	ListAccounts(ctx context.Context) ([]AccountSummary, error)
}
