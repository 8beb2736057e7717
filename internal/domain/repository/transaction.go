package repository

import "context"

// TransactionManager runs multi-step writes, such as registration, atomically.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. Repositories
	// obtained from the factory share the transaction; the injected ones do not.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	AccountRepo() AccountRepository
	ProfileRepo() ProfileRepository
	DashboardRepo() DashboardRepository
}
