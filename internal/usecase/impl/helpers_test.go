package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"dashkeep/internal/domain/repository"
	mockRepo "dashkeep/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction makes txManager run the callback against a factory whose
// repositories are the given mocks, and return whatever the callback returns.
func expectTransaction(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	accountRepo *mockRepo.MockAccountRepository,
	profileRepo *mockRepo.MockProfileRepository,
	dashboardRepo *mockRepo.MockDashboardRepository,
) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			if accountRepo != nil {
				factory.EXPECT().AccountRepo().Return(accountRepo).Maybe()
			}
			if profileRepo != nil {
				factory.EXPECT().ProfileRepo().Return(profileRepo).Maybe()
			}
			if dashboardRepo != nil {
				factory.EXPECT().DashboardRepo().Return(dashboardRepo).Maybe()
			}

			return fn(factory)
		})
}
