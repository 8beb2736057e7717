//go:build integration

package postgres

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"dashkeep/internal/domain/entity"
	domainerrors "dashkeep/internal/domain/errors"
	"dashkeep/internal/domain/repository"
	"dashkeep/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("dashkeep_test"),
		tcpostgres.WithUsername("dashkeep"),
		tcpostgres.WithPassword("dashkeep_test_password"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}
	t.Cleanup(func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = testcontainers.TerminateContainer(container, testcontainers.StopContext(cleanupCtx))
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpg.Open(dsn), &gorm.Config{SkipDefaultTransaction: true, Logger: logger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, NewMigrator(sqlDB, slog.New(slog.NewTextHandler(io.Discard, nil))).Up(ctx))

	return db
}

func TestIntegration_UniqueConstraints(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	accounts := NewAccountRepository(db)
	profiles := NewProfileRepository(db)

	first := entity.NewAccount("ana@example.com", "hash")
	require.NoError(t, accounts.Create(ctx, first))
	require.NoError(t, profiles.Create(ctx, entity.NewProfile(first.ID, "Ana", "(11) 98765-4321", "12345678909")))

	err := accounts.Create(ctx, entity.NewAccount("ana@example.com", "hash"))
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail), "got %v", err)

	second := entity.NewAccount("bia@example.com", "hash")
	require.NoError(t, accounts.Create(ctx, second))
	err = profiles.Create(ctx, entity.NewProfile(second.ID, "Bia", "(11) 98765-4320", "12345678909"))
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateNationalID), "got %v", err)
}

func TestIntegration_ConcurrentGetOrCreate(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	owner := entity.NewAccount("owner@example.com", "hash")
	require.NoError(t, NewAccountRepository(db).Create(ctx, owner))

	repo := NewDashboardRepository(db)

	const callers = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		ids     = map[string]struct{}{}
		created int
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dashboard, wasCreated, err := repo.GetOrCreate(ctx, owner.ID, entity.DefaultDashboardData())
			assert.NoError(t, err)
			if err != nil {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			ids[dashboard.ID.String()] = struct{}{}
			if wasCreated {
				created++
			}
		}()
	}
	wg.Wait()

	assert.Len(t, ids, 1)
	assert.Equal(t, 1, created)
}

func TestIntegration_RegisterTransactionRollsBack(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	txManager := NewTransactionManager(db)

	account := entity.NewAccount("tx@example.com", "hash")
	err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.AccountRepo().Create(ctx, account); err != nil {
			return err
		}

		return errors.New("profile step failed")
	})
	require.Error(t, err)

	_, err = NewAccountRepository(db).FindByEmail(ctx, "tx@example.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}
