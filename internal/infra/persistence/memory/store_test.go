package memory

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"dashkeep/internal/domain/entity"
	domainerrors "dashkeep/internal/domain/errors"
	"dashkeep/internal/domain/repository"
	"dashkeep/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_UniqueEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(NewStore())

	account := entity.NewAccount("Ana@Example.com", "hash")
	require.NoError(t, repo.Create(ctx, account))

	err := repo.Create(ctx, entity.NewAccount("ana@example.com", "other"))
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)

	found, err := repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, account.ID, found.ID)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	accounts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestProfileRepository_UniqueNationalID(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(NewStore())

	require.NoError(t, repo.Create(ctx, entity.NewProfile(uuid.New(), "Ana", "(11) 98765-4321", "12345678901")))

	err := repo.Create(ctx, entity.NewProfile(uuid.New(), "Bia", "(11) 91234-5678", "12345678901"))
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateNationalID)

	_, err = repo.FindByNationalID(ctx, "00000000000")
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestDashboardRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewDashboardRepository(NewStore())
	owner := uuid.New()

	first, created, err := repo.GetOrCreate(ctx, owner, json.RawMessage(`{"a":1}`))
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := repo.GetOrCreate(ctx, owner, json.RawMessage(`{"b":2}`))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)
	assert.JSONEq(t, `{"a":1}`, string(again.Data))

	updated, created, err := repo.Upsert(ctx, owner, json.RawMessage(`{"c":3}`))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, updated.ID)
	assert.JSONEq(t, `{"c":3}`, string(updated.Data))
	assert.False(t, updated.LastUpdated.Before(first.LastUpdated))

	require.NoError(t, repo.Delete(ctx, owner))
	assert.ErrorIs(t, repo.Delete(ctx, owner), repository.ErrDashboardNotFound)

	recreated, created, err := repo.Upsert(ctx, owner, json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, first.ID, recreated.ID)
}

func TestDashboardRepository_ReturnedDataIsDetached(t *testing.T) {
	ctx := context.Background()
	repo := NewDashboardRepository(NewStore())
	owner := uuid.New()

	d, _, err := repo.GetOrCreate(ctx, owner, json.RawMessage(`{"a":1}`))
	require.NoError(t, err)
	d.Data[1] = 'X'

	again, _, err := repo.GetOrCreate(ctx, owner, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(again.Data))
}

func TestDashboardRepository_ConcurrentGetOrCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewDashboardRepository(NewStore())
	owner := uuid.New()

	const workers = 32
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		ids     = make(map[uuid.UUID]struct{})
		creates int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, created, err := repo.GetOrCreate(ctx, owner, entity.DefaultDashboardData())
			assert.NoError(t, err)

			mu.Lock()
			defer mu.Unlock()
			ids[d.ID] = struct{}{}
			if created {
				creates++
			}
		}()
	}
	wg.Wait()

	assert.Len(t, ids, 1)
	assert.Equal(t, 1, creates)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	txManager := NewTransactionManager(store)
	boom := errors.New("boom")

	account := entity.NewAccount("ana@example.com", "hash")
	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.AccountRepo().Create(ctx, account); err != nil {
			return err
		}
		if _, _, err := factory.DashboardRepo().GetOrCreate(ctx, account.ID, entity.DefaultDashboardData()); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = NewAccountRepository(store).FindByID(ctx, account.ID)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	assert.ErrorIs(t, NewDashboardRepository(store).Delete(ctx, account.ID), repository.ErrDashboardNotFound)
}

func TestTransactionManager_Commits(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	account := entity.NewAccount("ana@example.com", "hash")
	err := NewTransactionManager(store).Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.AccountRepo().Create(ctx, account)
	})
	require.NoError(t, err)

	found, err := NewAccountRepository(store).FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", found.Email)
}
