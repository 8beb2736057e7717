// Package memory implements the persistence layer in process memory.
// Data is lost on restart; it backs local development and handler tests.
package memory

import (
	"context"
	"maps"
	"sync"

	"dashkeep/internal/domain/entity"
	"dashkeep/internal/domain/repository"
)

type state struct {
	accounts   map[string]entity.Account // keyed by id
	emails     map[string]string         // email -> account id
	profiles   map[string]entity.Profile // keyed by account id
	nationals  map[string]string         // national id -> account id
	dashboards map[string]entity.Dashboard
}

func newState() *state {
	return &state{
		accounts:   make(map[string]entity.Account),
		emails:     make(map[string]string),
		profiles:   make(map[string]entity.Profile),
		nationals:  make(map[string]string),
		dashboards: make(map[string]entity.Dashboard),
	}
}

func (s *state) clone() *state {
	return &state{
		accounts:   maps.Clone(s.accounts),
		emails:     maps.Clone(s.emails),
		profiles:   maps.Clone(s.profiles),
		nationals:  maps.Clone(s.nationals),
		dashboards: maps.Clone(s.dashboards),
	}
}

// Store holds every collection behind one mutex.
type Store struct {
	mu    sync.Mutex
	state *state
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{state: newState()}
}

// handle is what a repository operates on. Inside a transaction the store
// lock is already held.
type handle struct {
	store  *Store
	locked bool
}

func (h handle) do(fn func(st *state) error) error {
	if !h.locked {
		h.store.mu.Lock()
		defer h.store.mu.Unlock()
	}

	return fn(h.store.state)
}

type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	h handle
}

func (f *repositoryFactory) AccountRepo() repository.AccountRepository {
	return &accountRepository{h: f.h}
}

func (f *repositoryFactory) ProfileRepo() repository.ProfileRepository {
	return &profileRepository{h: f.h}
}

func (f *repositoryFactory) DashboardRepo() repository.DashboardRepository {
	return &dashboardRepository{h: f.h}
}

// NewTransactionManager serializes transactions on the store lock and
// restores a snapshot when fn fails.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	snapshot := tm.store.state.clone()
	committed := false
	defer func() {
		if !committed {
			tm.store.state = snapshot
		}
	}()

	if err := fn(&repositoryFactory{h: handle{store: tm.store, locked: true}}); err != nil {
		return err
	}
	committed = true

	return nil
}
