package memory

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"dashkeep/internal/domain/entity"
	domainerrors "dashkeep/internal/domain/errors"
	"dashkeep/internal/domain/repository"

	"github.com/google/uuid"
)

type accountRepository struct {
	h handle
}

// NewAccountRepository returns the in-memory account repository.
func NewAccountRepository(store *Store) repository.AccountRepository {
	return &accountRepository{h: handle{store: store}}
}

func (repo *accountRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	var found *entity.Account
	err := repo.h.do(func(st *state) error {
		account, ok := st.accounts[id.String()]
		if !ok {
			return repository.ErrAccountNotFound
		}
		found = &account

		return nil
	})

	return found, err
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var id string
	_ = repo.h.do(func(st *state) error {
		id = st.emails[email]

		return nil
	})
	if id == "" {
		return nil, repository.ErrAccountNotFound
	}

	return repo.FindByID(ctx, uuid.MustParse(id))
}

func (repo *accountRepository) Create(_ context.Context, account *entity.Account) error {
	return repo.h.do(func(st *state) error {
		if _, taken := st.emails[account.Email]; taken {
			return domainerrors.ErrDuplicateEmail.WrapMessage("failed to create account")
		}

		now := time.Now().UTC()
		if account.CreatedAt.IsZero() {
			account.CreatedAt = now
		}
		account.UpdatedAt = now

		st.accounts[account.ID.String()] = *account
		st.emails[account.Email] = account.ID.String()

		return nil
	})
}

func (repo *accountRepository) List(_ context.Context) ([]*entity.Account, error) {
	var accounts []*entity.Account
	_ = repo.h.do(func(st *state) error {
		accounts = make([]*entity.Account, 0, len(st.accounts))
		for _, account := range st.accounts {
			a := account
			accounts = append(accounts, &a)
		}

		return nil
	})

	slices.SortFunc(accounts, func(a, b *entity.Account) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return accounts, nil
}

type profileRepository struct {
	h handle
}

// NewProfileRepository returns the in-memory profile repository.
func NewProfileRepository(store *Store) repository.ProfileRepository {
	return &profileRepository{h: handle{store: store}}
}

func (repo *profileRepository) FindByAccountID(_ context.Context, accountID uuid.UUID) (*entity.Profile, error) {
	var found *entity.Profile
	err := repo.h.do(func(st *state) error {
		profile, ok := st.profiles[accountID.String()]
		if !ok {
			return repository.ErrProfileNotFound
		}
		found = &profile

		return nil
	})

	return found, err
}

func (repo *profileRepository) FindByNationalID(ctx context.Context, nationalID string) (*entity.Profile, error) {
	var accountID string
	_ = repo.h.do(func(st *state) error {
		accountID = st.nationals[nationalID]

		return nil
	})
	if accountID == "" {
		return nil, repository.ErrProfileNotFound
	}

	return repo.FindByAccountID(ctx, uuid.MustParse(accountID))
}

func (repo *profileRepository) Create(_ context.Context, profile *entity.Profile) error {
	return repo.h.do(func(st *state) error {
		if _, taken := st.nationals[profile.NationalID]; taken {
			return domainerrors.ErrDuplicateNationalID.WrapMessage("failed to create profile")
		}
		if _, exists := st.profiles[profile.AccountID.String()]; exists {
			return domainerrors.ErrConflict.WrapMessage("profile already exists for account")
		}

		now := time.Now().UTC()
		if profile.CreatedAt.IsZero() {
			profile.CreatedAt = now
		}
		profile.UpdatedAt = now

		st.profiles[profile.AccountID.String()] = *profile
		st.nationals[profile.NationalID] = profile.AccountID.String()

		return nil
	})
}

type dashboardRepository struct {
	h handle
}

// NewDashboardRepository returns the in-memory dashboard repository.
func NewDashboardRepository(store *Store) repository.DashboardRepository {
	return &dashboardRepository{h: handle{store: store}}
}

// copyDashboard detaches the payload from the stored slice.
func copyDashboard(d entity.Dashboard) *entity.Dashboard {
	d.Data = append(json.RawMessage(nil), d.Data...)

	return &d
}

func (repo *dashboardRepository) GetOrCreate(_ context.Context, ownerID uuid.UUID, defaults json.RawMessage) (*entity.Dashboard, bool, error) {
	var (
		result  *entity.Dashboard
		created bool
	)
	err := repo.h.do(func(st *state) error {
		key := ownerID.String()
		if existing, ok := st.dashboards[key]; ok {
			result = copyDashboard(existing)

			return nil
		}

		dashboard := entity.NewDashboard(ownerID, append(json.RawMessage(nil), defaults...))
		st.dashboards[key] = *dashboard
		result = copyDashboard(*dashboard)
		created = true

		return nil
	})

	return result, created, err
}

func (repo *dashboardRepository) Upsert(_ context.Context, ownerID uuid.UUID, data json.RawMessage) (*entity.Dashboard, bool, error) {
	var (
		result  *entity.Dashboard
		created bool
	)
	err := repo.h.do(func(st *state) error {
		key := ownerID.String()
		payload := append(json.RawMessage(nil), data...)

		existing, ok := st.dashboards[key]
		if !ok {
			dashboard := entity.NewDashboard(ownerID, payload)
			st.dashboards[key] = *dashboard
			result = copyDashboard(*dashboard)
			created = true

			return nil
		}

		now := time.Now().UTC()
		existing.Data = payload
		existing.LastUpdated = now
		existing.UpdatedAt = now
		st.dashboards[key] = existing
		result = copyDashboard(existing)

		return nil
	})

	return result, created, err
}

func (repo *dashboardRepository) Delete(_ context.Context, ownerID uuid.UUID) error {
	return repo.h.do(func(st *state) error {
		key := ownerID.String()
		if _, ok := st.dashboards[key]; !ok {
			return repository.ErrDashboardNotFound
		}
		delete(st.dashboards, key)

		return nil
	})
}
