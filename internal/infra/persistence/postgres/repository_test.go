package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"dashkeep/internal/domain/entity"
	domainerrors "dashkeep/internal/domain/errors"
	"dashkeep/internal/domain/repository"
	"dashkeep/internal/errors"
	"dashkeep/internal/infra/persistence/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	accountColumns   = []string{"id", "email", "password_hash", "created_at", "updated_at"}
	profileColumns   = []string{"account_id", "full_name", "phone", "national_id", "created_at", "updated_at"}
	dashboardColumns = []string{"id", "owner_id", "data", "last_updated", "created_at", "updated_at"}
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpg.New(gormpg.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestAccountRepository_FindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(accountColumns).AddRow(id.String(), "ana@example.com", "hash", now, now))

	account, err := repo.FindByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, account.ID)
	assert.Equal(t, "ana@example.com", account.Email)
	assert.Equal(t, "hash", account.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(accountColumns))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectExec(`INSERT INTO "accounts"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: model.ConstraintAccountEmail})

	err := repo.Create(context.Background(), entity.NewAccount("ana@example.com", "hash"))
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail), "got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "accounts" ORDER BY created_at ASC`).
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow(uuid.NewString(), "a@example.com", "h1", now, now).
			AddRow(uuid.NewString(), "b@example.com", "h2", now, now))

	accounts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "a@example.com", accounts[0].Email)
	assert.Equal(t, "b@example.com", accounts[1].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_Create_DuplicateNationalID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectExec(`INSERT INTO "profiles"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: model.ConstraintProfileNationalID})

	err := repo.Create(context.Background(), entity.NewProfile(uuid.New(), "Ana Souza", "(11) 98765-4321", "12345678909"))
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateNationalID), "got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_FindByNationalID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)
	accountID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE national_id = \$1`).
		WillReturnRows(sqlmock.NewRows(profileColumns).AddRow(accountID.String(), "Ana Souza", "(11) 98765-4321", "12345678909", now, now))

	profile, err := repo.FindByNationalID(context.Background(), "12345678909")
	require.NoError(t, err)
	assert.Equal(t, accountID, profile.AccountID)
	assert.Equal(t, "Ana Souza", profile.FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepository_GetOrCreate(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		wantCreated  bool
	}{
		{name: "inserted", rowsAffected: 1, wantCreated: true},
		{name: "already present", rowsAffected: 0, wantCreated: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewDashboardRepository(db)
			ownerID := uuid.New()
			dashboardID := uuid.New()
			now := time.Now().UTC()

			mock.ExpectExec(`INSERT INTO "dashboards" .* ON CONFLICT \("owner_id"\) DO NOTHING`).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
			mock.ExpectQuery(`SELECT \* FROM "dashboards" WHERE owner_id = \$1`).
				WillReturnRows(sqlmock.NewRows(dashboardColumns).
					AddRow(dashboardID.String(), ownerID.String(), []byte(`{"metas":[]}`), now, now, now))

			dashboard, created, err := repo.GetOrCreate(context.Background(), ownerID, entity.DefaultDashboardData())
			require.NoError(t, err)
			assert.Equal(t, tt.wantCreated, created)
			assert.Equal(t, dashboardID, dashboard.ID)
			assert.Equal(t, ownerID, dashboard.OwnerID)
			assert.JSONEq(t, `{"metas":[]}`, string(dashboard.Data))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDashboardRepository_Upsert_UpdatesExisting(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDashboardRepository(db)
	ownerID := uuid.New()
	existingID := uuid.New()
	now := time.Now().UTC()
	payload := json.RawMessage(`{"metas":[{"nome":"viagem"}]}`)

	mock.ExpectExec(`INSERT INTO "dashboards" .* ON CONFLICT \("owner_id"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "dashboards" WHERE owner_id = \$1`).
		WillReturnRows(sqlmock.NewRows(dashboardColumns).
			AddRow(existingID.String(), ownerID.String(), []byte(payload), now, now.Add(-time.Hour), now))

	dashboard, created, err := repo.Upsert(context.Background(), ownerID, payload)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existingID, dashboard.ID)
	assert.JSONEq(t, string(payload), string(dashboard.Data))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDashboardRepository(db)
	ownerID := uuid.New()

	mock.ExpectExec(`DELETE FROM "dashboards" WHERE owner_id = \$1`).
		WithArgs(ownerID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "dashboards" WHERE owner_id = \$1`).
		WithArgs(ownerID.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), ownerID))
	assert.ErrorIs(t, repo.Delete(context.Background(), ownerID), repository.ErrDashboardNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "accounts"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.AccountRepo().Create(ctx, entity.NewAccount("ana@example.com", "hash"))
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectRollback()

	sentinel := errors.New("business failure")
	err = txManager.Execute(ctx, func(repository.RepositoryFactory) error {
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	assert.NoError(t, mock.ExpectationsWereMet())
}
