package main

import (
	"bytes"
	"context"
	"testing"

	"dashkeep/config"
	"dashkeep/internal/domain/entity"
	mockUsecase "dashkeep/internal/mocks/usecase"
	"dashkeep/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRunBackfill(t *testing.T) {
	svc := mockUsecase.NewMockMaintenanceUsecase(t)
	svc.EXPECT().BackfillDashboards(mock.Anything).Return(&usecase.BackfillReport{Accounts: 3, Created: 1}, nil).Once()

	var out bytes.Buffer
	require.NoError(t, runBackfill(context.Background(), svc, &out))
	assert.Equal(t, "accounts scanned: 3, dashboards created: 1\n", out.String())
}

func TestRunBackfill_Error(t *testing.T) {
	svc := mockUsecase.NewMockMaintenanceUsecase(t)
	svc.EXPECT().BackfillDashboards(mock.Anything).Return(nil, errors.New("db down")).Once()

	assert.EqualError(t, runBackfill(context.Background(), svc, &bytes.Buffer{}), "db down")
}

func TestRunList(t *testing.T) {
	withProfile := entity.NewAccount("ana@x.com", "hash")
	orphan := entity.NewAccount("orphan@x.com", "hash")

	svc := mockUsecase.NewMockMaintenanceUsecase(t)
	svc.EXPECT().ListAccounts(mock.Anything).Return([]usecase.AccountSummary{
		{Account: withProfile, Profile: entity.NewProfile(withProfile.ID, "Ana Souza", "(11) 98765-4321", "11111111111")},
		{Account: orphan},
	}, nil).Once()

	var out bytes.Buffer
	require.NoError(t, runList(context.Background(), svc, &out))

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[1]), "Ana Souza")
	assert.Contains(t, string(lines[1]), "11111111111")
	assert.Contains(t, string(lines[2]), "orphan@x.com")
	assert.Contains(t, string(lines[2]), "-")
}

func TestRunMigrate_RequiresPostgres(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.StorageMongo

	err := runMigrate(context.Background(), cfg, nil, "up", 0)
	assert.ErrorContains(t, err, "postgres only")
}

func TestWithMaintenance_RejectsMemory(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = config.StorageMemory

	err := withMaintenance(context.Background(), cfg, nil, func(maintenance) error {
		t.Fatal("service must not be built")

		return nil
	})
	assert.ErrorContains(t, err, "keeps no data")
}
