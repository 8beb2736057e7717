package postgres

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	var all strings.Builder
	for _, entry := range entries {
		body, err := fs.ReadFile(migrationsFS, "migrations/"+entry.Name())
		require.NoError(t, err)

		content := string(body)
		assert.Contains(t, content, "-- +goose Up", entry.Name())
		assert.Contains(t, content, "-- +goose Down", entry.Name())
		all.WriteString(content)
	}

	// Repositories translate violations by these names.
	for _, constraint := range []string{"accounts_email_key", "profiles_national_id_key", "dashboards_owner_id_key"} {
		assert.Contains(t, all.String(), constraint)
	}
}
