package postgres

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"
	"sync"
	"time"

	"dashkeep/internal/errors"

	"github.com/pressly/goose/v3"
)

const migrationTimeout = time.Minute

//go:embed migrations/*.sql
var migrationsFS embed.FS

// goose keeps its dialect and base FS in package globals.
var gooseSetup sync.Once

// Migrator applies the embedded schema migrations with goose.
type Migrator struct {
	db  *sql.DB
	log *slog.Logger
}

// NewMigrator wraps an open database handle.
func NewMigrator(db *sql.DB, log *slog.Logger) *Migrator {
	if log == nil {
		log = slog.Default()
	}

	return &Migrator{db: db, log: log}
}

func (m *Migrator) setup() error {
	var err error
	gooseSetup.Do(func() {
		goose.SetBaseFS(migrationsFS)
		err = goose.SetDialect("postgres")
	})

	return errors.Wrap(err, "configure goose")
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) error {
	if err := m.setup(); err != nil {
		return err
	}

	runCtx, cancel := context.WithTimeout(ctx, migrationTimeout)
	defer cancel()

	m.log.Info("Applying migrations")
	if err := goose.UpContext(runCtx, m.db, "migrations"); err != nil {
		return errors.Wrap(err, "apply migrations")
	}

	version, err := goose.GetDBVersionContext(runCtx, m.db)
	if err != nil {
		return errors.Wrap(err, "read migration version")
	}
	m.log.Info("Migrations applied", slog.Int64("version", version))

	return nil
}

// Down rolls back the latest migration, or down to targetVersion when it is positive.
func (m *Migrator) Down(ctx context.Context, targetVersion int64) error {
	if err := m.setup(); err != nil {
		return err
	}

	runCtx, cancel := context.WithTimeout(ctx, migrationTimeout)
	defer cancel()

	if targetVersion > 0 {
		m.log.Info("Rolling back migrations", slog.Int64("target", targetVersion))

		return errors.Wrapf(goose.DownToContext(runCtx, m.db, "migrations", targetVersion), "rollback to version %d", targetVersion)
	}

	m.log.Info("Rolling back latest migration")

	return errors.Wrap(goose.DownContext(runCtx, m.db, "migrations"), "rollback latest migration")
}

// Status logs applied and pending migrations.
func (m *Migrator) Status(ctx context.Context) error {
	if err := m.setup(); err != nil {
		return err
	}

	return errors.Wrap(goose.StatusContext(ctx, m.db, "migrations"), "migration status")
}
