package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"cardfinder/internal/config"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

const migrationsPath = "migrations"

var (
	maxRetries    = 5
	retryInterval = 200 * time.Millisecond
)

// ErrMigrationsDisabled is returned when SQL migrations are switched off
var ErrMigrationsDisabled = errors.New("sql migrations disabled")

// MigrationRunner applies the embedded SQL migrations to a sqlite database
type MigrationRunner struct {
	db             *sql.DB
	migrations     fs.FS
	migrationsPath string
	maxRetries     int
	retryInterval  time.Duration
}

// NewMigrationRunner creates a new migration runner
func NewMigrationRunner(db *sql.DB) *MigrationRunner {
	return &MigrationRunner{
		db:             db,
		migrations:     embeddedMigrations,
		migrationsPath: migrationsPath,
		maxRetries:     maxRetries,
		retryInterval:  retryInterval,
	}
}

// WithRetry overrides the readiness probe schedule
func (mr *MigrationRunner) WithRetry(retries int, interval time.Duration) *MigrationRunner {
	if retries > 0 {
		mr.maxRetries = retries
	}
	if interval > 0 {
		mr.retryInterval = interval
	}
	return mr
}

// WaitForDatabase waits for the database to be ready
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	for i := 0; i < mr.maxRetries; i++ {
		err := mr.db.PingContext(ctx)
		if err == nil {
			return nil
		}

		slog.Debug("database not ready", "attempt", i+1, "max_attempts", mr.maxRetries, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(mr.retryInterval):
		}
	}

	return fmt.Errorf("database not ready after %d attempts", mr.maxRetries)
}

// newMigrate binds the migration source to the database. The returned
// instance must not be closed: closing it closes the shared *sql.DB.
func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	source, err := iofs.New(mr.migrations, mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open migration source: %w", err)
	}

	driver, err := sqlite3.WithInstance(mr.db, &sqlite3.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create sqlite3 driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// RunMigrations executes all pending migrations
func (mr *MigrationRunner) RunMigrations() error {
	m, err := mr.newMigrate()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		slog.Warn("database is in dirty state, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		slog.Debug("no new migrations to apply", "version", version)
		return nil
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	slog.Debug("applied migrations", "version", newVersion)
	return nil
}

// GetMigrationStatus returns the current migration status
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// RunMigrationsIfEnabled waits for the database and applies migrations
// unless cfg disables them, in which case ErrMigrationsDisabled is returned.
func RunMigrationsIfEnabled(db *sql.DB, cfg *config.StorageConfig) error {
	if !cfg.MigrationsEnabled {
		return ErrMigrationsDisabled
	}

	runner := NewMigrationRunner(db).WithRetry(cfg.ConnectRetries, cfg.RetryInterval)

	if err := runner.WaitForDatabase(context.Background()); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	return nil
}
