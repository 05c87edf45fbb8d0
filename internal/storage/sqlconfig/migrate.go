package sqlconfig

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// MigrationResult reports the schema version before and after a run.
type MigrationResult struct {
	PreMigrationVersion  uint
	PostMigrationVersion uint
}

// RunPostgresMigrations applies the token schema using its own connection,
// since closing the migrate instance closes the database it wraps.
func RunPostgresMigrations(dsn string) (MigrationResult, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("open migration database: %w", err)
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return MigrationResult{}, fmt.Errorf("create postgres driver: %w", err)
	}

	return runMigrations("migrations/postgres", "postgres", driver)
}

// RunSQLiteMigrations applies the token schema to the database file at path.
func RunSQLiteMigrations(path string) (MigrationResult, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("open migration database: %w", err)
	}
	defer db.Close()

	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return MigrationResult{}, fmt.Errorf("create sqlite driver: %w", err)
	}

	return runMigrations("migrations/sqlite", "sqlite", driver)
}

func runMigrations(dir, databaseName string, driver database.Driver) (MigrationResult, error) {
	source, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, databaseName, driver)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	var result MigrationResult

	result.PreMigrationVersion, _, err = m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return result, fmt.Errorf("read pre-migration version: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return result, fmt.Errorf("run migrations: %w", err)
	}

	result.PostMigrationVersion, _, err = m.Version()
	if err != nil {
		return result, fmt.Errorf("read post-migration version: %w", err)
	}

	return result, nil
}
