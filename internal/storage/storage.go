package storage

import (
	"context"
	"fmt"

	"github.com/carson-networks/finance-inspector/internal/config"
	"github.com/carson-networks/finance-inspector/internal/storage/sqlconfig"
)

// TokenStore holds the provider access token. Get returns "" when nothing
// has been stored yet.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Close() error
}

// NewTokenStore opens the backend selected by TOKEN_BACKEND. SQL backends
// are migrated before they are returned.
func NewTokenStore(env *config.Config) (TokenStore, error) {
	switch env.TokenBackend {
	case config.TokenBackendEnv:
		return NewEnvFileStore(env.EnvFilePath, env.AccessTokenKey), nil
	case config.TokenBackendPostgres:
		return sqlconfig.OpenPostgresTokenTable(env.PostgresDSN(), env.AccessTokenKey)
	case config.TokenBackendSQLite:
		return sqlconfig.OpenSQLiteTokenTable(env.SQLitePath, env.AccessTokenKey)
	default:
		return nil, fmt.Errorf("unknown token backend %q", env.TokenBackend)
	}
}

// RunMigrations applies the token schema for the configured SQL backend.
// The env backend has no schema and reports ok=false.
func RunMigrations(env *config.Config) (result sqlconfig.MigrationResult, ok bool, err error) {
	switch env.TokenBackend {
	case config.TokenBackendPostgres:
		result, err = RunPostgresMigrations(env.PostgresDSN())
		return result, true, err
	case config.TokenBackendSQLite:
		result, err = RunSQLiteMigrations(env.SQLitePath)
		return result, true, err
	default:
		return result, false, nil
	}
}

func RunPostgresMigrations(dsn string) (sqlconfig.MigrationResult, error) {
	return sqlconfig.RunPostgresMigrations(dsn)
}

func RunSQLiteMigrations(path string) (sqlconfig.MigrationResult, error) {
	return sqlconfig.RunSQLiteMigrations(path)
}
