package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ITokenTable = (*PostgresTokenTable)(nil)

// PostgresTokenTable keeps the access token in a single named row.
type PostgresTokenTable struct {
	db   *sql.DB
	exec bob.Executor
	name string
}

// OpenPostgresTokenTable connects to dsn, applies migrations and returns the table.
func OpenPostgresTokenTable(dsn, name string) (*PostgresTokenTable, error) {
	if _, err := RunPostgresMigrations(dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return NewPostgresTokenTable(db, name), nil
}

func NewPostgresTokenTable(db *sql.DB, name string) *PostgresTokenTable {
	return &PostgresTokenTable{db: db, exec: bob.NewDB(db), name: name}
}

func (t *PostgresTokenTable) Get(ctx context.Context) (string, error) {
	query := psql.Select(
		sm.Columns("token"),
		sm.From(accessTokensTable),
		sm.Where(psql.Quote("name").EQ(psql.Arg(t.name))),
	)

	token, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[string])
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("select access token: %w", err)
	}
	return token, nil
}

func (t *PostgresTokenTable) Set(ctx context.Context, token string) error {
	query := psql.Insert(
		im.Into(accessTokensTable, "name", "token", "updated_at"),
		im.Values(psql.Arg(t.name), psql.Arg(token), psql.Arg(time.Now().UTC())),
		im.OnConflict("name").DoUpdate(im.SetExcluded("token", "updated_at")),
	)

	if _, err := bob.Exec(ctx, t.exec, query); err != nil {
		return fmt.Errorf("upsert access token: %w", err)
	}
	return nil
}

func (t *PostgresTokenTable) Close() error {
	return t.db.Close()
}
