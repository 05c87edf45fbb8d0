package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/bob/dialect/sqlite/im"
	"github.com/stephenafamo/bob/dialect/sqlite/sm"
	"github.com/stephenafamo/scan"
)

var _ ITokenTable = (*SQLiteTokenTable)(nil)

// SQLiteTokenTable is the single-file variant of PostgresTokenTable.
type SQLiteTokenTable struct {
	db   *sql.DB
	exec bob.Executor
	name string
}

func OpenSQLiteTokenTable(path, name string) (*SQLiteTokenTable, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	if _, err := RunSQLiteMigrations(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	return NewSQLiteTokenTable(db, name), nil
}

func NewSQLiteTokenTable(db *sql.DB, name string) *SQLiteTokenTable {
	return &SQLiteTokenTable{db: db, exec: bob.NewDB(db), name: name}
}

func (t *SQLiteTokenTable) Get(ctx context.Context) (string, error) {
	query := sqlite.Select(
		sm.Columns("token"),
		sm.From(accessTokensTable),
		sm.Where(sqlite.Quote("name").EQ(sqlite.Arg(t.name))),
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

func (t *SQLiteTokenTable) Set(ctx context.Context, token string) error {
	query := sqlite.Insert(
		im.Into(accessTokensTable, "name", "token", "updated_at"),
		im.Values(sqlite.Arg(t.name), sqlite.Arg(token), sqlite.Arg(time.Now().UTC())),
		im.OnConflict("name").DoUpdate(im.SetExcluded("token", "updated_at")),
	)

	if _, err := bob.Exec(ctx, t.exec, query); err != nil {
		return fmt.Errorf("upsert access token: %w", err)
	}
	return nil
}

func (t *SQLiteTokenTable) Close() error {
	return t.db.Close()
}
