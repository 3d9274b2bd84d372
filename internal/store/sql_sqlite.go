package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/anteater-game/server/internal/config"
	"github.com/anteater-game/server/internal/logger"
	"github.com/mattn/go-sqlite3"
)

// sqliteSchema mirrors the goose migrations for the disposable SQLite store
// used by anteaterctl local mode and integration tests. Foreign keys are
// enforced via the connection string pragma.
const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS players (
		player_id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash BLOB NOT NULL,
		date_created TIMESTAMP NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE
	);

	CREATE TABLE IF NOT EXISTS scores (
		score_id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_id INTEGER NOT NULL REFERENCES players (player_id) ON DELETE CASCADE,
		score INTEGER NOT NULL CHECK (score >= 0),
		level INTEGER NOT NULL DEFAULT 1 CHECK (level >= 1),
		date TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_scores_leaderboard ON scores (score DESC, date ASC);

	CREATE TABLE IF NOT EXISTS progress (
		progress_id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_id INTEGER NOT NULL UNIQUE REFERENCES players (player_id) ON DELETE CASCADE,
		level INTEGER NOT NULL DEFAULT 1 CHECK (level >= 1),
		achievements TEXT NOT NULL DEFAULT '[]'
	);`

// NewConnectSQLite opens (or creates) a SQLite database file and returns a
// [DB] configured with ? placeholders and the SQLite constraint mapper.
// The schema is bootstrapped on connect, so the store is ready to use.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", sqliteDSN(cfg.DSN()))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// An in-memory SQLite database exists per connection; a second pooled
	// connection would see an empty schema.
	conn.SetMaxOpenConns(1)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}

	if _, err := conn.ExecContext(ctx, sqliteSchema); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error bootstrapping schema")
		return nil, fmt.Errorf("error bootstrapping sqlite schema: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	db := &DB{
		DB:          conn,
		builder:     sq.StatementBuilder.PlaceholderFormat(sq.Question),
		constraints: sqliteConstraintMapper{},
		logger:      log,
	}

	return db, nil
}

// sqliteDSN appends the foreign-key pragma to the database path unless the
// caller already supplied connection options.
func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?_foreign_keys=on"
}

// sqliteConstraintMapper implements [ConstraintMapper] for go-sqlite3 by
// inspecting the extended result code.
type sqliteConstraintMapper struct{}

// MapConstraint maps SQLite constraint codes to store sentinels:
//   - SQLITE_CONSTRAINT_UNIQUE / PRIMARYKEY → [ErrUsernameTaken]
//   - SQLITE_CONSTRAINT_FOREIGNKEY          → [ErrPlayerNotFound]
//
// Any other error yields nil so callers can apply their own wrapping.
func (sqliteConstraintMapper) MapConstraint(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return nil
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return ErrUsernameTaken
	case sqlite3.ErrConstraintForeignKey:
		return ErrPlayerNotFound
	}

	return nil
}
