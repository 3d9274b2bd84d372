package store

import (
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/anteater-game/server/internal/logger"
	"github.com/anteater-game/server/migrations"
)

// DB wraps a database/sql connection pool with the pieces the repositories
// need regardless of engine: a squirrel builder preconfigured with the
// dialect's placeholder format and a [ConstraintMapper] for its driver.
type DB struct {
	*sql.DB
	builder     sq.StatementBuilderType
	constraints ConstraintMapper
	logger      *logger.Logger
}

// Builder returns the dialect-aware squirrel statement builder.
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}

// Migrate applies the embedded goose migrations. Only valid for the
// PostgreSQL connector; the SQLite connector bootstraps its schema on
// connect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// mapError normalises a driver error: recognised constraint violations become
// store sentinels, sql.ErrNoRows becomes the provided notFound sentinel, and
// anything else is wrapped as an unexpected DB error.
func (db *DB) mapError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) && notFound != nil {
		return notFound
	}

	if mapped := db.constraints.MapConstraint(err); mapped != nil {
		return mapped
	}

	return fmt.Errorf("unexpected DB error: %w", err)
}
