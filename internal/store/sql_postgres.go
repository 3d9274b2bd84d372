package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/anteater-game/server/internal/config"
	"github.com/anteater-game/server/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// NewConnectPostgres opens a PostgreSQL connection pool via the pgx stdlib
// driver, pings it, and returns a [DB] configured with $N placeholders and
// the PostgreSQL constraint mapper.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	db := &DB{
		DB:          conn,
		builder:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		constraints: postgresConstraintMapper{},
		logger:      log,
	}

	return db, nil
}

// postgresConstraintMapper implements [ConstraintMapper] by inspecting the
// SQLSTATE code carried by *pgconn.PgError.
type postgresConstraintMapper struct{}

// MapConstraint maps PostgreSQL integrity-constraint codes to store
// sentinels:
//   - unique_violation (23505)      → [ErrUsernameTaken]
//   - foreign_key_violation (23503) → [ErrPlayerNotFound]
//
// Any other error yields nil so callers can apply their own wrapping.
func (postgresConstraintMapper) MapConstraint(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ErrUsernameTaken
	case pgerrcode.ForeignKeyViolation:
		return ErrPlayerNotFound
	}

	return nil
}
