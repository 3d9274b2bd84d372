package store

import (
	"context"
	"fmt"

	"github.com/anteater-game/server/internal/logger"
	"github.com/anteater-game/server/models"
)

// playerRepository is the SQL-backed implementation of [PlayerRepository].
// It handles account creation, lookup, and credential maintenance against
// the "players" table (plus the companion "progress" row on creation).
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type playerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPlayerRepository constructs a [PlayerRepository] backed by the provided
// database connection and logger.
func NewPlayerRepository(db *DB, logger *logger.Logger) PlayerRepository {
	logger.Debug().Msg("creating player repository")
	return &playerRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePlayer persists a new player and its empty progress row in a single
// transaction, returning the server-assigned player id.
//
// Error handling:
//   - unique violation on username → [ErrUsernameTaken]
//   - any other driver-level error → wrapped as "unexpected DB error"
func (r *playerRepository) CreatePlayer(ctx context.Context, player models.Player) (int64, error) {
	log := logger.FromContext(ctx)

	insertPlayer, playerArgs, err := r.db.Builder().
		Insert("players").
		Columns("username", "password_hash", "date_created").
		Values(player.Username, player.PasswordHash, player.DateCreated).
		Suffix("RETURNING player_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*playerRepository.CreatePlayer").Msg("error: cannot begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var playerID int64
	if err := tx.QueryRowContext(ctx, insertPlayer, playerArgs...).Scan(&playerID); err != nil {
		log.Err(err).Str("func", "*playerRepository.CreatePlayer").Msg("error: inserting player")
		return 0, r.db.mapError(err, nil)
	}

	insertProgress, progressArgs, err := r.db.Builder().
		Insert("progress").
		Columns("player_id", "level", "achievements").
		Values(playerID, 1, "[]").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := tx.ExecContext(ctx, insertProgress, progressArgs...); err != nil {
		log.Err(err).Str("func", "*playerRepository.CreatePlayer").Msg("error: inserting progress")
		return 0, r.db.mapError(err, nil)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*playerRepository.CreatePlayer").Msg("error: committing transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return playerID, nil
}

// FindPlayerByUsername retrieves the player row whose username matches
// exactly. Returns [ErrPlayerNotFound] on an empty result set.
func (r *playerRepository) FindPlayerByUsername(ctx context.Context, username string) (models.Player, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select("player_id", "username", "password_hash", "date_created", "is_admin").
		From("players").
		Where("username = ?", username).
		ToSql()
	if err != nil {
		return models.Player{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Player
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.PlayerID, &found.Username, &found.PasswordHash, &found.DateCreated, &found.IsAdmin); err != nil {
		log.Err(err).Str("func", "*playerRepository.FindPlayerByUsername").Msg("error: scanning player row")
		return models.Player{}, r.db.mapError(err, ErrPlayerNotFound)
	}

	return found, nil
}

// FindPlayerByID retrieves the player row with the given identifier.
// Returns [ErrPlayerNotFound] on an empty result set.
func (r *playerRepository) FindPlayerByID(ctx context.Context, playerID int64) (models.Player, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select("player_id", "username", "password_hash", "date_created", "is_admin").
		From("players").
		Where("player_id = ?", playerID).
		ToSql()
	if err != nil {
		return models.Player{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Player
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.PlayerID, &found.Username, &found.PasswordHash, &found.DateCreated, &found.IsAdmin); err != nil {
		log.Err(err).Str("func", "*playerRepository.FindPlayerByID").Msg("error: scanning player row")
		return models.Player{}, r.db.mapError(err, ErrPlayerNotFound)
	}

	return found, nil
}

// UpdateCredentials overwrites username and/or password hash of the player.
// Fields left empty (username "" / hash nil) are not touched.
//
// Error handling:
//   - unique violation on the new username → [ErrUsernameTaken]
//   - zero rows affected → [ErrPlayerNotFound]
func (r *playerRepository) UpdateCredentials(ctx context.Context, playerID int64, username string, passwordHash []byte) error {
	log := logger.FromContext(ctx)

	update := r.db.Builder().Update("players")
	if username != "" {
		update = update.Set("username", username)
	}
	if passwordHash != nil {
		update = update.Set("password_hash", passwordHash)
	}
	if username == "" && passwordHash == nil {
		// nothing to change; callers validate, this is a defensive no-op
		return nil
	}

	query, args, err := update.Where("player_id = ?", playerID).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*playerRepository.UpdateCredentials").Msg("error: updating player credentials")
		return r.db.mapError(err, nil)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrPlayerNotFound
	}

	return nil
}

// SetAdmin flags the player as an administrator.
// Returns [ErrPlayerNotFound] when the id does not exist.
func (r *playerRepository) SetAdmin(ctx context.Context, playerID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Update("players").
		Set("is_admin", true).
		Where("player_id = ?", playerID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*playerRepository.SetAdmin").Msg("error: promoting player")
		return r.db.mapError(err, nil)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrPlayerNotFound
	}

	return nil
}

// DeletePlayer removes the player row. Scores and progress are removed by
// the ON DELETE CASCADE foreign keys.
// Returns [ErrPlayerNotFound] when the id does not exist.
func (r *playerRepository) DeletePlayer(ctx context.Context, playerID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Delete("players").
		Where("player_id = ?", playerID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*playerRepository.DeletePlayer").Msg("error: deleting player")
		return r.db.mapError(err, nil)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrPlayerNotFound
	}

	return nil
}
