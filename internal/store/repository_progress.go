package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anteater-game/server/internal/logger"
	"github.com/anteater-game/server/models"
)

// progressRepository is the SQL-backed implementation of [ProgressRepository].
// The achievements collection is stored as a JSON array; mutation happens via
// read-modify-write inside a transaction so the same code runs on PostgreSQL
// and SQLite.
type progressRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProgressRepository constructs a [ProgressRepository] backed by the
// provided database connection and logger.
func NewProgressRepository(db *DB, logger *logger.Logger) ProgressRepository {
	logger.Debug().Msg("creating progress repository")
	return &progressRepository{
		db:     db,
		logger: logger,
	}
}

// GetProgress retrieves the progress row for the given player.
// Returns [ErrProgressNotFound] on an empty result set.
func (r *progressRepository) GetProgress(ctx context.Context, playerID int64) (models.Progress, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select("progress_id", "player_id", "level", "achievements").
		From("progress").
		Where("player_id = ?", playerID).
		ToSql()
	if err != nil {
		return models.Progress{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Progress
	var achievementsRaw []byte
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.ProgressID, &found.PlayerID, &found.Level, &achievementsRaw); err != nil {
		log.Err(err).Str("func", "*progressRepository.GetProgress").Msg("error: scanning progress row")
		return models.Progress{}, r.db.mapError(err, ErrProgressNotFound)
	}

	if err := json.Unmarshal(achievementsRaw, &found.Achievements); err != nil {
		log.Err(err).Str("func", "*progressRepository.GetProgress").Msg("error: decoding achievements")
		return models.Progress{}, fmt.Errorf("error decoding achievements: %w", err)
	}

	return found, nil
}

// SetLevel overwrites the player's current level.
// Returns [ErrProgressNotFound] when the player has no progress row.
func (r *progressRepository) SetLevel(ctx context.Context, playerID int64, level int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Update("progress").
		Set("level", level).
		Where("player_id = ?", playerID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.SetLevel").Msg("error: updating level")
		return r.db.mapError(err, nil)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrProgressNotFound
	}

	return nil
}

// AddAchievement appends the achievement id to the player's collection
// unless it is already present; re-adding is a no-op, not an error.
//
// The read and the conditional write share one transaction at the engine's
// default isolation; concurrent grants of distinct ids can still race.
func (r *progressRepository) AddAchievement(ctx context.Context, playerID int64, achievementID string) error {
	log := logger.FromContext(ctx)

	sel, selArgs, err := r.db.Builder().
		Select("achievements").
		From("progress").
		Where("player_id = ?", playerID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*progressRepository.AddAchievement").Msg("error: cannot begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var achievementsRaw []byte
	if err := tx.QueryRowContext(ctx, sel, selArgs...).Scan(&achievementsRaw); err != nil {
		log.Err(err).Str("func", "*progressRepository.AddAchievement").Msg("error: reading achievements")
		return r.db.mapError(err, ErrProgressNotFound)
	}

	var achievements []string
	if err := json.Unmarshal(achievementsRaw, &achievements); err != nil {
		return fmt.Errorf("error decoding achievements: %w", err)
	}

	for _, a := range achievements {
		if a == achievementID {
			// already granted; idempotent no-op
			return tx.Commit()
		}
	}

	updated, err := json.Marshal(append(achievements, achievementID))
	if err != nil {
		return fmt.Errorf("error encoding achievements: %w", err)
	}

	upd, updArgs, err := r.db.Builder().
		Update("progress").
		Set("achievements", string(updated)).
		Where("player_id = ?", playerID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := tx.ExecContext(ctx, upd, updArgs...); err != nil {
		log.Err(err).Str("func", "*progressRepository.AddAchievement").Msg("error: writing achievements")
		return r.db.mapError(err, nil)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
