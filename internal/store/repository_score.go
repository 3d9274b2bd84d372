package store

import (
	"context"
	"fmt"

	"github.com/anteater-game/server/internal/logger"
	"github.com/anteater-game/server/models"
)

// scoreRepository is the SQL-backed implementation of [ScoreRepository].
// Score rows are append-only; the only mutation is the administrative
// bulk delete.
type scoreRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewScoreRepository constructs a [ScoreRepository] backed by the provided
// database connection and logger.
func NewScoreRepository(db *DB, logger *logger.Logger) ScoreRepository {
	logger.Debug().Msg("creating score repository")
	return &scoreRepository{
		db:     db,
		logger: logger,
	}
}

// InsertScore persists a new immutable score row and returns the
// server-assigned score id.
//
// Error handling:
//   - foreign-key violation on player_id → [ErrPlayerNotFound]
//   - any other driver-level error → wrapped as "unexpected DB error"
func (r *scoreRepository) InsertScore(ctx context.Context, score models.Score) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Insert("scores").
		Columns("player_id", "score", "level", "date").
		Values(score.PlayerID, score.Score, score.Level, score.Date).
		Suffix("RETURNING score_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var scoreID int64
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&scoreID); err != nil {
		log.Err(err).Str("func", "*scoreRepository.InsertScore").Msg("error: inserting score")
		return 0, r.db.mapError(err, nil)
	}

	return scoreID, nil
}

// TopScores returns up to limit leaderboard entries ordered by score
// descending. Ties are broken by earliest date, then by score id, so the
// ordering is fully deterministic.
func (r *scoreRepository) TopScores(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select("p.username", "s.score", "s.level", "s.date").
		From("scores s").
		Join("players p ON p.player_id = s.player_id").
		OrderBy("s.score DESC", "s.date ASC", "s.score_id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*scoreRepository.TopScores").Msg("error: querying leaderboard")
		return nil, r.db.mapError(err, nil)
	}
	defer rows.Close()

	// limit is caller-controlled; never size an allocation by it directly.
	entries := make([]models.LeaderboardEntry, 0, min(limit, 64))
	for rows.Next() {
		var entry models.LeaderboardEntry
		if err := rows.Scan(&entry.Username, &entry.Score, &entry.Level, &entry.Date); err != nil {
			log.Err(err).Str("func", "*scoreRepository.TopScores").Msg("error: scanning leaderboard row")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return entries, nil
}

// DeleteScoresForUsername removes all scores belonging to the named player
// inside one transaction and returns the number of rows deleted.
//
// Error handling:
//   - username does not exist → [ErrPlayerNotFound] (distinguished from a
//     player that merely has zero scores, which returns 0, nil)
func (r *scoreRepository) DeleteScoresForUsername(ctx context.Context, username string) (int64, error) {
	log := logger.FromContext(ctx)

	lookup, lookupArgs, err := r.db.Builder().
		Select("player_id").
		From("players").
		Where("username = ?", username).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*scoreRepository.DeleteScoresForUsername").Msg("error: cannot begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var playerID int64
	if err := tx.QueryRowContext(ctx, lookup, lookupArgs...).Scan(&playerID); err != nil {
		log.Err(err).Str("func", "*scoreRepository.DeleteScoresForUsername").Msg("error: looking up player")
		return 0, r.db.mapError(err, ErrPlayerNotFound)
	}

	del, delArgs, err := r.db.Builder().
		Delete("scores").
		Where("player_id = ?", playerID).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, del, delArgs...)
	if err != nil {
		log.Err(err).Str("func", "*scoreRepository.DeleteScoresForUsername").Msg("error: deleting scores")
		return 0, r.db.mapError(err, nil)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return deleted, nil
}
