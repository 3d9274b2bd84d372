package service

import (
	"context"

	"github.com/anteater-game/server/internal/clock"
	"github.com/anteater-game/server/internal/logger"
	"github.com/anteater-game/server/internal/store"
	"github.com/anteater-game/server/models"
)

// scoreService is the concrete implementation of ScoreService. Score rows
// are immutable once recorded; the injected clock stamps each submission so
// tests can pin timestamps.
type scoreService struct {
	scoreRepository store.ScoreRepository
	clock           clock.Clock
	logger          *logger.Logger
}

// NewScoreService constructs a ScoreService over the given repository.
func NewScoreService(scoreRepository store.ScoreRepository, clk clock.Clock, logger *logger.Logger) ScoreService {
	return &scoreService{
		scoreRepository: scoreRepository,
		clock:           clk,
		logger:          logger,
	}
}

// RecordScore persists one play session result and returns the new score id.
//
// Returns:
//   - ErrInvalidInput for a negative score or a level below 1.
//   - ErrUnknownPlayer when the player id does not exist.
func (s *scoreService) RecordScore(ctx context.Context, playerID, score, level int64) (int64, error) {
	log := logger.FromContext(ctx)

	if score < 0 || level < 1 {
		log.Error().
			Int64("player_id", playerID).
			Int64("score", score).
			Int64("level", level).
			Msg("invalid score submission")
		return 0, ErrInvalidInput
	}

	scoreID, err := s.scoreRepository.InsertScore(ctx, models.Score{
		PlayerID: playerID,
		Score:    score,
		Level:    level,
		Date:     s.clock.Now(),
	})
	if err != nil {
		log.Err(err).Int64("player_id", playerID).Msg("score insertion ended with error")
		return 0, mapStoreErr(err)
	}

	return scoreID, nil
}

// TopScores returns up to limit leaderboard entries, best score first.
// Ties are broken by the earlier submission. Returns ErrInvalidLimit when
// limit is not positive.
func (s *scoreService) TopScores(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		log.Error().Int64("limit", limit).Msg("invalid leaderboard limit")
		return nil, ErrInvalidLimit
	}

	entries, err := s.scoreRepository.TopScores(ctx, limit)
	if err != nil {
		log.Err(err).Int64("limit", limit).Msg("leaderboard query ended with error")
		return nil, mapStoreErr(err)
	}

	return entries, nil
}

// DeleteScoresForPlayer removes every score recorded for the named player and
// returns the number of rows deleted. A player with zero scores yields 0,
// not an error.
//
// Returns:
//   - ErrInvalidInput for an empty username.
//   - ErrUnknownPlayer when the username does not exist.
func (s *scoreService) DeleteScoresForPlayer(ctx context.Context, username string) (int64, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		log.Error().Msg("empty username provided")
		return 0, ErrInvalidInput
	}

	deleted, err := s.scoreRepository.DeleteScoresForUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("score deletion ended with error")
		return 0, mapStoreErr(err)
	}

	return deleted, nil
}
