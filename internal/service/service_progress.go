package service

import (
	"context"

	"github.com/anteater-game/server/internal/logger"
	"github.com/anteater-game/server/internal/store"
	"github.com/anteater-game/server/models"
)

// progressService is the concrete implementation of ProgressService.
type progressService struct {
	progressRepository store.ProgressRepository
	logger             *logger.Logger
}

// NewProgressService constructs a ProgressService over the given repository.
func NewProgressService(progressRepository store.ProgressRepository, logger *logger.Logger) ProgressService {
	return &progressService{
		progressRepository: progressRepository,
		logger:             logger,
	}
}

// GetProgress returns the player's saved level and achievement collection.
// Returns ErrUnknownPlayer when no progress row exists.
func (s *progressService) GetProgress(ctx context.Context, playerID int64) (models.Progress, error) {
	log := logger.FromContext(ctx)

	progress, err := s.progressRepository.GetProgress(ctx, playerID)
	if err != nil {
		log.Err(err).Int64("player_id", playerID).Msg("progress lookup ended with error")
		return models.Progress{}, mapStoreErr(err)
	}

	return progress, nil
}

// SetLevel overwrites the player's saved level.
//
// Returns:
//   - ErrInvalidInput for a level below 1.
//   - ErrUnknownPlayer when no progress row exists.
func (s *progressService) SetLevel(ctx context.Context, playerID int64, level int64) error {
	log := logger.FromContext(ctx)

	if level < 1 {
		log.Error().Int64("player_id", playerID).Int64("level", level).Msg("invalid level")
		return ErrInvalidInput
	}

	if err := s.progressRepository.SetLevel(ctx, playerID, level); err != nil {
		log.Err(err).Int64("player_id", playerID).Msg("level update ended with error")
		return mapStoreErr(err)
	}

	return nil
}

// AddAchievement grants the achievement to the player. Granting an id the
// player already holds is a no-op, not an error.
//
// Returns:
//   - ErrInvalidInput for an empty achievement id.
//   - ErrUnknownPlayer when no progress row exists.
func (s *progressService) AddAchievement(ctx context.Context, playerID int64, achievementID string) error {
	log := logger.FromContext(ctx)

	if achievementID == "" {
		log.Error().Int64("player_id", playerID).Msg("empty achievement id provided")
		return ErrInvalidInput
	}

	if err := s.progressRepository.AddAchievement(ctx, playerID, achievementID); err != nil {
		log.Err(err).Int64("player_id", playerID).Str("achievement", achievementID).Msg("achievement grant ended with error")
		return mapStoreErr(err)
	}

	return nil
}
