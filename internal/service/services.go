package service

import (
	"github.com/anteater-game/server/internal/clock"
	"github.com/anteater-game/server/internal/config"
	"github.com/anteater-game/server/internal/logger"
	"github.com/anteater-game/server/internal/store"
)

type Services struct {
	AuthService     AuthService
	ScoreService    ScoreService
	ProgressService ProgressService
}

func NewServices(repos *store.Repositories, cfg config.StructuredConfig, clk clock.Clock, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(repos.Players, cfg.App, clk, logger),
		ScoreService:    NewScoreService(repos.Scores, clk, logger),
		ProgressService: NewProgressService(repos.Progress, logger),
	}
}
