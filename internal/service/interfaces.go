package service

import (
	"context"

	"github.com/anteater-game/server/models"
)

type AuthService interface {
	SignUp(ctx context.Context, username, password string) (int64, error)
	Login(ctx context.Context, username, password string) (int64, error)
	ChangeCredentials(ctx context.Context, playerID int64, newUsername, newPassword string) error
	PromoteAdmin(ctx context.Context, playerID int64) error
	DeleteAccount(ctx context.Context, playerID int64) error
	IsAdmin(ctx context.Context, playerID int64) (bool, error)

	CreateToken(ctx context.Context, playerID int64) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ScoreService interface {
	RecordScore(ctx context.Context, playerID, score, level int64) (int64, error)
	TopScores(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error)
	DeleteScoresForPlayer(ctx context.Context, username string) (int64, error)
}

type ProgressService interface {
	GetProgress(ctx context.Context, playerID int64) (models.Progress, error)
	SetLevel(ctx context.Context, playerID int64, level int64) error
	AddAchievement(ctx context.Context, playerID int64, achievementID string) error
}
