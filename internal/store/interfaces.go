package store

import (
	"context"

	"github.com/anteater-game/server/models"
)

// PlayerRepository handles player account rows and their lifecycle.
type PlayerRepository interface {
	// CreatePlayer inserts a new player together with its empty progress
	// row in one transaction and returns the server-assigned identifier.
	CreatePlayer(ctx context.Context, player models.Player) (int64, error)

	FindPlayerByUsername(ctx context.Context, username string) (models.Player, error)
	FindPlayerByID(ctx context.Context, playerID int64) (models.Player, error)

	// UpdateCredentials overwrites the username and/or password hash of an
	// existing player. Empty username / nil hash fields are left unchanged.
	UpdateCredentials(ctx context.Context, playerID int64, username string, passwordHash []byte) error

	SetAdmin(ctx context.Context, playerID int64) error

	// DeletePlayer removes the account; scores and progress rows are
	// cascade-deleted by the schema's foreign keys.
	DeletePlayer(ctx context.Context, playerID int64) error
}

// ScoreRepository handles immutable score rows and the leaderboard view.
type ScoreRepository interface {
	InsertScore(ctx context.Context, score models.Score) (int64, error)
	TopScores(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error)

	// DeleteScoresForUsername removes every score of the named player and
	// returns the number of rows deleted. The player row itself is kept.
	DeleteScoresForUsername(ctx context.Context, username string) (int64, error)
}

// ProgressRepository handles per-player progress rows.
type ProgressRepository interface {
	GetProgress(ctx context.Context, playerID int64) (models.Progress, error)
	SetLevel(ctx context.Context, playerID int64, level int64) error

	// AddAchievement appends the achievement id to the player's collection
	// if it is not already present. Adding a present id is a no-op.
	AddAchievement(ctx context.Context, playerID int64, achievementID string) error
}

// ConstraintMapper translates driver-specific constraint-violation errors
// into the store's sentinel errors. Each connector installs the mapper for
// its dialect on the shared [DB] handle.
type ConstraintMapper interface {
	// MapConstraint returns the matching sentinel error, or nil when err is
	// not a recognised constraint violation.
	MapConstraint(err error) error
}
