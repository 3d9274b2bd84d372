// Package adapter provides the client-side transport for talking to the
// anteater server. It is consumed by the game process and by anteaterctl
// when they run against a remote server instead of a local store.
//
// The primary abstraction is [GameServerAdapter], which decouples callers
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/anteater-game/server/models"
)

// GameServerAdapter defines transport-agnostic communication with the
// anteater server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type GameServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful SignUp or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// SignUp registers a new player account and stores the returned bearer
	// token via SetToken. Returns the new player id.
	SignUp(ctx context.Context, creds models.Credentials) (int64, error)

	// Login authenticates an existing player and stores the returned bearer
	// token via SetToken. Returns the player id.
	Login(ctx context.Context, creds models.Credentials) (int64, error)

	// ChangeCredentials updates the player's username and/or password.
	// Empty fields are left unchanged.
	ChangeCredentials(ctx context.Context, update models.CredentialsUpdate) error

	// DeleteAccount removes the authenticated player's account together
	// with its scores and progress.
	DeleteAccount(ctx context.Context) error

	// RecordScore submits a finished game and returns the new score id.
	RecordScore(ctx context.Context, submission models.ScoreSubmission) (int64, error)

	// TopScores fetches up to limit leaderboard entries, best score first.
	TopScores(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error)

	// GetProgress fetches the authenticated player's saved progress.
	GetProgress(ctx context.Context) (models.Progress, error)

	// SetLevel overwrites the authenticated player's saved level.
	SetLevel(ctx context.Context, level int64) error

	// AddAchievement grants an achievement to the authenticated player.
	// Re-granting an id the player already holds succeeds silently.
	AddAchievement(ctx context.Context, achievementID string) error
}
