package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/anteater-game/server/internal/logger"
	"github.com/anteater-game/server/internal/service"
	"github.com/anteater-game/server/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signUpFn      func(ctx context.Context, username, password string) (int64, error)
	loginFn       func(ctx context.Context, username, password string) (int64, error)
	changeCredsFn func(ctx context.Context, playerID int64, newUsername, newPassword string) error
	promoteFn     func(ctx context.Context, playerID int64) error
	deleteFn      func(ctx context.Context, playerID int64) error
	isAdminFn     func(ctx context.Context, playerID int64) (bool, error)
	createTokenFn func(ctx context.Context, playerID int64) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) SignUp(ctx context.Context, username, password string) (int64, error) {
	return m.signUpFn(ctx, username, password)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (int64, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) ChangeCredentials(ctx context.Context, playerID int64, newUsername, newPassword string) error {
	return m.changeCredsFn(ctx, playerID, newUsername, newPassword)
}

func (m *mockAuthService) PromoteAdmin(ctx context.Context, playerID int64) error {
	return m.promoteFn(ctx, playerID)
}

func (m *mockAuthService) DeleteAccount(ctx context.Context, playerID int64) error {
	return m.deleteFn(ctx, playerID)
}

func (m *mockAuthService) IsAdmin(ctx context.Context, playerID int64) (bool, error) {
	return m.isAdminFn(ctx, playerID)
}

func (m *mockAuthService) CreateToken(ctx context.Context, playerID int64) (models.Token, error) {
	return m.createTokenFn(ctx, playerID)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock ScoreService
// ─────────────────────────────────────────────

type mockScoreService struct {
	recordFn func(ctx context.Context, playerID, score, level int64) (int64, error)
	topFn    func(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error)
	deleteFn func(ctx context.Context, username string) (int64, error)
}

func (m *mockScoreService) RecordScore(ctx context.Context, playerID, score, level int64) (int64, error) {
	return m.recordFn(ctx, playerID, score, level)
}

func (m *mockScoreService) TopScores(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error) {
	return m.topFn(ctx, limit)
}

func (m *mockScoreService) DeleteScoresForPlayer(ctx context.Context, username string) (int64, error) {
	return m.deleteFn(ctx, username)
}

// ─────────────────────────────────────────────
// Mock ProgressService
// ─────────────────────────────────────────────

type mockProgressService struct {
	getFn      func(ctx context.Context, playerID int64) (models.Progress, error)
	setLevelFn func(ctx context.Context, playerID int64, level int64) error
	addFn      func(ctx context.Context, playerID int64, achievementID string) error
}

func (m *mockProgressService) GetProgress(ctx context.Context, playerID int64) (models.Progress, error) {
	return m.getFn(ctx, playerID)
}

func (m *mockProgressService) SetLevel(ctx context.Context, playerID int64, level int64) error {
	return m.setLevelFn(ctx, playerID, level)
}

func (m *mockProgressService) AddAchievement(ctx context.Context, playerID int64, achievementID string) error {
	return m.addFn(ctx, playerID, achievementID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given service mocks. Nil mocks are
// fine for routes a test never touches.
func newTestHandler(t *testing.T, auth service.AuthService, scores service.ScoreService, progress service.ProgressService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:     auth,
		ScoreService:    scores,
		ProgressService: progress,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string, playerID int64) models.Token {
	return models.Token{SignedString: signed, PlayerID: playerID}
}
