package service

import (
	"context"
	"errors"
	"testing"

	"github.com/anteater-game/server/internal/logger"
	"github.com/anteater-game/server/internal/store"
	"github.com/anteater-game/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.ProgressRepository
// ─────────────────────────────────────────────

type mockProgressRepository struct {
	getFn      func(ctx context.Context, playerID int64) (models.Progress, error)
	setLevelFn func(ctx context.Context, playerID int64, level int64) error
	addFn      func(ctx context.Context, playerID int64, achievementID string) error
}

func (m *mockProgressRepository) GetProgress(ctx context.Context, playerID int64) (models.Progress, error) {
	if m.getFn != nil {
		return m.getFn(ctx, playerID)
	}
	return models.Progress{}, nil
}

func (m *mockProgressRepository) SetLevel(ctx context.Context, playerID int64, level int64) error {
	if m.setLevelFn != nil {
		return m.setLevelFn(ctx, playerID, level)
	}
	return nil
}

func (m *mockProgressRepository) AddAchievement(ctx context.Context, playerID int64, achievementID string) error {
	if m.addFn != nil {
		return m.addFn(ctx, playerID, achievementID)
	}
	return nil
}

func newTestProgressService(repo store.ProgressRepository) ProgressService {
	return NewProgressService(repo, logger.Nop())
}

func TestProgressService_GetProgress(t *testing.T) {
	repo := &mockProgressRepository{
		getFn: func(_ context.Context, playerID int64) (models.Progress, error) {
			return models.Progress{
				ProgressID:   1,
				PlayerID:     playerID,
				Level:        5,
				Achievements: []string{"first-blood"},
			}, nil
		},
	}
	svc := newTestProgressService(repo)

	progress, err := svc.GetProgress(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(5), progress.Level)
	assert.Equal(t, []string{"first-blood"}, progress.Achievements)
}

func TestProgressService_GetProgress_UnknownPlayer(t *testing.T) {
	repo := &mockProgressRepository{
		getFn: func(_ context.Context, _ int64) (models.Progress, error) {
			return models.Progress{}, store.ErrProgressNotFound
		},
	}
	svc := newTestProgressService(repo)

	_, err := svc.GetProgress(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestProgressService_SetLevel(t *testing.T) {
	var gotLevel int64
	repo := &mockProgressRepository{
		setLevelFn: func(_ context.Context, _ int64, level int64) error {
			gotLevel = level
			return nil
		},
	}
	svc := newTestProgressService(repo)

	require.NoError(t, svc.SetLevel(context.Background(), 7, 9))
	assert.Equal(t, int64(9), gotLevel)
}

func TestProgressService_SetLevel_InvalidLevel(t *testing.T) {
	svc := newTestProgressService(&mockProgressRepository{})

	assert.ErrorIs(t, svc.SetLevel(context.Background(), 7, 0), ErrInvalidInput)
	assert.ErrorIs(t, svc.SetLevel(context.Background(), 7, -3), ErrInvalidInput)
}

func TestProgressService_AddAchievement(t *testing.T) {
	var gotID string
	repo := &mockProgressRepository{
		addFn: func(_ context.Context, _ int64, achievementID string) error {
			gotID = achievementID
			return nil
		},
	}
	svc := newTestProgressService(repo)

	require.NoError(t, svc.AddAchievement(context.Background(), 7, "ant-eater"))
	assert.Equal(t, "ant-eater", gotID)
}

func TestProgressService_AddAchievement_EmptyID(t *testing.T) {
	svc := newTestProgressService(&mockProgressRepository{})

	assert.ErrorIs(t, svc.AddAchievement(context.Background(), 7, ""), ErrInvalidInput)
}

func TestProgressService_AddAchievement_StoreUnavailable(t *testing.T) {
	repo := &mockProgressRepository{
		addFn: func(_ context.Context, _ int64, _ string) error {
			return errors.New("connection refused")
		},
	}
	svc := newTestProgressService(repo)

	err := svc.AddAchievement(context.Background(), 7, "ant-eater")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
