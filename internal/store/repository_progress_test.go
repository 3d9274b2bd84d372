package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newTestProgressRepo(t *testing.T) (*progressRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	d, mock, db := newTestDB(t)
	repo := &progressRepository{
		db:     d,
		logger: d.logger,
	}
	return repo, mock, db
}

func TestGetProgress_Success(t *testing.T) {
	repo, mock, db := newTestProgressRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"progress_id", "player_id", "level", "achievements"}).
		AddRow(1, 3, 5, []byte(`["first-blood","level-5"]`))

	mock.ExpectQuery("SELECT progress_id, player_id, level, achievements FROM progress").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	progress, err := repo.GetProgress(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if progress.Level != 5 {
		t.Errorf("expected level 5, got %d", progress.Level)
	}
	if len(progress.Achievements) != 2 || progress.Achievements[0] != "first-blood" {
		t.Errorf("unexpected achievements: %v", progress.Achievements)
	}
}

func TestGetProgress_NotFound(t *testing.T) {
	repo, mock, db := newTestProgressRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT progress_id, player_id, level, achievements FROM progress").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetProgress(context.Background(), 99)
	if !errors.Is(err, ErrProgressNotFound) {
		t.Fatalf("expected ErrProgressNotFound, got %v", err)
	}
}

func TestSetLevel_Success(t *testing.T) {
	repo, mock, db := newTestProgressRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE progress SET level").
		WithArgs(int64(7), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetLevel(context.Background(), 3, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetLevel_NotFound(t *testing.T) {
	repo, mock, db := newTestProgressRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE progress SET level").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.SetLevel(context.Background(), 99, 7); !errors.Is(err, ErrProgressNotFound) {
		t.Fatalf("expected ErrProgressNotFound, got %v", err)
	}
}

func TestAddAchievement_New(t *testing.T) {
	repo, mock, db := newTestProgressRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT achievements FROM progress").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"achievements"}).AddRow([]byte(`["first-blood"]`)))
	mock.ExpectExec("UPDATE progress SET achievements").
		WithArgs(`["first-blood","ant-eater"]`, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.AddAchievement(context.Background(), 3, "ant-eater"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAddAchievement_AlreadyGranted(t *testing.T) {
	repo, mock, db := newTestProgressRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT achievements FROM progress").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"achievements"}).AddRow([]byte(`["ant-eater"]`)))
	mock.ExpectCommit()

	if err := repo.AddAchievement(context.Background(), 3, "ant-eater"); err != nil {
		t.Fatalf("expected idempotent no-op, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAddAchievement_NoProgressRow(t *testing.T) {
	repo, mock, db := newTestProgressRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT achievements FROM progress").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.AddAchievement(context.Background(), 99, "ant-eater")
	if !errors.Is(err, ErrProgressNotFound) {
		t.Fatalf("expected ErrProgressNotFound, got %v", err)
	}
}
