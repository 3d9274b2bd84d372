package store

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/anteater-game/server/models"
	"github.com/jackc/pgerrcode"
)

func newTestScoreRepo(t *testing.T) (*scoreRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	d, mock, db := newTestDB(t)
	repo := &scoreRepository{
		db:     d,
		logger: d.logger,
	}
	return repo, mock, db
}

func TestInsertScore_Success(t *testing.T) {
	repo, mock, db := newTestScoreRepo(t)
	defer db.Close()

	score := models.Score{
		PlayerID: 3,
		Score:    1250,
		Level:    4,
		Date:     time.Now(),
	}

	mock.ExpectQuery("INSERT INTO scores").
		WithArgs(score.PlayerID, score.Score, score.Level, score.Date).
		WillReturnRows(sqlmock.NewRows([]string{"score_id"}).AddRow(42))

	scoreID, err := repo.InsertScore(context.Background(), score)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scoreID != 42 {
		t.Errorf("expected score_id=42, got %d", scoreID)
	}
}

func TestInsertScore_UnknownPlayer(t *testing.T) {
	repo, mock, db := newTestScoreRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO scores").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.InsertScore(context.Background(), models.Score{PlayerID: 99, Score: 10})
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestTopScores_OrderAndLimit(t *testing.T) {
	repo, mock, db := newTestScoreRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"username", "score", "level", "date"}).
		AddRow("bea", 200, 2, now).
		AddRow("cal", 100, 3, now).
		AddRow("ana", 50, 1, now)

	mock.ExpectQuery("SELECT p.username, s.score, s.level, s.date FROM scores s JOIN players p").
		WillReturnRows(rows)

	entries, err := repo.TopScores(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Username != "bea" || entries[0].Score != 200 {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[2].Username != "ana" || entries[2].Score != 50 {
		t.Errorf("unexpected last entry: %+v", entries[2])
	}
}

func TestTopScores_Empty(t *testing.T) {
	repo, mock, db := newTestScoreRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT p.username, s.score, s.level, s.date FROM scores s").
		WillReturnRows(sqlmock.NewRows([]string{"username", "score", "level", "date"}))

	entries, err := repo.TopScores(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty leaderboard, got %d entries", len(entries))
	}
}

func TestTopScores_HugeLimit(t *testing.T) {
	repo, mock, db := newTestScoreRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"username", "score", "level", "date"}).
		AddRow("bea", 200, 2, time.Now())

	mock.ExpectQuery("SELECT p.username, s.score, s.level, s.date FROM scores s").
		WillReturnRows(rows)

	// limit comes straight off the public leaderboard query string; a huge
	// value must not size an allocation or panic
	entries, err := repo.TopScores(context.Background(), math.MaxInt64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
}

func TestDeleteScoresForUsername_Success(t *testing.T) {
	repo, mock, db := newTestScoreRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT player_id FROM players").
		WithArgs("antonia").
		WillReturnRows(sqlmock.NewRows([]string{"player_id"}).AddRow(3))
	mock.ExpectExec("DELETE FROM scores").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectCommit()

	deleted, err := repo.DeleteScoresForUsername(context.Background(), "antonia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 5 {
		t.Errorf("expected 5 deleted rows, got %d", deleted)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteScoresForUsername_UnknownPlayer(t *testing.T) {
	repo, mock, db := newTestScoreRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT player_id FROM players").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.DeleteScoresForUsername(context.Background(), "ghost")
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestDeleteScoresForUsername_NoScores(t *testing.T) {
	repo, mock, db := newTestScoreRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT player_id FROM players").
		WithArgs("antonia").
		WillReturnRows(sqlmock.NewRows([]string{"player_id"}).AddRow(3))
	mock.ExpectExec("DELETE FROM scores").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	deleted, err := repo.DeleteScoresForUsername(context.Background(), "antonia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 0 {
		t.Errorf("expected 0 deleted rows, got %d", deleted)
	}
}
