package models

import "time"

// Score is a single game-over result. Rows are immutable once written;
// corrections happen by deletion, never by update.
type Score struct {
	ScoreID  int64     `json:"-"`
	PlayerID int64     `json:"player_id"`
	Score    int64     `json:"score"`
	Level    int64     `json:"level"`
	Date     time.Time `json:"date"`
}

// TableName returns the name of the database table
// associated with the Score model.
func (s Score) TableName() string {
	return "scores"
}

// LeaderboardEntry is one row of the ranked score view: the player's
// username joined onto their score record. Ordered by score descending,
// ties broken by earliest date.
type LeaderboardEntry struct {
	Username string    `json:"username"`
	Score    int64     `json:"score"`
	Level    int64     `json:"level"`
	Date     time.Time `json:"date"`
}
