package models

// Credentials is the JSON body of signup and login requests.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CredentialsUpdate is the JSON body for changing an account's username
// and/or password. Empty fields are left unchanged.
type CredentialsUpdate struct {
	NewUsername string `json:"new_username,omitempty"`
	NewPassword string `json:"new_password,omitempty"`
}

// ScoreSubmission is the JSON body for recording a finished game.
type ScoreSubmission struct {
	Score int64 `json:"score"`
	Level int64 `json:"level"`
}

// LevelUpdate is the JSON body for advancing the player's current level.
type LevelUpdate struct {
	Level int64 `json:"level"`
}

// AchievementGrant is the JSON body for adding an achievement.
type AchievementGrant struct {
	AchievementID string `json:"achievement_id"`
}
