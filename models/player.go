package models

import "time"

// Player represents a game account used for authentication and score
// attribution. Credential fields must never leave trusted boundaries.
type Player struct {
	// PlayerID is the internal unique identifier of the player.
	// Assigned by the database, never exposed via JSON.
	PlayerID int64 `json:"-"`

	// Username is the unique login identifier, 1-64 characters.
	Username string `json:"username"`

	// PasswordHash is the bcrypt digest of the player's password.
	// The per-password salt is embedded in the digest itself.
	// MUST never contain plaintext and is never serialized to JSON.
	PasswordHash []byte `json:"-"`

	// DateCreated is the timestamp of account creation.
	DateCreated time.Time `json:"date_created"`

	// IsAdmin marks accounts allowed to call administrative endpoints.
	// Enforcement happens at the HTTP edge, not in the service layer.
	IsAdmin bool `json:"is_admin"`
}

// TableName returns the name of the database table
// associated with the Player model.
func (p Player) TableName() string {
	return "players"
}
