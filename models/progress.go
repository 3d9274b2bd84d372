package models

// Progress holds the per-player game state that survives between sessions:
// the current level and the set of earned achievement identifiers.
// A progress row is created in the same transaction as its player.
type Progress struct {
	ProgressID int64 `json:"-"`
	PlayerID   int64 `json:"player_id"`

	// Level is the player's current level, always >= 1.
	Level int64 `json:"level"`

	// Achievements is the ordered collection of earned achievement ids.
	// Stored as a JSON array; contains no duplicates.
	Achievements []string `json:"achievements"`
}

// TableName returns the name of the database table
// associated with the Progress model.
func (p Progress) TableName() string {
	return "progress"
}

// HasAchievement reports whether the given achievement id is already
// present in the collection.
func (p Progress) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}
