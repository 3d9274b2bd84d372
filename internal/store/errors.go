package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an INSERT or UPDATE on the players
	// table fails because another row already holds the requested username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrPlayerNotFound is returned when a query expected to match a player
	// row (by id or by username) produces an empty result set, or when a
	// foreign-key check rejects a score for a non-existent player.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrProgressNotFound is returned when a progress lookup or update
	// targets a player that has no progress row.
	ErrProgressNotFound = errors.New("progress not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
