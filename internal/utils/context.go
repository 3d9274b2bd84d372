// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, JWT token generation and validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PlayerIDCtxKey is the key used to store the authenticated player
// identifier in the context. Set by the HTTP auth middleware and read back
// with GetPlayerIDFromContext.
var PlayerIDCtxKey = contextKey("playerID")

// GetPlayerIDFromContext retrieves the player identifier from the context.
//
// Returns the player ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetPlayerIDFromContext(ctx context.Context) (int64, bool) {
	playerID, ok := ctx.Value(PlayerIDCtxKey).(int64)
	return playerID, ok
}
