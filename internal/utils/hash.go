package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned when an empty password is passed to
// HashPassword. Hashing an empty string would produce a valid digest, so the
// guard lives here rather than in every caller.
var ErrEmptyPassword = errors.New("password must not be empty")

// HashPassword derives a bcrypt digest from a plaintext password.
//
// bcrypt generates a fresh random salt on every call and embeds it in the
// returned digest, so two calls with the identical password never produce
// the same output. The cost parameter controls how expensive each hash (and
// each verification) is; pass 0 to use bcrypt.DefaultCost.
//
// Parameters:
//
//	password - plaintext password; must be non-empty
//	cost     - bcrypt cost factor, bcrypt.MinCost..bcrypt.MaxCost, 0 = default
//
// Returns:
//
//	[]byte - bcrypt digest suitable for opaque binary storage
//	error  - non-nil if the password is empty or hashing fails
func HashPassword(password string, cost int) ([]byte, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}

	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	return hash, nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// bcrypt digest. The salt is read back out of the digest itself, so no extra
// state is needed.
//
// Any comparison failure (mismatch, malformed digest) yields false; the
// caller cannot distinguish the two, which is intentional.
func VerifyPassword(password string, storedHash []byte) bool {
	return bcrypt.CompareHashAndPassword(storedHash, []byte(password)) == nil
}
