package service

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input provided")
	ErrInvalidLimit       = errors.New("invalid leaderboard limit")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrUnknownPlayer      = errors.New("unknown player")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrStoreUnavailable = errors.New("store unavailable")
)
