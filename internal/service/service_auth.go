package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/anteater-game/server/internal/clock"
	"github.com/anteater-game/server/internal/config"
	"github.com/anteater-game/server/internal/logger"
	"github.com/anteater-game/server/internal/store"
	"github.com/anteater-game/server/internal/utils"
	"github.com/anteater-game/server/models"
)

// maxUsernameLen matches the width of the username column, counted in
// characters, not bytes.
const maxUsernameLen = 64

// authService is the concrete implementation of AuthService.
// It handles player registration, credential verification, account
// maintenance, and the JWT token lifecycle, using a PlayerRepository for
// persistence and bcrypt for password hashing.
type authService struct {
	// playerRepository is the data-access layer used to create and look up
	// players.
	playerRepository store.PlayerRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the work factor applied when hashing passwords.
	// Zero selects bcrypt's default; tests lower it to stay fast.
	bcryptCost int

	// clock stamps date_created on new accounts.
	clock clock.Clock

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// PlayerRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(playerRepository store.PlayerRepository, cfg config.App, clk clock.Clock, logger *logger.Logger) AuthService {
	return &authService{
		playerRepository: playerRepository,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		bcryptCost:       cfg.BcryptCost,
		clock:            clk,
		logger:           logger,
	}
}

// SignUp creates a new player account.
//
// It validates the username and password, hashes the password with bcrypt
// (which embeds a fresh random salt on every call), and delegates persistence
// to the PlayerRepository, which creates the player and its empty progress
// row in a single transaction.
//
// Returns the server-assigned player id or:
//   - ErrInvalidInput if the username or password fails validation.
//   - ErrDuplicateUsername if the username is already registered.
func (a *authService) SignUp(ctx context.Context, username, password string) (int64, error) {
	log := logger.FromContext(ctx)

	if err := validateUsername(username); err != nil {
		log.Error().Str("username", username).Msg("invalid username provided")
		return 0, err
	}
	if err := validatePassword(password); err != nil {
		log.Error().Str("username", username).Msg("invalid password provided")
		return 0, err
	}

	hash, err := utils.HashPassword(password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("username", username).Msg("password hashing failed")
		return 0, fmt.Errorf("password hashing failed: %w", err)
	}

	playerID, err := a.playerRepository.CreatePlayer(ctx, models.Player{
		Username:     username,
		PasswordHash: hash,
		DateCreated:  a.clock.Now(),
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("player creation ended with error")
		return 0, mapStoreErr(err)
	}

	return playerID, nil
}

// Login authenticates an existing player.
//
// Returns the player id or:
//   - ErrInvalidInput if the username or password is empty.
//   - ErrUnknownPlayer if no account exists with the given username.
//   - ErrInvalidCredentials if the password does not match. A wrong password
//     for an existing username is never reported as not-found.
func (a *authService) Login(ctx context.Context, username, password string) (int64, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("empty credentials provided")
		return 0, ErrInvalidInput
	}

	found, err := a.playerRepository.FindPlayerByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("player search by username failed")
		return 0, mapStoreErr(err)
	}

	if !utils.VerifyPassword(password, found.PasswordHash) {
		log.Error().
			Int64("id", found.PlayerID).
			Str("username", found.Username).
			Msg("wrong password")
		return 0, ErrInvalidCredentials
	}

	return found.PlayerID, nil
}

// ChangeCredentials updates the player's username and/or password.
// An empty field keeps the current value; at least one must be provided.
// A new password is re-hashed, never stored in plaintext.
//
// Returns:
//   - ErrInvalidInput if both fields are empty or a provided field fails
//     validation.
//   - ErrDuplicateUsername if the new username is already registered.
//   - ErrUnknownPlayer if the player id does not exist.
func (a *authService) ChangeCredentials(ctx context.Context, playerID int64, newUsername, newPassword string) error {
	log := logger.FromContext(ctx)

	if newUsername == "" && newPassword == "" {
		log.Error().Int64("id", playerID).Msg("no credential change requested")
		return ErrInvalidInput
	}
	if newUsername != "" {
		if err := validateUsername(newUsername); err != nil {
			return err
		}
	}

	var hash []byte
	if newPassword != "" {
		if err := validatePassword(newPassword); err != nil {
			return err
		}
		var err error
		hash, err = utils.HashPassword(newPassword, a.bcryptCost)
		if err != nil {
			log.Err(err).Int64("id", playerID).Msg("password hashing failed")
			return fmt.Errorf("password hashing failed: %w", err)
		}
	}

	if err := a.playerRepository.UpdateCredentials(ctx, playerID, newUsername, hash); err != nil {
		log.Err(err).Int64("id", playerID).Msg("credential update ended with error")
		return mapStoreErr(err)
	}

	return nil
}

// PromoteAdmin flags the player as an administrator. Authorization is the
// caller's concern; this layer only performs the state change.
// Returns ErrUnknownPlayer when the id does not exist.
func (a *authService) PromoteAdmin(ctx context.Context, playerID int64) error {
	log := logger.FromContext(ctx)

	if err := a.playerRepository.SetAdmin(ctx, playerID); err != nil {
		log.Err(err).Int64("id", playerID).Msg("admin promotion ended with error")
		return mapStoreErr(err)
	}

	return nil
}

// DeleteAccount removes the player; scores and progress are removed by the
// database cascade. Returns ErrUnknownPlayer when the id does not exist.
func (a *authService) DeleteAccount(ctx context.Context, playerID int64) error {
	log := logger.FromContext(ctx)

	if err := a.playerRepository.DeletePlayer(ctx, playerID); err != nil {
		log.Err(err).Int64("id", playerID).Msg("account deletion ended with error")
		return mapStoreErr(err)
	}

	return nil
}

// IsAdmin reports whether the player carries the administrator flag.
// Returns ErrUnknownPlayer when the id does not exist.
func (a *authService) IsAdmin(ctx context.Context, playerID int64) (bool, error) {
	found, err := a.playerRepository.FindPlayerByID(ctx, playerID)
	if err != nil {
		return false, mapStoreErr(err)
	}

	return found.IsAdmin, nil
}

// CreateToken issues a signed JWT for the given player.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, playerID int64) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, playerID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// validateUsername enforces the account naming rules: 1 to 64 printable
// characters with no leading or trailing whitespace.
func validateUsername(username string) error {
	if username == "" || utf8.RuneCountInString(username) > maxUsernameLen {
		return ErrInvalidInput
	}
	if strings.TrimSpace(username) != username {
		return ErrInvalidInput
	}
	for _, r := range username {
		if !unicode.IsPrint(r) {
			return ErrInvalidInput
		}
	}

	return nil
}

// validatePassword enforces the password rules. bcrypt truncates nothing and
// rejects inputs longer than 72 bytes, so the cap is enforced here with a
// clean sentinel instead of surfacing the library error.
func validatePassword(password string) error {
	if password == "" || len(password) > 72 {
		return ErrInvalidInput
	}

	return nil
}

// mapStoreErr converts store sentinels into service sentinels. Anything not
// recognised is treated as a connectivity-level failure.
func mapStoreErr(err error) error {
	switch {
	case errors.Is(err, store.ErrUsernameTaken):
		return ErrDuplicateUsername
	case errors.Is(err, store.ErrPlayerNotFound):
		return ErrUnknownPlayer
	case errors.Is(err, store.ErrProgressNotFound):
		return ErrUnknownPlayer
	default:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
}
