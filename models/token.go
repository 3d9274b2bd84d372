package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token ready to be
// transmitted in the Authorization header. PlayerID is a cached, parsed copy
// of the "sub" claim converted to int64.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// PlayerID is the owner identifier extracted from the "sub" claim.
	PlayerID int64 `json:"-"`
}

// GetPlayerID extracts the player identifier from the token's "sub" claim,
// parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetPlayerID() (int64, error) {
	playerIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting PlayerID from token: %w", err)
	}

	playerID, err := strconv.ParseInt(playerIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting PlayerID from token to int64: %w", err)
	}

	return playerID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
