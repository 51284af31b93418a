package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoUserID is returned by [Token.GetUserID] when the "user_id" claim is
// absent or not a positive identifier.
var ErrNoUserID = errors.New("token carries no user id")

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations and
// [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
// UserID and Username are private claims carried next to the registered ones.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// UserID is the owner identifier, stored in the "user_id" claim.
	UserID int64 `json:"user_id"`

	// Username is the login name of the owner, stored in the "username" claim.
	Username string `json:"username"`

	// SignedString is the compact JWS representation of the token.
	// Use [Token.String] to retrieve it.
	SignedString string `json:"-"`
}

// GetUserID returns the user identifier from the "user_id" claim.
func (t *Token) GetUserID() (int64, error) {
	if t.UserID <= 0 {
		return 0, ErrNoUserID
	}
	return t.UserID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
