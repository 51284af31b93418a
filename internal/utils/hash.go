package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by [PasswordHasher.Compare] when the
// password does not match the hash.
var ErrPasswordMismatch = errors.New("password does not match")

// PasswordHasher hashes and verifies passwords with bcrypt.
// Every hash embeds its own random salt, so hashing the same password
// twice yields two different strings.
type PasswordHasher struct {
	cost      int
	dummyHash []byte
}

// NewPasswordHasher returns a hasher using the given bcrypt cost.
// A cost of zero selects [bcrypt.DefaultCost].
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	// GenerateFromPassword only fails for an out of range cost, in which
	// case Hash fails as well.
	dummyHash, _ := bcrypt.GenerateFromPassword([]byte("dummy-password"), cost)

	return &PasswordHasher{cost: cost, dummyHash: dummyHash}
}

// Hash returns the bcrypt hash of password.
//
// Passwords longer than 72 bytes are rejected with [bcrypt.ErrPasswordTooLong].
func (h *PasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Compare reports whether password matches hashedPassword.
func (h *PasswordHasher) Compare(hashedPassword, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}

// CompareDummy runs a comparison against a fixed hash of the same cost.
// It is used when the user does not exist so that a failed login takes
// about as long whichever credential was wrong.
func (h *PasswordHasher) CompareDummy(password string) {
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(password))
}
