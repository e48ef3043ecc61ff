// Package auth provides password hashing and bearer-token issuance and
// verification. Neither touches the database: hashing is pure bcrypt and
// token verification is purely cryptographic.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher derives and verifies salted bcrypt hashes. bcrypt embeds a
// fresh random salt in every hash, so hashing the same plaintext twice never
// produces identical output.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the given bcrypt cost factor.
// Costs outside bcrypt's valid range fall back to the default (10).
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash derives a salted hash from plaintext. The plaintext is never stored.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches hash using the salt embedded in
// the hash. Comparison is constant time. Malformed hashes verify as false,
// never as an error.
func (h *PasswordHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
