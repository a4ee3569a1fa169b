package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes passwords with bcrypt and still verifies the unsalted
// SHA-256 hex hashes of imported legacy accounts.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher using the given bcrypt cost.
func NewPasswordHasher(cost int) *PasswordHasher {
	return &PasswordHasher{cost: cost}
}

// Hash returns a bcrypt hash of password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

// Verify reports whether password matches hash. needsRehash is true when the
// stored hash uses the legacy format and should be replaced.
func (h *PasswordHasher) Verify(hash, password string) (ok bool, needsRehash bool) {
	if IsLegacyHash(hash) {
		sum := LegacyHash(password)
		return subtle.ConstantTimeCompare([]byte(sum), []byte(strings.ToLower(hash))) == 1, true
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return false, false
	}
	return true, false
}

// LegacyHash computes the unsalted SHA-256 hex digest used by old user files.
func LegacyHash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// IsLegacyHash reports whether hash is a 64-character hex SHA-256 digest.
func IsLegacyHash(hash string) bool {
	if len(hash) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(hash)
	return err == nil
}
