// Package cryptox hashes and verifies user passwords.
//
// Keys are derived with PBKDF2-HMAC-SHA256 over a per-user random salt.
// Only the salt and the derived key are ever stored.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// Iterations is the PBKDF2 work factor. Stored keys depend on it, so it
	// cannot change without re-hashing every user.
	Iterations = 100_000
	KeyLength  = 32
	SaltLength = 32
)

// DeriveKey derives the stored key for password and salt.
func DeriveKey(password, salt []byte) []byte {
	return deriveKey(password, salt, Iterations)
}

func deriveKey(password, salt []byte, iterations int) []byte {
	return pbkdf2.Key(password, salt, iterations, KeyLength, sha256.New)
}

// HashPassword generates a fresh random salt and derives the key for password.
func HashPassword(password []byte) (salt, key []byte) {
	salt = common.GenerateRandByteArray(SaltLength)
	return salt, DeriveKey(password, salt)
}

// VerifyPassword reports whether password derives key under salt.
// The comparison runs in constant time.
func VerifyPassword(password, salt, key []byte) bool {
	candidate := DeriveKey(password, salt)
	defer common.WipeByteArray(candidate)
	return subtle.ConstantTimeCompare(candidate, key) == 1
}
