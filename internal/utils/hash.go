package utils

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt hash of password at the given cost.
// A cost below bcrypt.MinCost falls back to bcrypt.DefaultCost.
//
// The salt is generated per call, so hashing the same password twice
// yields different strings. Use CheckPassword to compare.
//
// bcrypt only reads 72 bytes, so the password is first reduced to a
// base64-encoded SHA-256 digest. Passwords of any length are accepted and
// every byte of them counts.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(prehash(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the bcrypt hash.
// A malformed hash is reported as a mismatch together with a non-nil error.
func CheckPassword(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), prehash(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("error comparing password hash: %w", err)
}

// prehash is 44 bytes long for every input.
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
