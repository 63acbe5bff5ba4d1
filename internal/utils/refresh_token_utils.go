package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashRefreshToken computes the SHA-256 hex digest of a refresh token. The
// signed token itself is never stored; only this digest is persisted, so a
// database leak does not hand out usable refresh tokens.
func HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CompareRefreshTokenHash compares a raw refresh token with its stored digest
// in constant time.
func CompareRefreshTokenHash(token string, storedHash string) bool {
	digest := HashRefreshToken(token)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(storedHash)) == 1
}
