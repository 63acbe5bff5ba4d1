package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// resetTokenBytes is the entropy of a password reset token before encoding.
const resetTokenBytes = 32

// GenerateResetToken creates a high-entropy password reset token: 32 random
// bytes hex encoded into a 64-character string. Only the digest of the token
// is ever persisted; the plaintext goes to the user out-of-band.
func GenerateResetToken() (string, error) {
	b := make([]byte, resetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashResetToken computes the SHA-256 hex digest of a reset token. The digest
// is deliberately unsalted so the consumption flow can recompute it from a
// presented token and compare against the stored value directly. SHA-256 is
// also used for refresh token digests.
func HashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CompareResetTokenHash compares a plaintext reset token with a stored digest
// in constant time. The token parameter must be the raw token, not a digest.
func CompareResetTokenHash(token string, storedDigest string) bool {
	digest := HashResetToken(token)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(storedDigest)) == 1
}
