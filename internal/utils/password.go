package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/pranavks/user_account_app/internal/apperrors"
)

// passwordHashCost is the bcrypt work factor used for all stored passwords.
const passwordHashCost = 10

// HashPassword hashes a plaintext password using bcrypt. The output is salted,
// so hashing the same password twice yields different values.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrHashingFailed, err)
	}
	return string(hash), nil
}

// CheckPasswordHash compares a plaintext password with a stored bcrypt hash.
// A mismatch returns (false, nil); a malfunction of the hashing primitive,
// such as a malformed stored hash, returns apperrors.ErrHashingFailed so
// callers never conflate it with a wrong password.
func CheckPasswordHash(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %v", apperrors.ErrHashingFailed, err)
}
