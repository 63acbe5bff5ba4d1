package services

import (
	"context"
	"time"
)

// PasswordResetSvcFacade defines the password reset token lifecycle.
type PasswordResetSvcFacade interface {
	// InitiatePasswordReset generates a one-time reset token for the user
	// with the given email, persists its digest and expiry, and returns the
	// plaintext token for out-of-band delivery. A new request supersedes any
	// outstanding token for the same user.
	InitiatePasswordReset(ctx context.Context, email string) (token string, expiresAt time.Time, err error)

	// ResetPassword consumes a reset token: it verifies the token's digest
	// against the stored one, rejects expired tokens with
	// apperrors.ErrResetTokenExpired, and on success stores the new password
	// hash, clears the token pair and revokes the user's refresh token.
	ResetPassword(ctx context.Context, token string, newPassword string) error
}
