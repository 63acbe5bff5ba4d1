package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pranavks/user_account_app/internal/apperrors"
	portsrepo "github.com/pranavks/user_account_app/internal/core/ports/repositories"
	portssvc "github.com/pranavks/user_account_app/internal/core/ports/services"
	"github.com/pranavks/user_account_app/internal/platform/config"
	"github.com/pranavks/user_account_app/internal/utils"
)

// minPasswordLength applies to passwords chosen through the reset flow.
const minPasswordLength = 8

type passwordResetService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
	now      func() time.Time
}

// NewPasswordResetService creates a new password reset service.
func NewPasswordResetService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.PasswordResetSvcFacade {
	return &passwordResetService{cfg: cfg, userRepo: userRepo, now: time.Now}
}

// InitiatePasswordReset generates a one-time reset token for the user with
// the given email. Only the SHA-256 digest and the expiry are persisted;
// the plaintext token is returned for out-of-band delivery and is gone once
// this call returns. A new request supersedes any outstanding token.
func (s *passwordResetService) InitiatePasswordReset(ctx context.Context, email string) (string, time.Time, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", time.Time{}, err
		}
		return "", time.Time{}, fmt.Errorf("failed to look up user for password reset: %w", err)
	}

	token, err := utils.GenerateResetToken()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiresAt := s.now().Add(s.cfg.ResetTokenExpiry)
	if err := s.userRepo.SetPasswordResetToken(ctx, user.UserID, utils.HashResetToken(token), expiresAt); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to persist reset token digest: %w", err)
	}
	return token, expiresAt, nil
}

// ResetPassword consumes a reset token. The presented token's digest must
// match a stored one and the expiry must not have passed; on success the new
// password is hashed and stored, the token pair is cleared in the same row
// update (single use), and the user's refresh token is revoked so existing
// sessions cannot outlive the reset.
func (s *passwordResetService) ResetPassword(ctx context.Context, token string, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrValidation, minPasswordLength)
	}

	user, err := s.userRepo.FindUserByResetTokenDigest(ctx, utils.HashResetToken(token))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrUnauthorized
		}
		return fmt.Errorf("failed to look up reset token: %w", err)
	}

	if user.PasswordResetTokenExpires == nil || s.now().After(*user.PasswordResetTokenExpires) {
		return apperrors.ErrResetTokenExpired
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePasswordAfterReset(ctx, user.UserID, hash, s.now()); err != nil {
		return fmt.Errorf("failed to store new password: %w", err)
	}

	// Force re-login everywhere: the stored refresh token digest no longer
	// matches anything a client may still hold.
	if err := s.userRepo.ClearRefreshToken(ctx, user.UserID); err != nil {
		return fmt.Errorf("failed to revoke refresh token after reset: %w", err)
	}
	return nil
}
