package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pranavks/user_account_app/internal/apperrors"
	"github.com/pranavks/user_account_app/internal/core/domain"
	portsrepo "github.com/pranavks/user_account_app/internal/core/ports/repositories"
	portssvc "github.com/pranavks/user_account_app/internal/core/ports/services"
	"github.com/pranavks/user_account_app/internal/platform/config"
	"github.com/pranavks/user_account_app/internal/utils"
)

// tokenService implements TokenSvcFacade. Access and refresh tokens are
// signed with independent secrets and expiries so that a compromise of one
// has a blast radius independent of the other.
type tokenService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg, userRepo: userRepo}
}

// GenerateAccessToken creates a new JWT access token embedding the user's
// identity fields. No persistence side effect.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.AccessTokenExpiry)

	accessToken, err := utils.GenerateAccessToken(
		user.UserID, user.Email, user.Username, user.FullName,
		s.cfg.AccessTokenSecret, s.cfg.AccessTokenExpiry, s.cfg.TokenIssuer,
	)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return accessToken, expiryTime, nil
}

// GenerateRefreshToken creates a new JWT refresh token carrying only the user
// ID, and persists its digest onto the user record before returning. The
// previous digest is overwritten; concurrent refreshes for the same user are
// last-writer-wins, which holds the single-active-session policy.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.RefreshTokenExpiry)

	refreshToken, err := utils.GenerateRefreshToken(
		user.UserID, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiry, s.cfg.TokenIssuer,
	)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, utils.HashRefreshToken(refreshToken)); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to persist refresh token: %w", err)
	}
	return refreshToken, expiryTime, nil
}

// ValidateRefreshToken verifies a presented refresh token: signature and
// standard claims first, then its digest must equal the one last persisted
// for the subject user. An older, already-rotated token therefore fails even
// though its signature is still valid.
func (s *tokenService) ValidateRefreshToken(ctx context.Context, tokenString string) (*domain.User, error) {
	claims, err := utils.ParseRefreshToken(tokenString, s.cfg.RefreshTokenSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrRefreshTokenExpired
		}
		return nil, apperrors.ErrUnauthorized
	}
	if claims.Subject == "" {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load user for refresh token validation: %w", err)
	}

	if user.RefreshTokenHash == "" || !utils.CompareRefreshTokenHash(tokenString, user.RefreshTokenHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}
