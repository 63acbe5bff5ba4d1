package services

import (
	"context"
	"time"

	"github.com/pranavks/user_account_app/internal/core/domain"
)

// TokenSvcFacade defines the interface for access and refresh token issuance.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed, self-contained access token for
	// the user. Stateless: no persistence side effect.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates a signed refresh token carrying only the
	// user's ID and durably persists its digest onto the user record before
	// returning. Any previously stored refresh token is overwritten.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateRefreshToken verifies the token signature and expiry, and
	// checks that the token's digest equals the one last persisted for its
	// subject. Returns the user on success.
	ValidateRefreshToken(ctx context.Context, tokenString string) (*domain.User, error)
}
