package repositories

import (
	"context"
	"time"

	"github.com/pranavks/user_account_app/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by exact username match. The
	// returned user includes the password hash, which the login flow needs.
	// Returns apperrors.ErrNotFound when no match exists.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByEmail is the same contract keyed by email. The email is
	// lowercased before lookup to match write-time normalization.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByResetTokenDigest retrieves the user holding the given
	// password reset token digest, regardless of expiry.
	FindUserByResetTokenDigest(ctx context.Context, digest string) (*domain.User, error)

	// FindUsers retrieves a paginated list of users.
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate when the
	// username or email unique constraint is violated.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's profile details and, when the
	// password hash in the given user differs, the stored hash.
	UpdateUser(ctx context.Context, user domain.User) error
}

// CredentialWriter defines write operations on a user's credential fields.
// Each method is an atomic single-row update.
type CredentialWriter interface {
	// UpdateRefreshToken overwrites the stored refresh token digest.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string) error

	// ClearRefreshToken removes the stored refresh token digest.
	ClearRefreshToken(ctx context.Context, userID string) error

	// SetPasswordResetToken stores the digest and expiry of a newly issued
	// reset token, superseding any prior pair.
	SetPasswordResetToken(ctx context.Context, userID string, tokenDigest string, expiresAt time.Time) error

	// UpdatePasswordAfterReset atomically sets the new password hash, clears
	// the reset token pair and records the reset time.
	UpdatePasswordAfterReset(ctx context.Context, userID string, passwordHash string, resetAt time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	CredentialWriter
}
