package services

import (
	"context"

	"github.com/pranavks/user_account_app/internal/core/domain"
	"github.com/pranavks/user_account_app/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username, including the password
	// hash for credential verification.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email, including the password hash.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// UpdateUser applies the given partial update. The password hash is only
	// recomputed when req.Password is non-nil; an update that does not carry
	// a new password never touches the stored hash.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)
}

// UserAuthSvc defines credential verification for users.
type UserAuthSvc interface {
	// AuthenticateUser verifies the username/password pair and returns the
	// user on success. A wrong password or unknown username yields
	// apperrors.ErrUnauthorized; hashing primitive failures are surfaced
	// separately as apperrors.ErrHashingFailed.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)

	// ClearRefreshToken invalidates the user's stored refresh token.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
