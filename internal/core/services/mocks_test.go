package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/pranavks/user_account_app/internal/core/domain"
)

// --- Mock UserRepository (based on UserRepositoryFacade) ---
// Each method prefers its Fn override when set, falling back to testify
// expectations otherwise.
type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn               func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsernameFn         func(ctx context.Context, username string) (*domain.User, error)
	FindUserByEmailFn            func(ctx context.Context, email string) (*domain.User, error)
	FindUserByResetTokenDigestFn func(ctx context.Context, digest string) (*domain.User, error)
	FindUsersFn                  func(ctx context.Context, limit, offset int) ([]domain.User, error)
	SaveUserFn                   func(ctx context.Context, user domain.User) error
	UpdateUserFn                 func(ctx context.Context, user domain.User) error
	UpdateRefreshTokenFn         func(ctx context.Context, userID string, refreshTokenHash string) error
	ClearRefreshTokenFn          func(ctx context.Context, userID string) error
	SetPasswordResetTokenFn      func(ctx context.Context, userID string, tokenDigest string, expiresAt time.Time) error
	UpdatePasswordAfterResetFn   func(ctx context.Context, userID string, passwordHash string, resetAt time.Time) error
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindUserByUsernameFn != nil {
		return m.FindUserByUsernameFn(ctx, username)
	}
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByResetTokenDigest(ctx context.Context, digest string) (*domain.User, error) {
	if m.FindUserByResetTokenDigestFn != nil {
		return m.FindUserByResetTokenDigestFn(ctx, digest)
	}
	args := m.Called(ctx, digest)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if m.FindUsersFn != nil {
		return m.FindUsersFn(ctx, limit, offset)
	}
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string) error {
	if m.UpdateRefreshTokenFn != nil {
		return m.UpdateRefreshTokenFn(ctx, userID, refreshTokenHash)
	}
	args := m.Called(ctx, userID, refreshTokenHash)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	if m.ClearRefreshTokenFn != nil {
		return m.ClearRefreshTokenFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) SetPasswordResetToken(ctx context.Context, userID string, tokenDigest string, expiresAt time.Time) error {
	if m.SetPasswordResetTokenFn != nil {
		return m.SetPasswordResetTokenFn(ctx, userID, tokenDigest, expiresAt)
	}
	args := m.Called(ctx, userID, tokenDigest, expiresAt)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePasswordAfterReset(ctx context.Context, userID string, passwordHash string, resetAt time.Time) error {
	if m.UpdatePasswordAfterResetFn != nil {
		return m.UpdatePasswordAfterResetFn(ctx, userID, passwordHash, resetAt)
	}
	args := m.Called(ctx, userID, passwordHash, resetAt)
	return args.Error(0)
}
