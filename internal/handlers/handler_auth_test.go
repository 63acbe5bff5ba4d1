package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pranavks/user_account_app/internal/apperrors"
	"github.com/pranavks/user_account_app/internal/core/domain"
	portssvc "github.com/pranavks/user_account_app/internal/core/ports/services"
	"github.com/pranavks/user_account_app/internal/dto"
	"github.com/pranavks/user_account_app/internal/handlers"
	"github.com/pranavks/user_account_app/internal/middleware"
	"github.com/pranavks/user_account_app/internal/platform/config"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenService) ValidateRefreshToken(ctx context.Context, tokenString string) (*domain.User, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock PasswordResetService ---
type MockPasswordResetService struct {
	mock.Mock
}

func (m *MockPasswordResetService) InitiatePasswordReset(ctx context.Context, email string) (string, time.Time, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockPasswordResetService) ResetPassword(ctx context.Context, token string, newPassword string) error {
	args := m.Called(ctx, token, newPassword)
	return args.Error(0)
}

var _ portssvc.PasswordResetSvcFacade = (*MockPasswordResetService)(nil)

type AuthHandlerSuite struct {
	suite.Suite
	router       *gin.Engine
	userService  *MockUserService
	tokenService *MockTokenService
	resetService *MockPasswordResetService
	user         *domain.User
}

func (s *AuthHandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.userService = new(MockUserService)
	s.tokenService = new(MockTokenService)
	s.resetService = new(MockPasswordResetService)
	s.user = &domain.User{
		UserID:   "user-1",
		FullName: "Jane Doe",
		Username: "janedoe",
		Email:    "jane@example.com",
		Role:     domain.RoleUser,
	}

	cfg := &config.Config{AccessTokenSecret: "access-secret"}
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())
	handlers.RegisterRoutes(s.router, cfg, &portssvc.ServiceContainer{
		User:          s.userService,
		Token:         s.tokenService,
		PasswordReset: s.resetService,
	})
}

func (s *AuthHandlerSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	b, err := json.Marshal(body)
	s.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthHandlerSuite) TestLoginSuccess() {
	expiresAt := time.Now().Add(15 * time.Minute)
	s.userService.On("AuthenticateUser", mock.Anything, "janedoe", "s3cretpass").Return(s.user, nil)
	s.tokenService.On("GenerateAccessToken", mock.Anything, s.user).Return("access-jwt", expiresAt, nil)
	s.tokenService.On("GenerateRefreshToken", mock.Anything, s.user).Return("refresh-jwt", expiresAt, nil)

	w := s.postJSON("/api/v1/auth/login", dto.LoginRequest{Identifier: "janedoe", Password: "s3cretpass"})

	s.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("access-jwt", resp.AccessToken)
	s.Equal("refresh-jwt", resp.RefreshToken)
	s.Equal("janedoe", resp.User.Username)
	s.NotContains(w.Body.String(), "passwordHash")
	s.tokenService.AssertExpectations(s.T())
}

func (s *AuthHandlerSuite) TestLoginBadCredentials() {
	s.userService.On("AuthenticateUser", mock.Anything, "janedoe", "wrong").Return(nil, apperrors.ErrUnauthorized)

	w := s.postJSON("/api/v1/auth/login", dto.LoginRequest{Identifier: "janedoe", Password: "wrong"})

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthHandlerSuite) TestLoginByEmailUnknownUser() {
	s.userService.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, apperrors.ErrNotFound)

	w := s.postJSON("/api/v1/auth/login", dto.LoginRequest{Identifier: "ghost@example.com", Password: "whatever"})

	// Unknown email must look exactly like a wrong password.
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthHandlerSuite) TestRefreshRotatesTokens() {
	expiresAt := time.Now().Add(15 * time.Minute)
	s.tokenService.On("ValidateRefreshToken", mock.Anything, "old-refresh").Return(s.user, nil)
	s.tokenService.On("GenerateAccessToken", mock.Anything, s.user).Return("new-access", expiresAt, nil)
	s.tokenService.On("GenerateRefreshToken", mock.Anything, s.user).Return("new-refresh", expiresAt, nil)

	w := s.postJSON("/api/v1/auth/refresh", dto.RefreshRequest{RefreshToken: "old-refresh"})

	s.Equal(http.StatusOK, w.Code)
	var resp dto.RefreshResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("new-access", resp.AccessToken)
	s.Equal("new-refresh", resp.RefreshToken)
}

func (s *AuthHandlerSuite) TestRefreshExpired() {
	s.tokenService.On("ValidateRefreshToken", mock.Anything, "stale").Return(nil, apperrors.ErrRefreshTokenExpired)

	w := s.postJSON("/api/v1/auth/refresh", dto.RefreshRequest{RefreshToken: "stale"})

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthHandlerSuite) TestForgotPassword() {
	s.resetService.On("InitiatePasswordReset", mock.Anything, "jane@example.com").
		Return("plain-token", time.Now().Add(10*time.Minute), nil)

	w := s.postJSON("/api/v1/auth/forgot-password", dto.ForgotPasswordRequest{Email: "jane@example.com"})

	s.Equal(http.StatusNoContent, w.Code)
	// The plaintext token is never part of the HTTP response.
	s.NotContains(w.Body.String(), "plain-token")
}

func (s *AuthHandlerSuite) TestForgotPasswordUnknownEmailStays204() {
	s.resetService.On("InitiatePasswordReset", mock.Anything, "ghost@example.com").
		Return("", time.Time{}, apperrors.ErrNotFound)

	w := s.postJSON("/api/v1/auth/forgot-password", dto.ForgotPasswordRequest{Email: "ghost@example.com"})

	s.Equal(http.StatusNoContent, w.Code)
}

func (s *AuthHandlerSuite) TestResetPassword() {
	s.resetService.On("ResetPassword", mock.Anything, "the-token", "new-password-123").Return(nil)

	w := s.postJSON("/api/v1/auth/reset-password", dto.ResetPasswordRequest{Token: "the-token", NewPassword: "new-password-123"})

	s.Equal(http.StatusNoContent, w.Code)
	s.resetService.AssertExpectations(s.T())
}

func (s *AuthHandlerSuite) TestResetPasswordExpiredToken() {
	s.resetService.On("ResetPassword", mock.Anything, "old-token", "new-password-123").
		Return(apperrors.ErrResetTokenExpired)

	w := s.postJSON("/api/v1/auth/reset-password", dto.ResetPasswordRequest{Token: "old-token", NewPassword: "new-password-123"})

	s.Equal(http.StatusUnauthorized, w.Code)
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}
